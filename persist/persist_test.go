package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellgraph/spreadsheet/sheet"
)

func TestBoltStoreRoundTripsFormulasAndText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	s := sheet.New()
	require.NoError(t, s.SetCell("A1", "10"))
	require.NoError(t, s.SetCell("B1", "=A1*2"))
	require.NoError(t, s.SetCell("C1", "`=literal"))

	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)

	v, err := loaded.GetCell("B1")
	require.NoError(t, err)
	require.Equal(t, "20", v.Display())

	v, err = loaded.GetCell("C1")
	require.NoError(t, err)
	require.Equal(t, "=literal", v.Display())
}

func TestBoltStoreLoadOnNeverSavedFileIsEmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.db")
	store, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load()
	require.NoError(t, err)

	size := loaded.GetPrintableSize()
	require.Equal(t, 0, size.Rows)
	require.Equal(t, 0, size.Cols)
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv("CELLSHEET_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CELLSHEET_TEST_POSTGRES_DSN not set; skipping live postgres integration test")
	}

	store, err := OpenPostgresStore(context.Background(), dsn)
	require.NoError(t, err)
	defer store.Close()

	s := sheet.New()
	require.NoError(t, s.SetCell("A1", "5"))
	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)

	v, err := loaded.GetCell("A1")
	require.NoError(t, err)
	require.Equal(t, "5", v.Display())
}
