package persist

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/pkg/errors"

	"github.com/cellgraph/spreadsheet/sheet"
)

var cellsBucket = []byte("cells")

// BoltStore is an embedded single-file Store, grounded on
// other_examples/excel-ai's go.etcd.io/bbolt dependency
// (SPEC_FULL.md §11.3). Each cell is stored under its own address key
// so a future incremental-save could update one key at a time; the
// current Save always rewrites the bucket wholesale for simplicity.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (creating if necessary) the single-file store at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "persist: open bbolt store %s", path)
	}
	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Save(s *sheet.Sheet) error {
	cells, err := snapshot(s)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(cellsBucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		bucket, err := tx.CreateBucket(cellsBucket)
		if err != nil {
			return err
		}
		for _, c := range cells {
			data, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(c.Address), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BoltStore) Load() (*sheet.Sheet, error) {
	var cells []cellText

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(cellsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, data []byte) error {
			var c cellText
			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}
			cells = append(cells, c)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "persist: load bbolt store")
	}

	return restore(cells)
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
