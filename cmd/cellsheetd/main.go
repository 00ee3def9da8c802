// Command cellsheetd is the long-running spreadsheet daemon: it serves
// the live WebSocket (and optional ZeroMQ) broadcast of a single
// actor-owned sheet, restoring it from its configured persistence
// backend on startup and snapshotting it back on a timer. Grounded on
// broyeztony-karl/go.mod's golang.org/x/sync dependency for starting
// its listeners concurrently and tearing them all down together on
// first error (SPEC_FULL.md §11.6).
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cellgraph/spreadsheet/broadcast"
	"github.com/cellgraph/spreadsheet/internal/config"
	"github.com/cellgraph/spreadsheet/internal/log"
	"github.com/cellgraph/spreadsheet/persist"
	"github.com/cellgraph/spreadsheet/sheet"
)

func main() {
	configPath := flag.String("config", "cellsheetd.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger, err := log.New(cfg.LogLevel == "debug")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("cellsheetd exited with error", log.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *log.Logger) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	hub := broadcast.New(logger)
	defer hub.Close()

	restored, err := store.Load()
	if err != nil {
		return err
	}
	hub.Actor().Do(func(s *sheet.Sheet) { *s = *restored })

	if cfg.ZMQPublishAddr != "" {
		if err := hub.EnableZMQ(cfg.ZMQPublishAddr); err != nil {
			return err
		}
		logger.Info("zmq publisher enabled", log.String("addr", cfg.ZMQPublishAddr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	server := &http.Server{Addr: cfg.ListenAddr, Handler: mux}

	group.Go(func() error {
		logger.Info("listening", log.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return snapshotLoop(ctx, hub, store, cfg.SnapshotIntervalSeconds, logger)
	})

	group.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	return group.Wait()
}

func openStore(cfg config.Config) (persist.Store, error) {
	switch cfg.PersistBackend {
	case "postgres":
		return persist.OpenPostgresStore(context.Background(), cfg.PostgresDSN)
	default:
		return persist.OpenBoltStore(cfg.SnapshotPath)
	}
}

// snapshotLoop saves the sheet on a fixed interval until ctx is
// canceled, plus once more on the way out so the final state before
// shutdown is never lost.
func snapshotLoop(ctx context.Context, hub *broadcast.Hub, store persist.Store, intervalSeconds int, logger *log.Logger) error {
	if intervalSeconds <= 0 {
		<-ctx.Done()
		return saveNow(hub, store, logger)
	}

	ticker := time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := saveNow(hub, store, logger); err != nil {
				logger.Warn("periodic snapshot failed", log.Error(err))
			}
		case <-ctx.Done():
			return saveNow(hub, store, logger)
		}
	}
}

func saveNow(hub *broadcast.Hub, store persist.Store, logger *log.Logger) error {
	var saveErr error
	hub.Actor().Do(func(s *sheet.Sheet) { saveErr = store.Save(s) })
	if saveErr != nil {
		logger.Warn("snapshot save failed", log.Error(saveErr))
	}
	return saveErr
}
