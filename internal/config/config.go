// Package config loads cellsheetd's optional YAML configuration file
// via github.com/goccy/go-yaml, grounded on signadot-tony-format's
// YAML-based tooling (the same library, used there for a
// config/format tool rather than a daemon config).
package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config holds every tunable of the cellsheetd daemon. Zero values are
// replaced by Defaults before use.
type Config struct {
	// ListenAddr is the WebSocket server's bind address.
	ListenAddr string `yaml:"listen_addr"`
	// LogLevel is "info" or "debug".
	LogLevel string `yaml:"log_level"`
	// SnapshotPath is where the persistence backend writes its file
	// (bbolt) or is otherwise informational (postgres backend ignores it).
	SnapshotPath string `yaml:"snapshot_path"`
	// SnapshotInterval, in seconds, between automatic snapshots. A zero
	// in the file keeps the default; a negative value disables the
	// periodic ticker (a final snapshot is still taken on shutdown).
	SnapshotIntervalSeconds int `yaml:"snapshot_interval_seconds"`
	// PersistBackend selects "bbolt" or "postgres".
	PersistBackend string `yaml:"persist_backend"`
	// PostgresDSN is used only when PersistBackend is "postgres".
	PostgresDSN string `yaml:"postgres_dsn"`
	// ZMQPublishAddr, if non-empty, enables the secondary ZeroMQ PUB
	// transport at this bind address (e.g. "tcp://*:5556").
	ZMQPublishAddr string `yaml:"zmq_publish_addr"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		ListenAddr:              ":8080",
		LogLevel:                "info",
		SnapshotPath:            "cellsheet.db",
		SnapshotIntervalSeconds: 30,
		PersistBackend:          "bbolt",
	}
}

// Load reads and parses the YAML file at path, filling any field left
// zero with its Defaults() counterpart. A missing file is not an
// error: Load returns Defaults() unchanged, matching SPEC_FULL.md
// §10.3's "no required external config for the library itself".
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	merge(&cfg, parsed)
	return cfg, nil
}

// merge overlays every non-zero field of parsed onto cfg.
func merge(cfg *Config, parsed Config) {
	if parsed.ListenAddr != "" {
		cfg.ListenAddr = parsed.ListenAddr
	}
	if parsed.LogLevel != "" {
		cfg.LogLevel = parsed.LogLevel
	}
	if parsed.SnapshotPath != "" {
		cfg.SnapshotPath = parsed.SnapshotPath
	}
	if parsed.SnapshotIntervalSeconds != 0 {
		cfg.SnapshotIntervalSeconds = parsed.SnapshotIntervalSeconds
	}
	if parsed.PersistBackend != "" {
		cfg.PersistBackend = parsed.PersistBackend
	}
	if parsed.PostgresDSN != "" {
		cfg.PostgresDSN = parsed.PostgresDSN
	}
	if parsed.ZMQPublishAddr != "" {
		cfg.ZMQPublishAddr = parsed.ZMQPublishAddr
	}
}
