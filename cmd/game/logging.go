package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacegarbage/internal/config"
)

const maxLogSize = 10 << 20

// setupLogging returns a logger writing to the debug log file, or a silent
// logger when debugging is off. The terminal belongs to the game, so logs
// never go to stdout or stderr.
func setupLogging(enabled bool) (*log.Logger, func(), error) {
	if !enabled {
		return log.New(io.Discard), func() {}, nil
	}

	path := config.GetEnv(config.EnvLogPath, filepath.Join("logs", "spacegarbage.log"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	// Keep one previous log around once the current one grows too large
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "spacegarbage",
	})
	return logger, func() { _ = f.Close() }, nil
}
