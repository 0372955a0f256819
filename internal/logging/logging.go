// Package logging builds the zap logger. Logs go to a file because the
// TUI owns stdout and stderr; with no file configured logging is a
// no-op.
package logging

import (
	"go.uber.org/zap"
)

// New returns a production logger writing to path, or a nop logger
// when path is empty.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
