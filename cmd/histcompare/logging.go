package main

import (
	"github.com/pkg/errors"
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogging directs the standard logger to the file at path, creating
// directories as needed. With an empty path, log output is discarded, as the
// viewer owns the terminal. The returned file, if any, must be closed by the
// caller.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return file, nil
}
