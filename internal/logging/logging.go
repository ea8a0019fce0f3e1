// Package logging routes the standard logger to stderr and, when configured,
// to a size-rotated log file.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrlokans/booklist/internal/config"
)

// Setup points the standard logger at stderr plus cfg.File. The returned
// function closes the file and restores stderr-only output.
func Setup(cfg config.Log) (func() error, error) {
	if cfg.File == "" {
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, err
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, rotator))
	log.Printf("Logging to %s (max %d MB, %d backups)", cfg.File, cfg.MaxSizeMB, cfg.MaxBackups)

	return func() error {
		log.SetOutput(os.Stderr)
		return rotator.Close()
	}, nil
}

// Writer returns the current destination of the standard logger, for
// components such as gin that take their own writer.
func Writer() io.Writer {
	return log.Writer()
}
