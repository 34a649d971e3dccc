package moneytree

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a logger writing to a rotated file, or discarding
// everything when no path is configured.
func NewLogger(conf LogConfig) *log.Logger {
	if conf.Path == "" {
		return log.New(io.Discard, "", 0)
	}
	return log.New(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    conf.MaxSizeMB,
		MaxBackups: conf.MaxBackups,
		Compress:   conf.Compress,
	}, "", log.Ltime|log.Lmicroseconds)
}
