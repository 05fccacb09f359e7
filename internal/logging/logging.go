// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxSizeMB  = 5
	DefaultMaxBackups = 3
)

// Options — куда писать журнал.
type Options struct {
	Console    io.Writer // nil — os.Stderr
	File       string    // пусто — только консоль
	MaxSizeMB  int
	MaxBackups int
}

// New builds the process logger. When a file is configured the output is
// mirrored into a size-rotated log file; the returned closer releases it.
func New(opts Options) (*log.Logger, io.Closer) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	if opts.File == "" {
		return log.New(console, "", log.LstdFlags), nopCloser{}
	}

	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = DefaultMaxSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = DefaultMaxBackups
	}
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	return log.New(io.MultiWriter(console, file), "", log.LstdFlags), file
}

// ForEpisode returns a logger that tags every line with the episode id.
func ForEpisode(base *log.Logger, id uuid.UUID) *log.Logger {
	return log.New(base.Writer(), fmt.Sprintf("[episode %s] ", ShortID(id)), base.Flags()|log.Lmsgprefix)
}

// ShortID is the first block of the uuid, enough to tell episodes apart in a log.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
