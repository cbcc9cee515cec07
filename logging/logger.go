package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Level is one of debug, info, warn, error or fatal. Empty means info.
	Level string
	// File, when set, sends output to a rotating log file instead of stderr.
	File   string
	Prefix string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the logger shared by the game and the CLI commands. The returned
// closer flushes and closes the log file, if any.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: parse level %q: %w", opts.Level, err)
		}
		level = l
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
