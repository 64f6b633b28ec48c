package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const DefaultLogLevel = "info"

// New creates a logger. By default it writes human readable lines to stdout
// at info level.
func New(opts ...Option) *zerolog.Logger {
	cfg := &Config{
		output:       os.Stdout,
		level:        zerolog.InfoLevel,
		excludeParts: []string{zerolog.TimestampFieldName},
		isDev:        true,
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	logger := zerolog.New(cfg.output).
		Level(cfg.level).
		With().
		Timestamp().
		Logger()

	if cfg.isDev {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:          cfg.output,
			PartsExclude: cfg.excludeParts,
		})
	}
	return &logger
}

// NewConsoleLogger is the CLI logger: human-readable lines on out.
func NewConsoleLogger(level string, out io.Writer) *zerolog.Logger {
	return New(
		WithLevel(level),
		WithOutput(out),
		WithConsoleWriter(true),
	)
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
