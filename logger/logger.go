// Package logger builds the zap loggers used across the module.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"singleton"
)

// Config captures options for building a logger.
type Config struct {
	Level       string    // "debug", "info", ...; empty means info
	Development bool      // console encoding and development mode
	Output      io.Writer // defaults to os.Stderr
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var (
		enc  zapcore.Encoder
		opts []zap.Option
	)
	if cfg.Development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.Development(), zap.AddCaller())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), level)
	return zap.New(core, opts...), nil
}

var base = singleton.New(func() *zap.Logger {
	l, err := New(Config{Level: os.Getenv("SINGLETON_LOG_LEVEL")})
	if err != nil {
		l, _ = New(Config{})
	}
	return l
})

// L returns the process-wide default logger. Its level comes from
// SINGLETON_LOG_LEVEL as seen on first use.
func L() *zap.Logger {
	return base()
}
