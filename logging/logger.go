package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *zerolog.Logger
	current       = Config{Level: zerolog.InfoLevel, Timestamp: true}
)

// Init builds the app's console logger, installs it as the zerolog global, and
// returns it.
func Init(app string) zerolog.Logger {
	logger := build(snapshot()).With().Str("app", app).Logger()
	log.Logger = logger
	setDefault(logger)
	return logger
}

// Apply installs cfg for subsequently built loggers and rebuilds the defaults.
func Apply(cfg Config) {
	defaultMu.Lock()
	current = cfg
	defaultMu.Unlock()
	zerolog.SetGlobalLevel(cfg.Level)
	logger := build(cfg)
	log.Logger = logger
	setDefault(logger)
}

// Default returns the process-wide logger, building one from the current
// config on first use.
func Default() zerolog.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		logger := build(current)
		defaultLogger = &logger
	}
	return *defaultLogger
}

func snapshot() Config {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return current
}

func setDefault(logger zerolog.Logger) {
	defaultMu.Lock()
	defaultLogger = &logger
	defaultMu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}
	ctx := zerolog.New(output).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}
