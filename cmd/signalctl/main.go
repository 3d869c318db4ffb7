package main

import (
	"flag"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/genkit/logging"
	"github.com/danmuck/genkit/signal"
)

func main() {
	configPath := flag.String("config", "cmd/signalctl/config.toml", "logging config path")
	flag.Parse()

	logging.ConfigureRuntime()
	logger := logging.Init("signalctl")
	if cfg, err := logging.LoadConfig(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("using runtime logging defaults")
	} else {
		logging.Apply(cfg)
		logger = logging.Init("signalctl")
		log.Info().Str("path", *configPath).Msg("loaded logging config")
	}

	tick := signal.New("tick", signal.WithLogger(logger))
	tick.ConnectKW(onTick, []any{"bound"}, map[string]any{"source": "connect"})
	log.Info().Str("signal", tick.String()).Msg("signal ready")

	if err := tick.EmitKW(signal.DispatchSync, []any{1}, map[string]any{"source": "emit"}); err != nil {
		log.Fatal().Err(err).Msg("sync emit failed")
	}
	for i := 2; i <= 4; i++ {
		if err := tick.EmitKW(signal.DispatchThreaded, []any{i}, nil); err != nil {
			log.Fatal().Err(err).Msg("threaded emit failed")
		}
	}
	tick.Join()
	log.Info().Msg("all emissions complete")
}

func onTick(args []any, kwargs map[string]any) {
	time.Sleep(10 * time.Millisecond)
	log.Info().
		Interface("args", args).
		Interface("kwargs", kwargs).
		Msg("tick")
}
