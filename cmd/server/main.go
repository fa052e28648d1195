package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/xtding233/name-reel/internal/config"
	"github.com/xtding233/name-reel/internal/picker"
	"github.com/xtding233/name-reel/internal/reel"
	"github.com/xtding233/name-reel/internal/server"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(getEnv("NAMEREEL_LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid NAMEREEL_LOG_LEVEL")
	}
	zerolog.SetGlobalLevel(level)

	addr := getEnv("NAMEREEL_ADDR", ":9090")
	profile := getEnv("NAMEREEL_PROFILE", "")
	loader := config.NewLoader(getEnv("NAMEREEL_CONFIG_DIR", "config"))

	raw, err := loader.LoadMerged(profile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	settings, err := config.Resolve(raw, config.Overrides{})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	// headless reel: clients read the winner back from the settled reel
	mem := reel.NewMemory(nil, false)
	board := reel.NewBoard()
	board.Add(settings.Selector, mem)

	p, err := picker.New(board, picker.Options{
		ReelSelector:      settings.Selector,
		RemoveWinner:      &settings.RemoveWinner,
		Timing:            settings.Timing,
		OnSpinStart:       func() { log.Debug().Msg("spin started") },
		OnSpinEnd:         func() { log.Debug().Msg("spin finished") },
		OnNameListChanged: func() { log.Debug().Msg("name list replaced") },
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build picker")
	}

	svc := server.NewService(p, mem, nil, log.Logger)
	svc.ReplaceNames(settings.Names)

	if settings.NamesFile != "" {
		w := config.NewFileWatcher([]string{settings.NamesFile}, 2*time.Second, nil, func(path string) {
			names, err := config.ReadNames(path)
			if err != nil {
				log.Error().Err(err).Str("path", path).Msg("failed to reload names")
				return
			}
			svc.ReplaceNames(names)
			log.Info().Str("path", path).Int("names", len(names)).Msg("names reloaded")
		})
		w.Start()
		defer w.Stop()
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("failed to listen")
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(server.LoggingInterceptor(log.Logger)))
	server.Register(gs, svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", addr).
			Str("profile", profile).
			Str("config_version", settings.Version).
			Str("timing", string(settings.Timing.Model)).
			Bool("remove_winner", settings.RemoveWinner).
			Int("names", len(settings.Names)).
			Msg("picker service listening")
		if err := gs.Serve(lis); err != nil {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	gs.GracefulStop()
}
