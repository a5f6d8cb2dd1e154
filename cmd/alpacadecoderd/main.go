package main

import (
	"context"
	"flag"
	"net"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jamessynge/alpaca-decoder/alpacacfg"
	"github.com/jamessynge/alpaca-decoder/alpacalog"
	"github.com/jamessynge/alpaca-decoder/dispatch"
)

// Dependency injection composition root, matching the reference server's
// flag parsing + logger setup + dependency wiring shape.
func main() {
	logLevel := flag.String("loglevel", "info", "sets log level (a log_level in the -config file takes precedence). Can be one of: debug, info, warn, error, fatal, panic.")
	configPath := flag.String("config", "", "if set, load server configuration from this YAML file instead of the built-in defaults")
	flag.Parse()

	logger := alpacalog.New(*logLevel)

	cfg := alpacacfg.Default()
	if *configPath != "" {
		loaded, err := alpacacfg.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("error while loading configuration")
		}
		cfg = loaded
		if cfg.LogLevel != "" {
			logger = alpacalog.New(cfg.LogLevel)
		}
	}

	registry := buildRegistry(cfg)

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal().Err(err).Str("listen", cfg.Listen).Msg("error while starting listener")
	}
	logger.Info().Str("listen", cfg.Listen).Msg("starting alpaca decoder server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, ln, logger, registry); err != nil {
		logger.Fatal().Err(err).Msg("error while running alpaca decoder server")
	}
}

func buildRegistry(cfg *alpacacfg.Config) *dispatch.DeviceRegistry {
	devices := make([]dispatch.Device, 0, len(cfg.Devices))
	for _, dc := range cfg.Devices {
		devices = append(devices, dispatch.NewSafetyMonitorDevice(dc.DeviceNumber, dc.Name, dc.UniqueID))
	}
	return dispatch.NewDeviceRegistry(devices...)
}

// serve accepts connections until ctx is canceled, handling each
// concurrently via an errgroup.Group — the idiomatic replacement for a
// WaitGroup plus a side channel for the first error. One request per
// connection (see connectionHandler), so there is no per-connection
// keep-alive loop to manage.
func serve(ctx context.Context, ln net.Listener, logger zerolog.Logger, registry *dispatch.DeviceRegistry) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return ln.Close()
	})

	handler := newConnectionHandler(logger, registry)

	g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
					return err
				}
			}
			g.Go(func() error {
				handler.handle(conn)
				return nil
			})
		}
	})

	return g.Wait()
}
