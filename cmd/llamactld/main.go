package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"llamactld/internal/config"
	"llamactld/internal/httpapi"
	"llamactld/internal/supervisor"
	"llamactld/internal/sysinfo"
)

const (
	version    = "2.1.0"
	serverName = "llamactld"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath, addr string
	root := &cobra.Command{
		Use:           "llamactld",
		Short:         "Control server supervising a local llama-server process",
		Long:          "llamactld starts, stops, and monitors a single llama-server child\nprocess and exposes a JSON control API plus a web status page.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath, addr)
		},
	}
	defaultCfg := "config.yaml"
	if v := os.Getenv("LLAMACTLD_CONFIG"); v != "" {
		defaultCfg = v
	}
	root.Flags().StringVar(&cfgPath, "config", defaultCfg, "Path to config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&addr, "addr", os.Getenv("LLAMACTLD_ADDR"), "Listen address override, e.g. :8081")
	return root
}

func run(cfgPath, addrOverride string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfgPath).Msg("cannot load config")
		return err
	}
	errs, warnings := config.Validate(cfg)
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			logger.Error().Msg(e)
		}
		return fmt.Errorf("configuration invalid, fix %s and try again", cfgPath)
	}

	sup := supervisor.New(cfg, logger.With().Str("component", "supervisor").Logger())
	httpapi.SetLogger(logger.With().Str("component", "http").Logger())

	mux := httpapi.NewMux(controlService{sup}, httpapi.Options{
		APIKey:     cfg.Security.APIKey,
		Version:    version,
		ServerName: serverName,
	})

	addr := addrOverride
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		net := sysinfo.Info()
		logger.Info().
			Str("addr", addr).
			Str("hostname", net.Hostname).
			Str("local_ip", net.Local).
			Int("models", len(cfg.Models)).
			Msg("llamactld listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	// Never leak the child past our own exit.
	if res := sup.Stop(); res.Stopped != "" {
		logger.Info().Str("model", res.Stopped).Str("name", res.Name).Msg("stopped managed model")
	}
	logger.Info().Msg("server stopped")
	return nil
}
