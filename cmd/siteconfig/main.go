package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-site-config/internal/adapter"
	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/console"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/settings"
	"github.com/MKhiriev/go-site-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK = 0
	// exitConfigUnavailable is used when the default configuration cannot
	// be obtained; the tool stops without signalling an error.
	exitConfigUnavailable = 0
	exitFailure           = 1
	exitUsage             = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	printBuildInfo(stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "error getting configs: %v\n", err)
		return exitUsage
	}

	log := logger.NewLogger("siteconfig", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	remote := adapter.NewHTTPRemoteSource(cfg.Adapter, log)
	manager, err := settings.New(cfg.Settings, remote, console.New(stderr), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating settings manager")
		return exitFailure
	}

	if err = manager.Load(ctx); err != nil {
		log.Error().Err(err).Msg("configuration unavailable, stopping")
		return exitConfigUnavailable
	}

	switch {
	case !cfg.Action.Get.IsZero():
		return printValue(manager, cfg.Action, stdout, log)
	case !cfg.Action.Set.Path.IsZero():
		set := cfg.Action.Set
		manager.SetKey(set.Path.Section, set.Path.Key, set.Decoded(), settings.OriginConfig)
		manager.Write()
	}

	return exitOK
}

func printValue(manager *settings.Manager, action config.Action, stdout io.Writer, log *logger.Logger) int {
	origin := settings.OriginConfig
	if action.FromSite {
		origin = settings.OriginSite
	}

	v, err := manager.ReadKey(action.Get.Section, action.Get.Key, settings.KindRaw, origin)
	if err != nil {
		log.Error().Err(err).Str("key", action.Get.String()).Msg("error reading key")
		return exitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err = enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("error printing value")
		return exitFailure
	}

	return exitOK
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
