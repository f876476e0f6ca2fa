// TextSense analyzes the sentiment of text typed, read from an image, or
// spoken, and optionally translates it.
//
// Usage:
//
//	textsense [flags]
//	textsense -ui web -config configs/textsense.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/backend"
	"github.com/aashnajoshi/TextSense/internal/config"
	"github.com/aashnajoshi/TextSense/internal/health"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/shell"
	"github.com/aashnajoshi/TextSense/internal/shell/console"
	"github.com/aashnajoshi/TextSense/internal/shell/desktop"
	"github.com/aashnajoshi/TextSense/internal/shell/web"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/textsense.yaml)")
	envFile := flag.String("env", ".env", "path to dotenv file")
	uiMode := flag.String("ui", "", "shell to run: console, web or desktop (overrides config)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("textsense %s\n", version)
		os.Exit(0)
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *uiMode != "" {
		cfg.UI.Mode = strings.ToLower(strings.TrimSpace(*uiMode))
	}

	if err := cfg.Validate(); err != nil {
		var missing *config.MissingError
		if errors.As(err, &missing) {
			fmt.Fprintf(os.Stderr, "textsense: %v\nSet them in the environment, %s, or the config file.\n", err, *envFile)
		} else {
			fmt.Fprintf(os.Stderr, "textsense: %v\n", err)
		}
		os.Exit(1)
	}

	config.SetupLogging(cfg.Logging, os.Stderr)
	slog.Info("textsense starting", "version", version, "ui", cfg.UI.Mode)

	set, err := backend.Build(cfg)
	if err != nil {
		slog.Error("failed to build backends", "error", err)
		os.Exit(1)
	}

	deps := shell.Deps{
		Pipeline:   pipeline.New(set.Analyzer, set.Translator),
		Reader:     set.Reader,
		Recognizer: set.Recognizer,
	}
	if set.Recognizer != nil && cfg.UI.Mode != "web" {
		deps.Microphone = audio.NewMicrophone(cfg.Microphone)
	}

	sh := newShell(cfg, deps, set)
	defer sh.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sh.Run(ctx); err != nil {
		slog.Error("shell failed", "name", sh.Name(), "error", err)
		os.Exit(1)
	}
	slog.Info("textsense stopped")
}

func newShell(cfg *config.Config, deps shell.Deps, set *backend.Set) shell.Shell {
	switch cfg.UI.Mode {
	case "web":
		checker := health.New()
		for capability, name := range set.Names() {
			checker.SetBackend(capability, name)
		}
		return web.New(deps,
			web.WithPort(cfg.Web.Port),
			web.WithMaxUploadMB(cfg.Web.MaxUploadMB),
			web.WithHealth(checker),
		)
	case "desktop":
		return desktop.New(deps, nil)
	default:
		return console.New(deps, os.Stdin, os.Stdout)
	}
}
