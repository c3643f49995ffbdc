package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/feastly/admin-console/internal/auth"
	"github.com/feastly/admin-console/internal/badge"
	"github.com/feastly/admin-console/internal/charts"
	"github.com/feastly/admin-console/internal/config"
	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/demo"
	"github.com/feastly/admin-console/internal/upstream"
	"github.com/feastly/admin-console/internal/web"
)

type cli struct {
	Serve    serveCmd    `cmd:"" default:"1" help:"Run the admin console."`
	Fixtures fixturesCmd `cmd:"" help:"Demo fixture utilities."`
	Check    checkCmd    `cmd:"" help:"Ping the platform backend and report availability."`
}

type serveCmd struct{}

type fixturesCmd struct {
	Export exportCmd `cmd:"" help:"Write the embedded demo fixtures to a YAML file."`
}

type exportCmd struct {
	Out string `default:"fixtures.yaml" type:"path" help:"Destination file."`
}

type checkCmd struct {
	Timeout time.Duration `default:"5s" help:"How long to wait for the backend."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Feastly admin console: dashboard, directory, and moderation tooling."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

func newDataSource(cfg *config.Config, log *logrus.Logger) (console.DataSource, error) {
	if cfg.DataSource == config.SourceDemo {
		log.Info("serving embedded demo fixtures")
		return demo.NewDefaultStore()
	}
	return upstream.NewClient(upstream.Config{
		BaseURL:    cfg.UpstreamBaseURL,
		Tokens:     auth.NewStaticTokenSource(cfg.UpstreamToken),
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Logger:     log,
	})
}

func (cmd *serveCmd) Run(_ context.Context) error {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	data, err := newDataSource(cfg, log)
	if err != nil {
		return err
	}

	badges := badge.NewRegistry()
	if cfg.BadgeManifest != "" {
		doc, err := badges.LoadManifestFile(cfg.BadgeManifest)
		if err != nil {
			return fmt.Errorf("console: load badge manifest: %w", err)
		}
		log.WithFields(logrus.Fields{
			"manifest": cfg.BadgeManifest,
			"domains":  len(doc.Domains),
		}).Info("badge styles overridden")
	}

	svc := console.NewService(console.Options{
		Data:      data,
		Telemetry: console.LogTelemetry{Logger: log},
		Badges:    badges,
	})

	renderer, err := web.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("console: load templates: %w", err)
	}

	handler := web.NewHandler(
		svc,
		renderer,
		charts.NewRenderer(),
		cfg,
		log,
		console.LogTelemetry{Logger: log},
	)

	app := fiber.New(fiber.Config{
		AppName:      "Feastly Admin Console",
		ErrorHandler: web.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(logger.New())

	web.Register(app, handler, cfg)

	log.WithFields(logrus.Fields{
		"port":        cfg.AppPort,
		"data_source": cfg.DataSource,
	}).Info("starting admin console")
	return app.Listen(":" + cfg.AppPort)
}

func (cmd *exportCmd) Run(_ context.Context) error {
	fixtures, err := demo.DefaultFixtures()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(fixtures)
	if err != nil {
		return fmt.Errorf("console: encode fixtures: %w", err)
	}
	out, err := filepath.Abs(cmd.Out)
	if err != nil {
		return fmt.Errorf("console: resolve output path: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("console: write fixtures: %w", err)
	}
	fmt.Printf("wrote demo fixtures to %s\n", out)
	return nil
}

func (cmd *checkCmd) Run(ctx context.Context) error {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	client, err := upstream.NewClient(upstream.Config{
		BaseURL:    cfg.UpstreamBaseURL,
		Tokens:     auth.NewStaticTokenSource(cfg.UpstreamToken),
		HTTPClient: &http.Client{Timeout: cmd.Timeout},
		Logger:     log,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.Timeout)
	defer cancel()

	_, err = client.FetchOverview(ctx)
	switch {
	case err == nil:
		fmt.Printf("backend %s: ok\n", cfg.UpstreamBaseURL)
		return nil
	case errors.Is(err, upstream.ErrUnauthorized), errors.Is(err, upstream.ErrMissingToken):
		return fmt.Errorf("backend %s: credential rejected: %w", cfg.UpstreamBaseURL, err)
	default:
		return fmt.Errorf("backend %s: unavailable: %w", cfg.UpstreamBaseURL, err)
	}
}
