package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	_ "github.com/invoicepress/invoicepress/docs"
	"github.com/invoicepress/invoicepress/pkg/api"
	"github.com/invoicepress/invoicepress/pkg/config"
	"github.com/invoicepress/invoicepress/pkg/invoice"
	"github.com/invoicepress/invoicepress/pkg/storage"
	"github.com/invoicepress/invoicepress/pkg/uploader"
)

// @title InvoicePress API
// @version 1.0
// @description Invoice builder with GST tax breakdown, UPI payment links, PDF export and a printable view.
// @BasePath /
func main() {
	app := &cli.App{
		Name:  "invoicepress",
		Usage: "invoice builder service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "demo",
						Usage: "serve from an in-memory store, no database or uploads",
					},
				},
				Action: serve,
			},
			{
				Name:  "number",
				Usage: "print a fresh invoice number",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, invoice.NewNumber())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	demo := c.Bool("demo")
	if !demo {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if demo {
		store = storage.NewMemory()
		log.Warn().Msg("demo mode: invoices are kept in memory only")
	} else {
		pg, err := storage.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer pg.Close()
		store = pg
	}

	var uploads uploader.Uploader
	if !demo && cfg.UploadsEnabled() {
		s3, err := uploader.NewS3(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			return fmt.Errorf("logo uploads: %w", err)
		}
		uploads = s3
	} else {
		log.Info().Msg("logo uploads disabled")
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      api.New(store, uploads, cfg.QR, log).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var log zerolog.Logger
	if cfg.LogFormat == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger(), nil
}
