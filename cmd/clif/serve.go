package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/clif/internal/api"
	"github.com/samcharles93/clif/internal/logger"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		encoding    string
		logLevel    string
		logFormat   string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve loaded .cli files over a REST API",
		ArgsUsage: "<file.cli> [file.cli ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "encoding",
				Aliases:     []string{"e"},
				Usage:       "binary encoding to decode with (short or long)",
				Value:       "long",
				Destination: &encoding,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)", Value: "info", Destination: &logLevel},
			&cli.StringFlag{Name: "log-format", Usage: "log format (pretty, json)", Value: "pretty", Destination: &logFormat},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := LoadConfig()
			applyCommonConfig(c, cfg, &encoding, &logLevel, &logFormat)
			applyServeConfig(c, cfg, &addr)

			log := newLogger(logLevel, logFormat)
			ctx = logger.WithContext(ctx, log)

			paths := c.Args().Slice()
			if len(paths) == 0 {
				return cli.Exit("error: no .cli files given", 1)
			}

			store := api.NewDocumentStore()
			for _, path := range paths {
				doc, err := api.LoadDocument(path, encoding)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: load %q: %v", path, err), 1)
				}
				defer func() { _ = doc.Close() }()
				store.Add(doc)
				log.Info("loaded document", "id", doc.ID, "path", path, "layers", doc.LayerCount())
			}

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			api.NewServer(store).Register(e)

			log.Info("starting server", "address", addr, "documents", len(paths))
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}

func newLogger(level, format string) logger.Logger {
	if format == "json" {
		return logger.JSON(os.Stderr, logger.ParseLevel(level))
	}
	return logger.Pretty(os.Stderr, logger.ParseLevel(level))
}
