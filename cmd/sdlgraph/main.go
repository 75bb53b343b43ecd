/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const version = "0.1.0"

var versionCmd = &cli.Command{
	Name:  "version",
	Usage: "print the version",
	Action: func(ctx *cli.Context) error {
		_, err := fmt.Fprintln(ctx.App.Writer, version)
		return err
	},
}

var buildCmd = &cli.Command{
	Name:      "build",
	Usage:     "build the type graph from schema files and dump it",
	ArgsUsage: "[files...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "load settings from the YAML `FILE`",
			EnvVars: []string{"SDLGRAPH_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "legacy-comment-descriptions",
			Usage:   "use the comments before a definition as its description",
			EnvVars: []string{"SDLGRAPH_LEGACY_COMMENT_DESCRIPTIONS"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format (json or text)",
			EnvVars: []string{"SDLGRAPH_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the result to `FILE` instead of stdout",
			EnvVars: []string{"SDLGRAPH_OUTPUT"},
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg, err := configFromContext(ctx)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}

		logger := loggerFromContext(ctx)
		schema, err := buildSchema(cfg, logger)
		if err != nil {
			return cli.Exit(err.Error(), 3)
		}

		var w io.Writer = ctx.App.Writer
		if len(cfg.Output) > 0 {
			file, err := os.Create(cfg.Output)
			if err != nil {
				return cli.Exit(err.Error(), 4)
			}
			defer file.Close()
			w = file
		}

		if err := Dump(w, schema, cfg.Format); err != nil {
			return cli.Exit(err.Error(), 4)
		}
		return nil
	},
}

// configFromContext loads the config file given by --config and applies the overrides from the
// other flags and the arguments.
func configFromContext(ctx *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if filename := ctx.String("config"); len(filename) > 0 {
		var err error
		cfg, err = LoadConfig(filename)
		if err != nil {
			return nil, err
		}
	}

	if ctx.Args().Present() {
		cfg.Schema = ctx.Args().Slice()
	}
	if ctx.IsSet("legacy-comment-descriptions") {
		cfg.LegacyCommentDescriptions = ctx.Bool("legacy-comment-descriptions")
	}
	if ctx.IsSet("format") {
		cfg.Format = ctx.String("format")
	}
	if ctx.IsSet("output") {
		cfg.Output = ctx.String("output")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const loggerKey = "logger"

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}

func loggerFromContext(ctx *cli.Context) *zap.Logger {
	if logger, ok := ctx.App.Metadata[loggerKey].(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sdlgraph"
	app.Usage = "build a GraphQL type graph from schema language documents"
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "print debug logs",
			EnvVars: []string{"SDLGRAPH_VERBOSE"},
		},
	}
	app.Commands = []*cli.Command{
		versionCmd,
		buildCmd,
	}
	app.Before = func(ctx *cli.Context) error {
		logger, err := newLogger(ctx.Bool("verbose"))
		if err != nil {
			return err
		}
		if ctx.App.Metadata == nil {
			ctx.App.Metadata = map[string]interface{}{}
		}
		ctx.App.Metadata[loggerKey] = logger
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		_ = loggerFromContext(ctx).Sync()
		return nil
	}
	return app
}

// loadDotEnv loads environment variables from .env in the working directory if there's one.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func main() {
	if err := loadDotEnv(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to load .env: %s\n", err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprint(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}
