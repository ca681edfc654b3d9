package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/vine"
	"github.com/iw2rmb/vine/editor"
	"github.com/iw2rmb/vine/internal/config"
	"github.com/iw2rmb/vine/internal/logutils"
	"github.com/iw2rmb/vine/internal/term"
)

func main() {
	var flags struct {
		configPath string
		logFile    string
		logLevel   string
	}

	app := &cli.Command{
		Name:      "vine",
		Usage:     "A tiny terminal text editor",
		UsageText: "vine [global options] [file]",
		Version:   vine.Version(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("VINE_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &flags.configPath,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logging is off without it)",
				Sources:     cli.EnvVars("VINE_LOG_FILE"),
				Destination: &flags.logFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("VINE_LOG_LEVEL"),
				Value:       "",
				Destination: &flags.logLevel,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 1 {
				return fmt.Errorf("expected at most one file argument, got %d", c.Args().Len())
			}

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.logFile != "" {
				cfg.LogFile = flags.logFile
			}
			if flags.logLevel != "" {
				cfg.LogLevel = flags.logLevel
			}

			logger, logCloser, err := logutils.New(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			defer logCloser()

			return run(c.Args().First(), cfg, logger)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the session. Raw mode is always
// restored on the way out, including on error, so a crash never leaves the
// shell unusable.
func run(path string, cfg config.Config, logger zerolog.Logger) error {
	console, err := term.Open()
	if err != nil {
		return err
	}
	defer func() {
		if rerr := console.Restore(); rerr != nil {
			logger.Error().Err(rerr).Msg("restore terminal")
		}
	}()

	ed, err := editor.New(console, editor.Config{
		TabWidth:     cfg.TabWidth,
		QuitWarnings: cfg.QuitWarnings,
		Theme:        editor.Sonokai(),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if path != "" {
		// A failed load is reported on the status line; the session still
		// starts with an empty buffer.
		_ = ed.Open(path)
	}

	return ed.Run()
}
