package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/RRWM1rr0rB/uuidx/core/basex"
	"github.com/RRWM1rr0rB/uuidx/core/uuid"
	"github.com/RRWM1rr0rB/uuidx/logging"
)

// runner carries the state built by the root Before hook into the commands.
type runner struct {
	ctx context.Context
	out io.Writer
	cfg *Config
	tc  *uuid.Transcoder
}

func newApp(stdout, stderr io.Writer) *cli.App {
	r := &runner{out: stdout}

	return &cli.App{
		Name:                   "uuidx",
		Usage:                  "Shorten UUIDs with a base-N alphabet and expand them back",
		Writer:                 stdout,
		ErrWriter:              stderr,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "alphabet",
				Aliases: []string{"a"},
				Usage:   "Preset alphabet (" + strings.Join(basex.Presets(), ", ") + ")",
				Value:   basex.PresetBase62,
			},
			&cli.StringFlag{
				Name:  "symbols",
				Usage: "Custom alphabet, one symbol per character (overrides --alphabet)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Write logs as JSON",
			},
			&cli.BoolFlag{
				Name:  "log-source",
				Usage: "Add the source file and line to log entries",
			},
		},
		Before: func(c *cli.Context) error {
			return r.setup(c, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Generate random v4 UUIDs in compact form",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of UUIDs to generate",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:  "fast",
						Usage: "Use a ChaCha8 stream seeded from crypto/rand instead of crypto/rand directly",
					},
				},
				Action: r.generate,
			},
			{
				Name:      "encode",
				Aliases:   []string{"e"},
				Usage:     "Convert canonical UUIDs to compact form",
				ArgsUsage: "<uuid>...",
				Action:    r.encode,
			},
			{
				Name:      "decode",
				Aliases:   []string{"d"},
				Usage:     "Convert compact UUIDs to canonical form",
				ArgsUsage: "<encoded>...",
				Action:    r.decode,
			},
			{
				Name:      "raw",
				Usage:     "Print the bytes of any encoded string as hex",
				ArgsUsage: "<encoded>...",
				Action:    r.raw,
			},
		},
	}
}

func (r *runner) setup(c *cli.Context, stderr io.Writer) error {
	r.cfg = NewConfig(
		WithAlphabet(c.String("alphabet")),
		WithSymbols(c.String("symbols")),
		WithLogLevel(c.String("log-level")),
		WithLogJSON(c.Bool("log-json")),
		WithLogSource(c.Bool("log-source")),
	)
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(
		logging.WithWriter(stderr),
		logging.WithLevel(r.cfg.LogLevel),
		logging.WithIsJSON(r.cfg.LogJSON),
		logging.WithAddSource(r.cfg.LogSource),
		logging.WithSetDefault(false),
	)
	r.ctx = logging.ContextWithLogger(c.Context, logger)

	tc, err := r.cfg.Transcoder()
	if err != nil {
		return err
	}
	r.tc = tc

	logger.Debug("transcoder ready",
		logging.StringAttr("alphabet", r.cfg.Alphabet),
		logging.IntAttr("custom_symbols", len([]rune(r.cfg.Symbols))),
	)
	return nil
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.NewLogger(logging.WithWriter(os.Stderr)).Error("uuidx failed", logging.ErrAttr(err))
		os.Exit(1)
	}
}
