package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/comalice/fsm"
	"github.com/comalice/fsm/internal/loader"
	"github.com/comalice/fsm/internal/logging"
)

// Version is set during build using ldflags
var Version = "dev"

var errConfigPathRequired = errors.New("config file path required")

func main() {
	defaults, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newApp(os.Stdout, defaults).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer, defaults envConfig) *cli.Command {
	return &cli.Command{
		Name:    "fsmctl",
		Version: Version,
		Usage:   "Inspect and exercise finite-state machine configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: defaults.LogLevel,
				Usage: "trace, debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: defaults.LogFormat,
				Usage: "text or json",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.String("log-format"), cmd.String("log-level"), os.Stderr)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintf(stdout, "fsmctl version %s\n", cmd.Root().Version)
					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file and print it normalized",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfigArg(cmd)
					if err != nil {
						return err
					}
					fmt.Fprintf(stdout, "# %s is valid\n", cmd.Args().First())
					return loader.Encode(stdout, cfg)
				},
			},
			{
				Name:      "states",
				Usage:     "List states, optionally only those handling an event",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "event", Usage: "only states with a transition for this event"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					m, err := machineFromArg(cmd)
					if err != nil {
						return err
					}
					for _, name := range m.States(cmd.String("event")) {
						fmt.Fprintln(stdout, name)
					}
					return nil
				},
			},
			{
				Name:  "run",
				Usage: "Replay operations against a machine built from FILE",
				ArgsUsage: "FILE STEP...\n\n" +
					"Steps: trigger=EVENT change=STATE undo redo reset clear state states[=EVENT]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Value: defaults.Strict,
						Usage: "stop at the first failing step",
					},
					&cli.BoolFlag{
						Name:  "invalidate-redo",
						Usage: "clear the redo stack on forward transitions and reset",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var opts []fsm.Option
					if cmd.Bool("invalidate-redo") {
						opts = append(opts, fsm.WithRedoInvalidation())
					}
					m, err := machineFromArg(cmd, opts...)
					if err != nil {
						return err
					}
					steps, err := parseSteps(cmd.Args().Tail())
					if err != nil {
						return err
					}
					fmt.Fprintf(stdout, "start: %s\n", m.State())
					return replay(m, steps, stdout, cmd.Bool("strict"))
				},
			},
		},
	}
}

func loadConfigArg(cmd *cli.Command) (fsm.Config, error) {
	path := strings.TrimSpace(cmd.Args().First())
	if path == "" {
		return fsm.Config{}, errConfigPathRequired
	}
	cfg, err := loader.FromFile(path)
	if err != nil {
		return fsm.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func machineFromArg(cmd *cli.Command, opts ...fsm.Option) (*fsm.StateMachine, error) {
	cfg, err := loadConfigArg(cmd)
	if err != nil {
		return nil, err
	}
	opts = append([]fsm.Option{fsm.WithLogger(slog.Default())}, opts...)
	return fsm.New(cfg, opts...)
}
