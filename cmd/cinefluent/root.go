package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/cinefluent/internal/app"
	"github.com/heartmarshall/cinefluent/internal/config"
)

// runner owns the lazily built App and the command's I/O.
type runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	app *app.App
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	r := &runner{stdin: stdin, stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name:      "cinefluent",
		Usage:     "learn languages through movie scenes",
		Writer:    stdout,
		ErrWriter: stderr,
		Reader:    stdin,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "override the API base URL",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "serve everything from the bundled catalog",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			return r.close()
		},
		Commands: []*cli.Command{
			r.loginCommand(),
			r.registerCommand(),
			r.logoutCommand(),
			r.whoamiCommand(),
			r.moviesCommand(),
			r.lessonsCommand(),
			r.lessonCommand(),
			r.quizCommand(),
			r.progressCommand(),
			r.communityCommand(),
			r.profileCommand(),
			r.themeCommand(),
			{
				Name:  "version",
				Usage: "print the build version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintln(r.stdout, app.BuildVersion())
					return nil
				},
			},
		},
	}
}

// open loads configuration, applies global flag overrides and builds the
// App once per invocation.
func (r *runner) open(ctx context.Context, cmd *cli.Command) (*app.App, error) {
	if r.app != nil {
		return r.app, nil
	}

	if path := cmd.String("config"); path != "" {
		if err := os.Setenv("CONFIG_PATH", path); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if u := strings.TrimSpace(cmd.String("api-url")); u != "" {
		cfg.API.BaseURL = u
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if cmd.Bool("mock") {
		cfg.API.UseMock = true
	}
	if cmd.Bool("verbose") {
		cfg.Log.Level = "debug"
	}

	a, err := app.New(ctx, cfg, r.stderr)
	if err != nil {
		return nil, err
	}
	r.app = a
	return a, nil
}

func (r *runner) close() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil
	return err
}

// action adapts a handler that needs the App to a cli.ActionFunc.
func (r *runner) action(fn func(ctx context.Context, cmd *cli.Command, a *app.App) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		a, err := r.open(ctx, cmd)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, a)
	}
}
