package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/cinefluent/internal/app"
	"github.com/heartmarshall/cinefluent/internal/domain"
	"github.com/heartmarshall/cinefluent/internal/screen"
)

func (r *runner) progressCommand() *cli.Command {
	return &cli.Command{
		Name:  "progress",
		Usage: "show streaks, weekly activity and achievements",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			v := screen.NewProgress(a.Client).Mount(ctx)
			if v.Status == screen.StatusError {
				return v.Err
			}
			renderProgress(r.stdout, v.Data)
			return nil
		}),
	}
}

func (r *runner) communityCommand() *cli.Command {
	return &cli.Command{
		Name:  "community",
		Usage: "read the community feed and leaderboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "post", Usage: "publish a post before showing the feed"},
			&cli.IntFlag{Name: "limit", Value: 10, Usage: "number of posts to show"},
		},
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			s := screen.NewCommunity(a.Logger, a.Client)
			v := s.Mount(ctx)
			if v.Status == screen.StatusError {
				return v.Err
			}
			if content := cmd.String("post"); content != "" {
				if _, err := s.Post(ctx, content); err != nil {
					return fmt.Errorf("post: %w", err)
				}
				fmt.Fprintln(r.stdout, "Posted.")
				fmt.Fprintln(r.stdout)
			}
			renderCommunity(r.stdout, s.Data().Data, int(cmd.Int("limit")))
			return nil
		}),
	}
}

func (r *runner) profileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "show the learner profile",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			v := screen.NewProfile(a.Client, a.Settings).Mount(ctx)
			if v.Status == screen.StatusError {
				return v.Err
			}
			renderProfile(r.stdout, v.Data)
			return nil
		}),
	}
}

func (r *runner) themeCommand() *cli.Command {
	return &cli.Command{
		Name:      "theme",
		Usage:     "show or change the theme",
		ArgsUsage: "[light|dark|system|toggle]",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			arg := strings.ToLower(strings.TrimSpace(cmd.Args().First()))
			switch arg {
			case "":
			case "toggle":
				if _, err := a.Settings.Toggle(ctx); err != nil {
					return err
				}
			default:
				if err := a.Settings.SetTheme(ctx, domain.Theme(arg)); err != nil {
					return err
				}
			}
			fmt.Fprintf(r.stdout, "Theme: %s\n", a.Settings.Theme(ctx))
			return nil
		}),
	}
}
