package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/cinefluent/internal/app"
)

func (r *runner) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and remember the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Sources: cli.EnvVars("CINEFLUENT_PASSWORD")},
		},
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			if err := a.Auth.Login(ctx, cmd.String("email"), cmd.String("password")); err != nil {
				return err
			}
			u := a.Auth.Snapshot().User
			fmt.Fprintf(r.stdout, "Welcome back, %s!\n", u.Name)
			return nil
		}),
	}
}

func (r *runner) registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Sources: cli.EnvVars("CINEFLUENT_PASSWORD")},
		},
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			if err := a.Auth.Register(ctx, cmd.String("email"), cmd.String("password"), cmd.String("name")); err != nil {
				return err
			}
			u := a.Auth.Snapshot().User
			fmt.Fprintf(r.stdout, "Welcome to CineFluent, %s!\n", u.Name)
			return nil
		}),
	}
}

func (r *runner) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "end the session",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			a.Auth.Logout(ctx)
			fmt.Fprintln(r.stdout, "Logged out.")
			return nil
		}),
	}
}

func (r *runner) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the signed-in user",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			snap := a.Auth.Init(ctx)
			if !snap.Authenticated() {
				if snap.Error != nil {
					fmt.Fprintln(r.stdout, snap.Error.Message)
				} else {
					fmt.Fprintln(r.stdout, "Not logged in.")
				}
				return nil
			}
			u := snap.User
			fmt.Fprintf(r.stdout, "%s <%s>\n", u.Name, u.Email)
			fmt.Fprintf(r.stdout, "Level: %s  Streak: %d days  Words: %d  Study time: %s\n",
				u.Level, u.Streak, u.TotalWords, u.StudyTime)
			return nil
		}),
	}
}
