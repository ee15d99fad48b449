package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/cinefluent/internal/app"
	"github.com/heartmarshall/cinefluent/internal/domain"
	"github.com/heartmarshall/cinefluent/internal/screen"
)

var errMissingArg = errors.New("missing argument")

func firstArg(cmd *cli.Command, name string) (string, error) {
	v := strings.TrimSpace(cmd.Args().First())
	if v == "" {
		return "", fmt.Errorf("%w: %s", errMissingArg, name)
	}
	return v, nil
}

func (r *runner) moviesCommand() *cli.Command {
	return &cli.Command{
		Name:  "movies",
		Usage: "list the movie catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Value: "All", Usage: "Spanish, French, German or All"},
		},
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			s := screen.NewLearn(a.Client)
			v := s.SetLanguage(ctx, cmd.String("language"))
			switch v.Status {
			case screen.StatusError:
				return v.Err
			case screen.StatusEmpty:
				fmt.Fprintln(r.stdout, "No movies found.")
				return nil
			}
			if cw := s.ContinueWatching(); len(cw) > 0 {
				fmt.Fprintln(r.stdout, "Continue watching:")
				for _, m := range cw {
					fmt.Fprintf(r.stdout, "  %s %s  %s\n", m.Thumbnail, m.Title, progressBar(m.Progress, 20))
				}
				fmt.Fprintln(r.stdout)
			}
			renderMovies(r.stdout, v.Data)
			return nil
		}),
	}
}

func (r *runner) lessonsCommand() *cli.Command {
	return &cli.Command{
		Name:      "lessons",
		Usage:     "list the lessons of a movie",
		ArgsUsage: "<movie-id>",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			id, err := firstArg(cmd, "movie-id")
			if err != nil {
				return err
			}
			lessons, err := a.Client.GetMovieLessons(ctx, id)
			if err != nil {
				return err
			}
			if len(lessons) == 0 {
				fmt.Fprintln(r.stdout, "No lessons yet.")
				return nil
			}
			renderLessons(r.stdout, lessons)
			return nil
		}),
	}
}

func (r *runner) lessonCommand() *cli.Command {
	return &cli.Command{
		Name:      "lesson",
		Usage:     "show a lesson scene and its vocabulary",
		ArgsUsage: "<lesson-id>",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			id, err := firstArg(cmd, "lesson-id")
			if err != nil {
				return err
			}
			v := screen.NewLesson(a.Client, id).Mount(ctx)
			if v.Status == screen.StatusError {
				return v.Err
			}
			renderLesson(r.stdout, v.Data)
			return nil
		}),
	}
}

func (r *runner) quizCommand() *cli.Command {
	return &cli.Command{
		Name:      "quiz",
		Usage:     "take a lesson quiz, reading answers from stdin",
		ArgsUsage: "<lesson-id>",
		Action: r.action(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			id, err := firstArg(cmd, "lesson-id")
			if err != nil {
				return err
			}
			s := screen.NewLesson(a.Client, id)
			v := s.Mount(ctx)
			if v.Status == screen.StatusError {
				return v.Err
			}

			in := bufio.NewScanner(r.stdin)
			for i, q := range v.Data.Quiz {
				fmt.Fprintf(r.stdout, "\nQ%d. %s\n", i+1, q.Question)
				for j, opt := range q.Options {
					fmt.Fprintf(r.stdout, "  %d) %s\n", j+1, opt)
				}
				fmt.Fprint(r.stdout, "> ")
				answer := ""
				if in.Scan() {
					answer = resolveOption(q, in.Text())
				}
				ok, err := s.Answer(q.ID, answer)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintln(r.stdout, "Correct!")
				} else {
					fmt.Fprintf(r.stdout, "Not quite. The answer is %q.\n", q.CorrectAnswer)
				}
				if q.Explanation != nil {
					fmt.Fprintln(r.stdout, *q.Explanation)
				}
			}
			if err := in.Err(); err != nil {
				return err
			}

			res, err := s.Complete(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.stdout, "\nScore: %d%% (%d/%d correct)\n", res.Progress.Score, res.Correct, res.Total)
			return nil
		}),
	}
}

// resolveOption maps "2" to the second option of a multiple-choice question.
func resolveOption(q domain.QuizQuestion, input string) string {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return input
}
