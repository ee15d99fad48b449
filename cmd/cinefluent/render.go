package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/cinefluent/internal/domain"
	"github.com/heartmarshall/cinefluent/internal/screen"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func progressBar(pct, width int) string {
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(".", width-filled), pct)
}

func renderMovies(w io.Writer, movies []domain.Movie) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tLANGUAGE\tLEVEL\tRATING\tLESSONS\tPROGRESS")
	for _, m := range movies {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%.1f\t%d/%d\t%d%%\n",
			m.ID, m.Thumbnail, m.Title, m.Language, m.Difficulty, m.Rating,
			m.CompletedLessons, m.TotalLessons, m.Progress)
	}
	tw.Flush() //nolint:errcheck
}

func renderLessons(w io.Writer, lessons []domain.Lesson) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tAT\tWORDS\tQUESTIONS\tDONE")
	for _, l := range lessons {
		done := ""
		if l.Completed {
			done = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			l.ID, l.Title, l.Timestamp, len(l.Vocabulary), len(l.Quiz), done)
	}
	tw.Flush() //nolint:errcheck
}

func renderLesson(w io.Writer, l domain.Lesson) {
	fmt.Fprintf(w, "%s  (%s)\n\n", l.Title, l.Timestamp)
	fmt.Fprintf(w, "  %q\n  %s\n\n", l.Subtitle, l.Translation)
	if len(l.Vocabulary) == 0 {
		return
	}
	fmt.Fprintln(w, "Vocabulary:")
	tw := newTable(w)
	for _, v := range l.Vocabulary {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Word, v.Pronunciation, v.Translation)
	}
	tw.Flush() //nolint:errcheck
	fmt.Fprintf(w, "\n%d quiz questions. Run `cinefluent quiz %s` to practise.\n", len(l.Quiz), l.ID)
}

func renderProgress(w io.Writer, d screen.ProgressData) {
	st := d.Stats
	fmt.Fprintf(w, "Streak: %d days (longest %d)  Weekly goal: %d/%d\n",
		st.Streak.Current, st.Streak.Longest, st.Streak.WeeklyProgress, st.Streak.WeeklyGoal)
	fmt.Fprintf(w, "Words: %d (+%d this week)  Time: %s (%s this week)\n",
		st.Vocabulary.TotalWords, st.Vocabulary.WeeklyWords, st.Time.TotalTime, st.Time.WeeklyTime)
	fmt.Fprintf(w, "Active days: %d of the last %d\n\n", d.ActiveDays(), len(d.Weekly))

	fmt.Fprintln(w, "Last 7 days:")
	recent := d.Weekly[max(0, len(d.Weekly)-7):]
	for _, day := range recent {
		fmt.Fprintf(w, "  %s  %-3s %d lessons, %d min\n",
			day.Date, strings.Repeat("*", day.LessonsCompleted), day.LessonsCompleted, day.TimeSpent)
	}

	fmt.Fprintln(w, "\nAchievements:")
	for _, a := range d.Achievements {
		line := fmt.Sprintf("  %s %s: %s", a.Icon, a.Title, a.Status)
		switch {
		case a.EarnedDate != nil:
			line += " (" + *a.EarnedDate + ")"
		case a.Progress != nil:
			line += fmt.Sprintf(" (%d%%)", *a.Progress)
		}
		fmt.Fprintln(w, line)
	}
}

func renderCommunity(w io.Writer, d screen.CommunityData, limit int) {
	fmt.Fprintln(w, "Feed:")
	posts := d.Posts
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	if len(posts) == 0 {
		fmt.Fprintln(w, "  Nothing here yet.")
	}
	for _, p := range posts {
		fmt.Fprintf(w, "  [%s] %s · %s · %d likes\n    %s\n", p.Initials, p.User, p.Time, p.Likes, p.Content)
	}

	fmt.Fprintln(w, "\nLeaderboard:")
	tw := newTable(w)
	for _, e := range d.Leaderboard {
		me := ""
		if e.IsCurrentUser {
			me = "<- you"
		}
		fmt.Fprintf(tw, "  #%d\t%s\t%d pts\t%s\t%s\n", e.Rank, e.Name, e.Points, e.Change, me)
	}
	tw.Flush() //nolint:errcheck
}

func renderProfile(w io.Writer, d screen.ProfileData) {
	u := d.User
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(w, "Level: %s  Streak: %d days  Words: %d  Study time: %s\n\n", u.Level, u.Streak, u.TotalWords, u.StudyTime)

	fmt.Fprintln(w, "Languages:")
	for _, l := range d.Languages {
		fmt.Fprintf(w, "  %s %-8s %-16s %s\n", l.Flag, l.Name, l.Level, progressBar(l.Progress, 20))
	}

	st := d.Stats
	fmt.Fprintf(w, "\nMovies: %d completed, %d in progress, %d available\n",
		st.Movies.Completed, st.Movies.InProgress, st.Movies.TotalAvailable)
	fmt.Fprintf(w, "Rank: #%d with %d points (%d to next rank)\n",
		st.Ranking.CurrentRank, st.Ranking.Points, st.Ranking.NextRankPoints)
	fmt.Fprintf(w, "Theme: %s\n", d.Theme)
}
