package screen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// progressAPI defines the client operations needed by the Progress screen.
type progressAPI interface {
	GetWeeklyProgress(ctx context.Context) ([]domain.WeeklyActivity, error)
	GetAchievements(ctx context.Context) ([]domain.Achievement, error)
	GetUserStats(ctx context.Context) (domain.UserStats, error)
}

// ProgressData is everything the Progress screen shows.
type ProgressData struct {
	Weekly       []domain.WeeklyActivity
	Achievements []domain.Achievement
	Stats        domain.UserStats
}

// Earned returns the achievements already earned.
func (d ProgressData) Earned() []domain.Achievement {
	var out []domain.Achievement
	for _, a := range d.Achievements {
		if a.Status == domain.AchievementEarned {
			out = append(out, a)
		}
	}
	return out
}

// ActiveDays counts days with at least one completed lesson.
func (d ProgressData) ActiveDays() int {
	n := 0
	for _, w := range d.Weekly {
		if w.LessonsCompleted > 0 {
			n++
		}
	}
	return n
}

// Progress is the learning statistics screen.
type Progress struct {
	api  progressAPI
	data *Loader[ProgressData]
}

func NewProgress(api progressAPI) *Progress {
	s := &Progress{api: api}
	s.data = NewLoader(s.load, func(d ProgressData) bool {
		return len(d.Weekly) == 0 && len(d.Achievements) == 0
	})
	return s
}

func (s *Progress) load(ctx context.Context) (ProgressData, error) {
	var d ProgressData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Weekly, err = s.api.GetWeeklyProgress(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Achievements, err = s.api.GetAchievements(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Stats, err = s.api.GetUserStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProgressData{}, err
	}
	return d, nil
}

func (s *Progress) Mount(ctx context.Context) View[ProgressData] { return s.data.Mount(ctx) }

func (s *Progress) Unmount() { s.data.Unmount() }

func (s *Progress) Data() View[ProgressData] { return s.data.View() }
