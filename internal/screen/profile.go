package screen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// profileAPI defines the client operations needed by the Profile screen.
type profileAPI interface {
	GetCurrentUser(ctx context.Context) (domain.User, error)
	GetUserLanguages(ctx context.Context) ([]domain.LanguageProgress, error)
	GetUserStats(ctx context.Context) (domain.UserStats, error)
}

// themeSettings defines the preference operations needed by the Profile screen.
type themeSettings interface {
	Theme(ctx context.Context) domain.Theme
	SetTheme(ctx context.Context, t domain.Theme) error
}

// ProfileData is the learner profile.
type ProfileData struct {
	User      domain.User
	Languages []domain.LanguageProgress
	Stats     domain.UserStats
	Theme     domain.Theme
}

// Profile is the account and preferences screen.
type Profile struct {
	api      profileAPI
	settings themeSettings
	data     *Loader[ProfileData]
}

func NewProfile(api profileAPI, settings themeSettings) *Profile {
	s := &Profile{api: api, settings: settings}
	s.data = NewLoader(s.load, nil)
	return s
}

func (s *Profile) load(ctx context.Context) (ProfileData, error) {
	d := ProfileData{Theme: s.settings.Theme(ctx)}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.User, err = s.api.GetCurrentUser(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Languages, err = s.api.GetUserLanguages(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Stats, err = s.api.GetUserStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProfileData{}, err
	}
	return d, nil
}

func (s *Profile) Mount(ctx context.Context) View[ProfileData] { return s.data.Mount(ctx) }

func (s *Profile) Unmount() { s.data.Unmount() }

func (s *Profile) Data() View[ProfileData] { return s.data.View() }

// SetTheme persists the theme and updates the loaded profile.
func (s *Profile) SetTheme(ctx context.Context, t domain.Theme) error {
	if err := s.settings.SetTheme(ctx, t); err != nil {
		return err
	}
	s.data.Update(func(d ProfileData) ProfileData {
		d.Theme = t
		return d
	})
	return nil
}
