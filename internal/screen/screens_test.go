package screen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cinefluent/internal/adapter/localstore"
	"github.com/heartmarshall/cinefluent/internal/adapter/mockdata"
	"github.com/heartmarshall/cinefluent/internal/apiclient"
	"github.com/heartmarshall/cinefluent/internal/auth"
	"github.com/heartmarshall/cinefluent/internal/domain"
	"github.com/heartmarshall/cinefluent/internal/service/settings"
	"github.com/heartmarshall/cinefluent/internal/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// offlineClient is a client in mock mode over the built-in catalog.
func offlineClient(t *testing.T) *apiclient.Client {
	t.Helper()
	logger := discardLogger()
	issuer := auth.NewTokenIssuer("test-secret-at-least-32-chars-long-for-security", "cinefluent-mock", time.Hour)
	mock, err := mockdata.New(logger, issuer, 0)
	require.NoError(t, err)
	return apiclient.New(logger, session.New(logger, localstore.NewMemory()), mock, apiclient.Options{MockMode: true})
}

// ─── Learn ──────────────────────────────────────────────────────────────────

func TestLearn_MountAndFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewLearn(offlineClient(t))
	assert.Equal(t, "All", s.Language())

	v := s.Mount(ctx)
	require.Equal(t, StatusLoaded, v.Status)
	assert.Len(t, v.Data, 8)

	var titles []string
	for _, m := range s.ContinueWatching() {
		titles = append(titles, m.Title)
	}
	assert.ElementsMatch(t, []string{"Finding Nemo", "The Incredibles", "Coco", "Moana"}, titles)

	v = s.SetLanguage(ctx, "French")
	require.Equal(t, StatusLoaded, v.Status)
	for _, m := range v.Data {
		assert.Equal(t, "French", m.Language)
	}
	assert.Len(t, v.Data, 2)
	assert.Empty(t, s.ContinueWatching())

	v = s.SetLanguage(ctx, "Klingon")
	assert.Equal(t, StatusEmpty, v.Status)

	v = s.SetLanguage(ctx, "")
	assert.Equal(t, "All", s.Language())
	assert.Len(t, v.Data, 8)
}

type moviesFunc func(ctx context.Context, language string) ([]domain.Movie, error)

func (f moviesFunc) GetMovies(ctx context.Context, language string) ([]domain.Movie, error) {
	return f(ctx, language)
}

func TestLearn_ErrorState(t *testing.T) {
	t.Parallel()

	boom := errors.New("mock path failed too")
	s := NewLearn(moviesFunc(func(context.Context, string) ([]domain.Movie, error) { return nil, boom }))

	v := s.Mount(context.Background())
	assert.Equal(t, StatusError, v.Status)
	assert.ErrorIs(t, v.Err, boom)
	assert.Empty(t, s.ContinueWatching())
}

// ─── Lesson ─────────────────────────────────────────────────────────────────

type lessonFake struct {
	mu       sync.Mutex
	lesson   domain.Lesson
	err      error
	block    chan struct{}
	entered  chan struct{}
	progress []domain.Progress
}

func (f *lessonFake) GetLesson(context.Context, string) (domain.Lesson, error) {
	return f.lesson, f.err
}

func (f *lessonFake) UpdateProgress(_ context.Context, p domain.Progress) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.progress = append(f.progress, p)
	f.mu.Unlock()
}

func (f *lessonFake) sent() []domain.Progress {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progress
}

var quizLesson = domain.Lesson{
	ID: "1",
	Vocabulary: []domain.VocabularyItem{
		{Word: "océano"}, {Word: "familia"},
	},
	Quiz: []domain.QuizQuestion{
		{ID: "q1", Type: domain.QuizTypeMultipleChoice, CorrectAnswer: "ocean"},
		{ID: "q2", Type: domain.QuizTypeFillBlank, CorrectAnswer: "familia"},
	},
}

func TestLesson_QuizFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := &lessonFake{lesson: quizLesson}
	s := NewLesson(api, "1")
	clock := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	require.Equal(t, StatusLoaded, s.Mount(ctx).Status)

	ok, err := s.Answer("q1", "  OCEAN ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Answer("q2", "casa")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Answer("q9", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	clock = clock.Add(95*time.Second + 400*time.Millisecond)
	res, err := s.Complete(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, domain.Progress{
		LessonID:           "1",
		Completed:          true,
		Score:              50,
		TimeSpent:          95,
		VocabularyMastered: []string{"océano", "familia"},
	}, res.Progress)

	again, err := s.Complete(ctx)
	require.NoError(t, err)
	assert.Equal(t, res, again)
	assert.Len(t, api.sent(), 1, "a finished quiz is not resent")

	got, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, res, got)
}

func TestLesson_NotLoaded(t *testing.T) {
	t.Parallel()

	api := &lessonFake{err: domain.ErrNotFound}
	s := NewLesson(api, "404")

	v := s.Mount(context.Background())
	assert.Equal(t, StatusError, v.Status)

	_, err := s.Answer("q1", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Complete(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, api.sent())
}

func TestLesson_CompleteGuard(t *testing.T) {
	t.Parallel()

	api := &lessonFake{lesson: quizLesson, block: make(chan struct{}), entered: make(chan struct{})}
	s := NewLesson(api, "1")
	require.Equal(t, StatusLoaded, s.Mount(context.Background()).Status)

	done := make(chan error, 1)
	go func() {
		_, err := s.Complete(context.Background())
		done <- err
	}()
	<-api.entered

	assert.True(t, s.Completing())
	_, err := s.Complete(context.Background())
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(api.block)
	require.NoError(t, <-done)
	assert.False(t, s.Completing())
	assert.Len(t, api.sent(), 1)
}

func TestLesson_UnknownLessonProgressDoesNotError(t *testing.T) {
	t.Parallel()

	// The offline client swallows progress failures for lessons it does not know.
	s := NewLesson(offlineClient(t), "1")
	require.Equal(t, StatusLoaded, s.Mount(context.Background()).Status)
	s.id = "does-not-exist"
	_, err := s.Complete(context.Background())
	assert.NoError(t, err)
}

// ─── Progress ───────────────────────────────────────────────────────────────

func TestProgress_LoadsConcurrently(t *testing.T) {
	t.Parallel()

	s := NewProgress(offlineClient(t))
	v := s.Mount(context.Background())
	require.Equal(t, StatusLoaded, v.Status)

	assert.Len(t, v.Data.Weekly, 35)
	assert.Len(t, v.Data.Achievements, 4)
	assert.Len(t, v.Data.Earned(), 2)
	assert.Equal(t, 30, v.Data.ActiveDays())
	assert.Equal(t, 12, v.Data.Stats.Streak.Current)
}

type progressFake struct {
	statsErr error
}

func (progressFake) GetWeeklyProgress(context.Context) ([]domain.WeeklyActivity, error) {
	return []domain.WeeklyActivity{{Date: "2026-01-01", LessonsCompleted: 1}}, nil
}

func (progressFake) GetAchievements(context.Context) ([]domain.Achievement, error) {
	return nil, nil
}

func (f progressFake) GetUserStats(context.Context) (domain.UserStats, error) {
	return domain.UserStats{}, f.statsErr
}

func TestProgress_AnyFailureIsError(t *testing.T) {
	t.Parallel()

	v := NewProgress(progressFake{statsErr: domain.ErrServer}).Mount(context.Background())
	assert.Equal(t, StatusError, v.Status)
	assert.ErrorIs(t, v.Err, domain.ErrServer)
	assert.Empty(t, v.Data.Weekly)
}

// ─── Community ──────────────────────────────────────────────────────────────

func TestCommunity_MountAndPost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewCommunity(discardLogger(), offlineClient(t))

	v := s.Mount(ctx)
	require.Equal(t, StatusLoaded, v.Status)
	before := len(v.Data.Posts)
	require.NotZero(t, before)
	assert.Len(t, v.Data.Leaderboard, 6)

	post, err := s.Post(ctx, "  Watched Coco twice this week!  ")
	require.NoError(t, err)
	assert.Equal(t, "Watched Coco twice this week!", post.Content)

	posts := s.Data().Data.Posts
	require.Len(t, posts, before+1)
	assert.Equal(t, post.ID, posts[0].ID)
}

type communityFake struct {
	created int
	block   chan struct{}
	entered chan struct{}
	err     error
}

func (f *communityFake) GetCommunityPosts(context.Context, int) ([]domain.CommunityPost, error) {
	return nil, nil
}

func (f *communityFake) GetLeaderboard(context.Context, int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func (f *communityFake) CreatePost(_ context.Context, content string) (domain.CommunityPost, error) {
	f.created++
	if f.entered != nil {
		close(f.entered)
		<-f.block
	}
	if f.err != nil {
		return domain.CommunityPost{}, f.err
	}
	return domain.CommunityPost{ID: "new", Content: content}, nil
}

func TestCommunity_Post_Validation(t *testing.T) {
	t.Parallel()

	api := &communityFake{}
	s := NewCommunity(discardLogger(), api)
	require.Equal(t, StatusEmpty, s.Mount(context.Background()).Status)

	for _, content := range []string{"", "   \n\t", strings.Repeat("a", domain.MaxPostLength+1)} {
		_, err := s.Post(context.Background(), content)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Zero(t, api.created)
}

func TestCommunity_Post_Guard(t *testing.T) {
	t.Parallel()

	api := &communityFake{block: make(chan struct{}), entered: make(chan struct{})}
	s := NewCommunity(discardLogger(), api)
	require.Equal(t, StatusEmpty, s.Mount(context.Background()).Status)

	done := make(chan error, 1)
	go func() {
		_, err := s.Post(context.Background(), "first")
		done <- err
	}()
	<-api.entered

	assert.True(t, s.Posting())
	_, err := s.Post(context.Background(), "second")
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(api.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.created)

	v := s.Data()
	assert.Equal(t, StatusLoaded, v.Status)
	require.Len(t, v.Data.Posts, 1)
	assert.Equal(t, "first", v.Data.Posts[0].Content)
}

func TestCommunity_Post_Failure(t *testing.T) {
	t.Parallel()

	api := &communityFake{err: domain.ErrServer}
	s := NewCommunity(discardLogger(), api)
	require.Equal(t, StatusEmpty, s.Mount(context.Background()).Status)

	_, err := s.Post(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, StatusEmpty, s.Data().Status)
	assert.False(t, s.Posting())
}

// ─── Profile ────────────────────────────────────────────────────────────────

func TestProfile_MountAndTheme(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	prefs := settings.NewService(discardLogger(), localstore.NewMemory())
	s := NewProfile(offlineClient(t), prefs)

	v := s.Mount(ctx)
	require.Equal(t, StatusLoaded, v.Status)
	assert.Equal(t, "1", v.Data.User.ID)
	assert.Len(t, v.Data.Languages, 3)
	assert.Equal(t, domain.ThemeSystem, v.Data.Theme)
	assert.Equal(t, 8, v.Data.Stats.Movies.TotalAvailable)

	require.NoError(t, s.SetTheme(ctx, domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, s.Data().Data.Theme)
	assert.Equal(t, domain.ThemeDark, prefs.Theme(ctx))

	assert.ErrorIs(t, s.SetTheme(ctx, "neon"), domain.ErrValidation)
	assert.Equal(t, domain.ThemeDark, s.Data().Data.Theme)

	s.Unmount()
	assert.Equal(t, StatusIdle, s.Data().Status)
}
