package apiclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// GetMovies lists the catalog. language filters by target language; "" or
// "All" returns every movie.
func (c *Client) GetMovies(ctx context.Context, language string) ([]domain.Movie, error) {
	var q url.Values
	if language != "" && language != "All" {
		q = url.Values{"language": {language}}
	}
	movies, err := read[[]domain.Movie](ctx, c, call{method: http.MethodGet, path: "/movies", query: q})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetMovies: %w", err)
	}
	return movies, nil
}

func (c *Client) GetMovie(ctx context.Context, id string) (domain.Movie, error) {
	m, err := read[domain.Movie](ctx, c, call{method: http.MethodGet, path: "/movies/" + url.PathEscape(id)})
	if err != nil {
		return domain.Movie{}, fmt.Errorf("apiclient.GetMovie: %w", err)
	}
	return m, nil
}

// GetMovieLessons lists a movie's lessons. A movie without lessons yields
// an empty, non-nil slice.
func (c *Client) GetMovieLessons(ctx context.Context, movieID string) ([]domain.Lesson, error) {
	lessons, err := read[[]domain.Lesson](ctx, c, call{method: http.MethodGet, path: "/movies/" + url.PathEscape(movieID) + "/lessons"})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetMovieLessons: %w", err)
	}
	if lessons == nil {
		lessons = []domain.Lesson{}
	}
	return lessons, nil
}

func (c *Client) GetLesson(ctx context.Context, id string) (domain.Lesson, error) {
	l, err := read[domain.Lesson](ctx, c, call{method: http.MethodGet, path: "/lessons/" + url.PathEscape(id)})
	if err != nil {
		return domain.Lesson{}, fmt.Errorf("apiclient.GetLesson: %w", err)
	}
	return l, nil
}

// UpdateProgress reports a finished lesson. It is fire-and-forget: a single
// attempt, failures are logged and never returned.
func (c *Client) UpdateProgress(ctx context.Context, p domain.Progress) {
	if err := p.Validate(); err != nil {
		c.log.WarnContext(ctx, "progress update dropped", slog.String("lesson_id", p.LessonID), slog.String("error", err.Error()))
		return
	}
	if err := c.once(ctx, call{method: http.MethodPost, path: "/progress", body: p}); err != nil {
		c.log.WarnContext(ctx, "progress update failed", slog.String("lesson_id", p.LessonID), slog.String("error", err.Error()))
	}
}

// GetUserProgress lists the learner's recorded lesson progress.
func (c *Client) GetUserProgress(ctx context.Context) ([]domain.Progress, error) {
	list, err := read[[]domain.Progress](ctx, c, call{method: http.MethodGet, path: "/progress"})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetUserProgress: %w", err)
	}
	if list == nil {
		list = []domain.Progress{}
	}
	return list, nil
}

func (c *Client) GetWeeklyProgress(ctx context.Context) ([]domain.WeeklyActivity, error) {
	days, err := read[[]domain.WeeklyActivity](ctx, c, call{method: http.MethodGet, path: "/progress/weekly"})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetWeeklyProgress: %w", err)
	}
	return days, nil
}

func (c *Client) GetAchievements(ctx context.Context) ([]domain.Achievement, error) {
	list, err := read[[]domain.Achievement](ctx, c, call{method: http.MethodGet, path: "/achievements"})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetAchievements: %w", err)
	}
	return list, nil
}

// GetCommunityPosts lists recent posts. limit <= 0 leaves the server default.
func (c *Client) GetCommunityPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error) {
	posts, err := read[[]domain.CommunityPost](ctx, c, call{method: http.MethodGet, path: "/community/posts", query: limitQuery(limit)})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetCommunityPosts: %w", err)
	}
	return posts, nil
}

type createPostRequest struct {
	Content string `json:"content"`
}

// CreatePost publishes a community post. Content is trimmed and must be
// non-empty and at most domain.MaxPostLength characters.
func (c *Client) CreatePost(ctx context.Context, content string) (domain.CommunityPost, error) {
	content, err := domain.ValidatePostContent(content)
	if err != nil {
		return domain.CommunityPost{}, err
	}

	var post domain.CommunityPost
	if err := c.do(ctx, call{method: http.MethodPost, path: "/community/posts", body: createPostRequest{Content: content}}, &post); err != nil {
		return domain.CommunityPost{}, fmt.Errorf("apiclient.CreatePost: %w", err)
	}
	return post, nil
}

// GetLeaderboard lists the weekly leaderboard. limit <= 0 leaves the server default.
func (c *Client) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := read[[]domain.LeaderboardEntry](ctx, c, call{method: http.MethodGet, path: "/community/leaderboard", query: limitQuery(limit)})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetLeaderboard: %w", err)
	}
	return rows, nil
}

func (c *Client) GetUserLanguages(ctx context.Context) ([]domain.LanguageProgress, error) {
	langs, err := read[[]domain.LanguageProgress](ctx, c, call{method: http.MethodGet, path: "/user/languages"})
	if err != nil {
		return nil, fmt.Errorf("apiclient.GetUserLanguages: %w", err)
	}
	return langs, nil
}

func (c *Client) GetUserStats(ctx context.Context) (domain.UserStats, error) {
	stats, err := read[domain.UserStats](ctx, c, call{method: http.MethodGet, path: "/user/stats"})
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("apiclient.GetUserStats: %w", err)
	}
	return stats, nil
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
