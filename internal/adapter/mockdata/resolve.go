package mockdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// Request is an API call addressed to the provider instead of the network.
// Path is relative to the API prefix, e.g. "/movies/1/lessons".
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Token  string
}

type loginBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type postBody struct {
	Content string `json:"content"`
}

// Resolve serves a known endpoint and returns the value the backend would
// have encoded as the response body. Unknown endpoints fail with
// domain.ErrMockUnavailable.
func (p *Provider) Resolve(ctx context.Context, req Request) (any, error) {
	parts := strings.Split(strings.Trim(req.Path, "/"), "/")
	method := strings.ToUpper(req.Method)

	switch {
	case method == http.MethodPost && match(parts, "auth", "login"):
		var b loginBody
		if err := decode(req.Body, &b); err != nil {
			return nil, err
		}
		email := b.Username
		if email == "" {
			email = b.Email
		}
		return p.Login(ctx, email, b.Password)

	case method == http.MethodPost && match(parts, "auth", "register"):
		var b registerBody
		if err := decode(req.Body, &b); err != nil {
			return nil, err
		}
		return p.Register(ctx, b.Email, b.Password, b.Name)

	case method == http.MethodPost && match(parts, "auth", "logout"):
		return map[string]string{"message": "Successfully logged out"}, p.Logout(ctx)

	case method == http.MethodGet && match(parts, "user", "me"):
		return p.CurrentUser(ctx, req.Token)

	case method == http.MethodGet && match(parts, "user", "languages"):
		return p.Languages(ctx)

	case method == http.MethodGet && match(parts, "user", "stats"):
		return p.Stats(ctx)

	case method == http.MethodGet && match(parts, "movies"):
		return p.Movies(ctx, req.Query.Get("language"))

	case method == http.MethodGet && len(parts) == 2 && parts[0] == "movies":
		return p.Movie(ctx, parts[1])

	case method == http.MethodGet && len(parts) == 3 && parts[0] == "movies" && parts[2] == "lessons":
		return p.MovieLessons(ctx, parts[1])

	case method == http.MethodGet && len(parts) == 2 && parts[0] == "lessons":
		return p.Lesson(ctx, parts[1])

	case method == http.MethodPost && match(parts, "progress"):
		var pr domain.Progress
		if err := decode(req.Body, &pr); err != nil {
			return nil, err
		}
		if err := p.RecordProgress(ctx, pr); err != nil {
			return nil, err
		}
		return map[string]string{"status": "success"}, nil

	case method == http.MethodGet && match(parts, "progress"):
		return p.UserProgress(ctx)

	case method == http.MethodGet && match(parts, "progress", "weekly"):
		return p.WeeklyActivity(ctx)

	case method == http.MethodGet && match(parts, "achievements"):
		return p.Achievements(ctx)

	case method == http.MethodGet && match(parts, "community", "posts"):
		return p.Posts(ctx, limit(req.Query))

	case method == http.MethodPost && match(parts, "community", "posts"):
		var b postBody
		if err := decode(req.Body, &b); err != nil {
			return nil, err
		}
		return p.CreatePost(ctx, req.Token, b.Content)

	case method == http.MethodGet && match(parts, "community", "leaderboard"):
		return p.Leaderboard(ctx, limit(req.Query))
	}

	return nil, fmt.Errorf("%s %s: %w", method, req.Path, domain.ErrMockUnavailable)
}

func match(parts []string, want ...string) bool {
	if len(parts) != len(want) {
		return false
	}
	for i := range want {
		if parts[i] != want[i] {
			return false
		}
	}
	return true
}

func decode(body []byte, v any) error {
	if len(body) == 0 {
		return domain.NewValidationError("body", "required")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}

func limit(q url.Values) int {
	n, err := strconv.Atoi(q.Get("limit"))
	if err != nil {
		return 0
	}
	return n
}
