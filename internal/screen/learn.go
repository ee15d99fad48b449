package screen

import (
	"context"
	"sync"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// moviesAPI defines the client operations needed by the Learn screen.
type moviesAPI interface {
	GetMovies(ctx context.Context, language string) ([]domain.Movie, error)
}

// Learn is the movie catalog screen.
type Learn struct {
	api    moviesAPI
	movies *Loader[[]domain.Movie]

	mu       sync.RWMutex
	language string
}

func NewLearn(api moviesAPI) *Learn {
	s := &Learn{api: api, language: "All"}
	s.movies = NewLoader(s.load, emptySlice[domain.Movie])
	return s
}

func (s *Learn) load(ctx context.Context) ([]domain.Movie, error) {
	lang := s.Language()
	movies, err := s.api.GetMovies(ctx, lang)
	if err != nil {
		return nil, err
	}
	return domain.FilterByLanguage(movies, lang), nil
}

// Mount loads the catalog for the selected language.
func (s *Learn) Mount(ctx context.Context) View[[]domain.Movie] { return s.movies.Mount(ctx) }

func (s *Learn) Unmount() { s.movies.Unmount() }

func (s *Learn) Movies() View[[]domain.Movie] { return s.movies.View() }

// Language returns the selected language filter. "All" means no filter.
func (s *Learn) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage changes the filter and reloads.
func (s *Learn) SetLanguage(ctx context.Context, language string) View[[]domain.Movie] {
	if language == "" {
		language = "All"
	}
	s.mu.Lock()
	s.language = language
	s.mu.Unlock()
	return s.movies.Mount(ctx)
}

// ContinueWatching returns the loaded movies that are started but unfinished.
func (s *Learn) ContinueWatching() []domain.Movie {
	var out []domain.Movie
	for _, m := range s.movies.View().Data {
		if m.InProgress() {
			out = append(out, m)
		}
	}
	return out
}
