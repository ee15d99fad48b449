// Package mockdata serves the CineFluent catalog from memory. The client uses
// it in offline mode and as the fallback when the backend cannot be reached.
package mockdata

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// Default list sizes when the caller passes no limit.
const (
	DefaultPostsLimit       = 50
	DefaultLeaderboardLimit = 10
)

type tokenIssuer interface {
	Issue(userID string) (string, error)
	Validate(token string) (string, error)
}

type account struct {
	user domain.User
	hash []byte
}

// Provider is safe for concurrent use.
type Provider struct {
	log     *slog.Logger
	tokens  tokenIssuer
	latency time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	accounts map[string]*account // by normalized email
	posts    []domain.CommunityPost
	progress []domain.Progress
}

var (
	seedOnce   sync.Once
	seedHashes [][]byte
	seedErr    error
)

// New creates a provider seeded with the demo and test accounts.
// latency is added to every call to mimic a network round trip.
func New(logger *slog.Logger, tokens tokenIssuer, latency time.Duration) (*Provider, error) {
	seedOnce.Do(func() {
		for _, s := range seedUsers {
			h, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
			if err != nil {
				seedErr = err
				return
			}
			seedHashes = append(seedHashes, h)
		}
	})
	if seedErr != nil {
		return nil, fmt.Errorf("mockdata.New: hash seed passwords: %w", seedErr)
	}

	p := &Provider{
		log:      logger.With("adapter", "mockdata"),
		tokens:   tokens,
		latency:  latency,
		now:      time.Now,
		accounts: make(map[string]*account, len(seedUsers)),
		posts:    slices.Clone(seedPosts),
	}
	for i, s := range seedUsers {
		p.accounts[s.user.Email] = &account{user: s.user, hash: seedHashes[i]}
	}
	return p, nil
}

// wait blocks for the simulated latency or until ctx is done.
func (p *Provider) wait(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// Login checks credentials against the seeded and registered accounts.
func (p *Provider) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	if err := p.wait(ctx); err != nil {
		return domain.AuthResult{}, err
	}

	p.mu.RLock()
	acc, ok := p.accounts[domain.NormalizeEmail(email)]
	p.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return domain.AuthResult{}, fmt.Errorf("%w: Invalid credentials", domain.ErrUnauthorized)
	}

	return p.issue(ctx, acc.user)
}

// Register creates a new Beginner account.
func (p *Provider) Register(ctx context.Context, email, password, name string) (domain.AuthResult, error) {
	if err := p.wait(ctx); err != nil {
		return domain.AuthResult{}, err
	}

	email = domain.NormalizeEmail(email)
	name = strings.TrimSpace(name)

	var errs []domain.FieldError
	if name == "" {
		errs = append(errs, domain.FieldError{Field: domain.FieldName, Message: "required"})
	}
	if !domain.IsValidEmail(email) {
		errs = append(errs, domain.FieldError{Field: domain.FieldEmail, Message: "invalid format"})
	}
	if len(password) < domain.MinPasswordLength {
		errs = append(errs, domain.FieldError{Field: domain.FieldPassword, Message: "too short"})
	}
	if len(errs) > 0 {
		return domain.AuthResult{}, domain.NewValidationErrors(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("mockdata.Register hash password: %w", err)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Level:     "Beginner A1",
		StudyTime: "0h 0m",
	}

	p.mu.Lock()
	if _, exists := p.accounts[email]; exists {
		p.mu.Unlock()
		return domain.AuthResult{}, fmt.Errorf("%w: User with this email already exists", domain.ErrAlreadyExists)
	}
	p.accounts[email] = &account{user: user, hash: hash}
	p.mu.Unlock()

	p.log.InfoContext(ctx, "mock account registered", slog.String("user_id", user.ID))

	return p.issue(ctx, user)
}

func (p *Provider) issue(ctx context.Context, user domain.User) (domain.AuthResult, error) {
	token, err := p.tokens.Issue(user.ID)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("mockdata.issue: %w", err)
	}
	p.log.DebugContext(ctx, "mock session issued", slog.String("user_id", user.ID))
	return domain.AuthResult{User: user, Token: token}, nil
}

// Logout always succeeds.
func (p *Provider) Logout(ctx context.Context) error {
	return p.wait(ctx)
}

// Authenticate resolves a token issued by this provider to its account.
func (p *Provider) Authenticate(token string) (domain.User, error) {
	id, err := p.tokens.Validate(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	u, ok := p.userByID(id)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: unknown user", domain.ErrUnauthorized)
	}
	return u, nil
}

func (p *Provider) userByID(id string) (domain.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, acc := range p.accounts {
		if acc.user.ID == id {
			return acc.user, true
		}
	}
	return domain.User{}, false
}

// CurrentUser returns the account the token belongs to. Tokens this provider
// did not issue resolve to the demo user.
func (p *Provider) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	if err := p.wait(ctx); err != nil {
		return domain.User{}, err
	}
	if u, err := p.Authenticate(token); err == nil {
		return u, nil
	}
	return demoUser, nil
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// Movies returns the catalog, optionally filtered by language ("All" or "" for every movie).
func (p *Provider) Movies(ctx context.Context, language string) ([]domain.Movie, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return domain.FilterByLanguage(slices.Clone(movies), language), nil
}

// Movie returns a movie by id.
func (p *Provider) Movie(ctx context.Context, id string) (domain.Movie, error) {
	if err := p.wait(ctx); err != nil {
		return domain.Movie{}, err
	}
	for _, m := range movies {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Movie{}, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
}

// MovieLessons returns the lessons of a movie. Movies without lessons, known
// or not, yield an empty list.
func (p *Provider) MovieLessons(ctx context.Context, movieID string) ([]domain.Lesson, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	out := []domain.Lesson{}
	for _, l := range lessons {
		if l.MovieID == movieID {
			out = append(out, l)
		}
	}
	return out, nil
}

// Lesson returns a lesson by id.
func (p *Provider) Lesson(ctx context.Context, id string) (domain.Lesson, error) {
	if err := p.wait(ctx); err != nil {
		return domain.Lesson{}, err
	}
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Lesson{}, fmt.Errorf("lesson %s: %w", id, domain.ErrNotFound)
}

// RecordProgress accepts a progress record and keeps it for UserProgress.
func (p *Provider) RecordProgress(ctx context.Context, pr domain.Progress) error {
	if err := p.wait(ctx); err != nil {
		return err
	}
	if err := pr.Validate(); err != nil {
		return err
	}
	pr.VocabularyMastered = slices.Clone(pr.VocabularyMastered)
	p.mu.Lock()
	p.progress = append(p.progress, pr)
	p.mu.Unlock()
	p.log.DebugContext(ctx, "progress recorded",
		slog.String("lesson_id", pr.LessonID),
		slog.Int("score", pr.Score),
		slog.Int("words", len(pr.VocabularyMastered)))
	return nil
}

// UserProgress lists the records accepted so far, oldest first. It starts
// empty.
func (p *Provider) UserProgress(ctx context.Context) ([]domain.Progress, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.Progress, 0, len(p.progress))
	for _, pr := range p.progress {
		pr.VocabularyMastered = slices.Clone(pr.VocabularyMastered)
		out = append(out, pr)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Progress, community and profile
// ---------------------------------------------------------------------------

func (p *Provider) WeeklyActivity(ctx context.Context) ([]domain.WeeklyActivity, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return weeklyActivity(p.now()), nil
}

func (p *Provider) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(achievements), nil
}

// Posts returns up to limit posts, newest first. limit <= 0 means DefaultPostsLimit.
func (p *Provider) Posts(ctx context.Context, limit int) ([]domain.CommunityPost, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPostsLimit
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.posts[:min(limit, len(p.posts))]), nil
}

// CreatePost publishes content as the token's user, or as the demo user for
// foreign tokens.
func (p *Provider) CreatePost(ctx context.Context, token, content string) (domain.CommunityPost, error) {
	if err := p.wait(ctx); err != nil {
		return domain.CommunityPost{}, err
	}
	content, err := domain.ValidatePostContent(content)
	if err != nil {
		return domain.CommunityPost{}, err
	}

	author, err := p.Authenticate(token)
	if err != nil {
		author = demoUser
	}

	post := domain.CommunityPost{
		ID:       uuid.NewString(),
		User:     author.Name,
		Initials: domain.Initials(author.Name),
		Time:     "now",
		Content:  content,
		Streak:   author.Streak,
	}

	p.mu.Lock()
	p.posts = slices.Insert(p.posts, 0, post)
	p.mu.Unlock()

	return post, nil
}

// Leaderboard returns up to limit entries. limit <= 0 means DefaultLeaderboardLimit.
func (p *Provider) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return slices.Clone(leaderboard[:min(limit, len(leaderboard))]), nil
}

func (p *Provider) Languages(ctx context.Context) ([]domain.LanguageProgress, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(languages), nil
}

func (p *Provider) Stats(ctx context.Context) (domain.UserStats, error) {
	if err := p.wait(ctx); err != nil {
		return domain.UserStats{}, err
	}
	return stats, nil
}
