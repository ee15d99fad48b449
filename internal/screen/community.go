package screen

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// Feed sizes requested by the Community screen.
const (
	PostsLimit       = 50
	LeaderboardLimit = 10
)

// communityAPI defines the client operations needed by the Community screen.
type communityAPI interface {
	GetCommunityPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	CreatePost(ctx context.Context, content string) (domain.CommunityPost, error)
}

// CommunityData is the feed and the weekly leaderboard.
type CommunityData struct {
	Posts       []domain.CommunityPost
	Leaderboard []domain.LeaderboardEntry
}

// Community is the social feed screen.
type Community struct {
	log   *slog.Logger
	api   communityAPI
	data  *Loader[CommunityData]
	guard guard
}

func NewCommunity(logger *slog.Logger, api communityAPI) *Community {
	s := &Community{log: logger.With("component", "screen.community"), api: api}
	s.data = NewLoader(s.load, func(d CommunityData) bool {
		return len(d.Posts) == 0 && len(d.Leaderboard) == 0
	})
	return s
}

func (s *Community) load(ctx context.Context) (CommunityData, error) {
	var d CommunityData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Posts, err = s.api.GetCommunityPosts(ctx, PostsLimit)
		return err
	})
	g.Go(func() (err error) {
		d.Leaderboard, err = s.api.GetLeaderboard(ctx, LeaderboardLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return CommunityData{}, err
	}
	return d, nil
}

func (s *Community) Mount(ctx context.Context) View[CommunityData] { return s.data.Mount(ctx) }

func (s *Community) Unmount() { s.data.Unmount() }

func (s *Community) Data() View[CommunityData] { return s.data.View() }

// Posting reports whether a post is in flight.
func (s *Community) Posting() bool { return s.guard.InFlight() }

// Post publishes content and puts the new post at the top of the feed.
// Empty content fails validation without a network call; a concurrent post
// fails with domain.ErrBusy.
func (s *Community) Post(ctx context.Context, content string) (domain.CommunityPost, error) {
	content, err := domain.ValidatePostContent(content)
	if err != nil {
		return domain.CommunityPost{}, err
	}
	if err := s.guard.acquire(); err != nil {
		return domain.CommunityPost{}, err
	}
	defer s.guard.release()

	post, err := s.api.CreatePost(ctx, content)
	if err != nil {
		s.log.WarnContext(ctx, "failed to create post", slog.String("error", err.Error()))
		return domain.CommunityPost{}, err
	}

	s.data.Update(func(d CommunityData) CommunityData {
		d.Posts = slices.Insert(slices.Clone(d.Posts), 0, post)
		return d
	})
	return post, nil
}
