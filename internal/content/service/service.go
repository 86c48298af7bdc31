package service

import (
	"context"
	"sync"
	"sync/atomic"

	"texportal_backend/internal/content/client"
	"texportal_backend/platform/logger"

	"golang.org/x/sync/singleflight"
)

// Fetcher is the content host client surface the service needs.
type Fetcher interface {
	FetchBlogIndex(ctx context.Context) ([]client.BlogPost, error)
	FetchStory(ctx context.Context, slug string) (string, error)
}

// Service caches marketing content and keeps the cache monotonic: every
// load takes a sequence token, and a response only lands in the cache if
// no newer load has landed first. Slow responses arriving out of order
// are discarded, so the cache never goes backwards in time. Concurrent
// loads of the same resource are coalesced through singleflight.
type Service struct {
	fetcher Fetcher
	log     *logger.Logger
	group   singleflight.Group

	seq uint64

	mu           sync.Mutex
	indexApplied uint64
	index        []client.BlogPost
	storyApplied map[string]uint64
	stories      map[string]string
}

func New(fetcher Fetcher, log *logger.Logger) *Service {
	return &Service{
		fetcher:      fetcher,
		log:          log,
		storyApplied: map[string]uint64{},
		stories:      map[string]string{},
	}
}

func (s *Service) nextToken() uint64 {
	return atomic.AddUint64(&s.seq, 1)
}

// BlogIndex returns the blog metadata list, refreshing the cache from the
// content host. The caller always sees the freshest applied index even
// when its own fetch lost the race.
func (s *Service) BlogIndex(ctx context.Context) ([]client.BlogPost, error) {
	token := s.nextToken()

	v, err, _ := s.group.Do("blog-index", func() (interface{}, error) {
		return s.fetcher.FetchBlogIndex(ctx)
	})
	if err != nil {
		s.mu.Lock()
		cached := s.index
		s.mu.Unlock()
		if cached != nil {
			s.log.Warn("blog index refresh failed, serving cached copy", "error", err)
			return cached, nil
		}
		return nil, err
	}

	return s.applyIndex(token, v.([]client.BlogPost)), nil
}

// applyIndex lands a fetched index in the cache unless a newer load got
// there first, and returns the freshest applied index either way.
func (s *Service) applyIndex(token uint64, posts []client.BlogPost) []client.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token > s.indexApplied {
		s.indexApplied = token
		s.index = posts
	}
	return s.index
}

// Story returns one story body by slug.
func (s *Service) Story(ctx context.Context, slug string) (string, error) {
	token := s.nextToken()

	v, err, _ := s.group.Do("story:"+slug, func() (interface{}, error) {
		return s.fetcher.FetchStory(ctx, slug)
	})
	if err != nil {
		return "", err
	}

	return s.applyStory(token, slug, v.(string)), nil
}

func (s *Service) applyStory(token uint64, slug, body string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token > s.storyApplied[slug] {
		s.storyApplied[slug] = token
		s.stories[slug] = body
	}
	return s.stories[slug]
}
