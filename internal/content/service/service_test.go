package service

import (
	"context"
	"errors"
	"testing"

	"texportal_backend/internal/content/client"
	"texportal_backend/platform/apperr"
	"texportal_backend/platform/logger"
)

type fakeFetcher struct {
	index    []client.BlogPost
	indexErr error
	stories  map[string]string
	storyErr error

	indexCalls int
}

func (f *fakeFetcher) FetchBlogIndex(_ context.Context) ([]client.BlogPost, error) {
	f.indexCalls++
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.index, nil
}

func (f *fakeFetcher) FetchStory(_ context.Context, slug string) (string, error) {
	if f.storyErr != nil {
		return "", f.storyErr
	}
	body, ok := f.stories[slug]
	if !ok {
		return "", apperr.NotFound("story not found")
	}
	return body, nil
}

func TestBlogIndexFetchesAndCaches(t *testing.T) {
	fetcher := &fakeFetcher{index: []client.BlogPost{{Slug: "gst-guide", Title: "GST for Textile Traders"}}}
	svc := New(fetcher, logger.New("test"))

	posts, err := svc.BlogIndex(context.Background())
	if err != nil {
		t.Fatalf("blog index failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "gst-guide" {
		t.Fatalf("unexpected index %+v", posts)
	}
}

func TestBlogIndexServesCachedCopyOnRefreshFailure(t *testing.T) {
	fetcher := &fakeFetcher{index: []client.BlogPost{{Slug: "gst-guide"}}}
	svc := New(fetcher, logger.New("test"))

	if _, err := svc.BlogIndex(context.Background()); err != nil {
		t.Fatalf("warm-up fetch failed: %v", err)
	}

	fetcher.indexErr = errors.New("content host down")
	posts, err := svc.BlogIndex(context.Background())
	if err != nil {
		t.Fatalf("stale copy should mask the refresh failure, got %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "gst-guide" {
		t.Fatalf("unexpected cached index %+v", posts)
	}
}

func TestBlogIndexFailsWhenNothingCached(t *testing.T) {
	fetcher := &fakeFetcher{indexErr: errors.New("content host down")}
	svc := New(fetcher, logger.New("test"))

	if _, err := svc.BlogIndex(context.Background()); err == nil {
		t.Fatal("expected the first failed fetch to surface its error")
	}
}

func TestApplyIndexDiscardsStaleResponse(t *testing.T) {
	svc := New(&fakeFetcher{}, logger.New("test"))

	older := svc.nextToken()
	newer := svc.nextToken()

	fresh := []client.BlogPost{{Slug: "fresh"}}
	if got := svc.applyIndex(newer, fresh); len(got) != 1 || got[0].Slug != "fresh" {
		t.Fatalf("newer response must land, got %+v", got)
	}

	// The older response finishes late. It must not overwrite the cache,
	// and its caller still sees the freshest copy.
	stale := []client.BlogPost{{Slug: "stale"}}
	if got := svc.applyIndex(older, stale); len(got) != 1 || got[0].Slug != "fresh" {
		t.Fatalf("stale response overwrote the cache, got %+v", got)
	}
}

func TestApplyStoryDiscardsStalePerSlug(t *testing.T) {
	svc := New(&fakeFetcher{}, logger.New("test"))

	older := svc.nextToken()
	newer := svc.nextToken()

	if got := svc.applyStory(newer, "mill-story", "new body"); got != "new body" {
		t.Fatalf("apply returned %q", got)
	}
	if got := svc.applyStory(older, "mill-story", "old body"); got != "new body" {
		t.Fatalf("stale story overwrote the cache, got %q", got)
	}

	// Tokens are global but staleness is tracked per slug, so an older
	// token can still land on a slug it is the first load of.
	if got := svc.applyStory(older, "other-story", "other body"); got != "other body" {
		t.Fatalf("first load for a slug must land, got %q", got)
	}
}

func TestStoryFetchesBySlug(t *testing.T) {
	fetcher := &fakeFetcher{stories: map[string]string{"mill-story": "# From Powerloom to Platform"}}
	svc := New(fetcher, logger.New("test"))

	body, err := svc.Story(context.Background(), "mill-story")
	if err != nil {
		t.Fatalf("story failed: %v", err)
	}
	if body != "# From Powerloom to Platform" {
		t.Fatalf("unexpected body %q", body)
	}

	if _, err := svc.Story(context.Background(), "missing"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("missing story should be not-found, got %v", err)
	}
}
