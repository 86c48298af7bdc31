// Package client fetches marketing content from the static content host.
// Blog metadata lives in one JSON index; story bodies are markdown files.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"texportal_backend/platform/apperr"
	"texportal_backend/platform/config"
)

// BlogPost is one entry in the blog index.
type BlogPost struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags,omitempty"`
	ReadTime string   `json:"readTime,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg config.ContentConfig) *Client {
	timeout := cfg.GetContentTimeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.GetContentBaseURL(), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchBlogIndex loads the blog metadata index.
func (c *Client) FetchBlogIndex(ctx context.Context) ([]BlogPost, error) {
	body, err := c.get(ctx, "/blog/index.json")
	if err != nil {
		return nil, err
	}

	var posts []BlogPost
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("decode blog index: %w", err)
	}
	return posts, nil
}

// FetchStory loads one story body as raw markdown.
func (c *Client) FetchStory(ctx context.Context, slug string) (string, error) {
	body, err := c.get(ctx, "/stories/"+slug+".md")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create content request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "content host unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFound("content not found").WithDetails(path)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.KindUnavailable, fmt.Sprintf("content host returned %d", resp.StatusCode))
	}

	return io.ReadAll(resp.Body)
}
