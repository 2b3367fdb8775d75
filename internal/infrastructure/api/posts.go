package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
)

// postPayload is the write shape for create and update calls.
type postPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// List calls GET /posts and returns the full collection.
func (c *Client) List(ctx context.Context) ([]domain.Post, domain.CallResult) {
	var posts []domain.Post
	res := c.do(ctx, "posts_list", http.MethodGet, "/posts", nil, &posts)
	if !res.OK() {
		return nil, res
	}
	return posts, res
}

// Get calls GET /posts/{id}.
func (c *Client) Get(ctx context.Context, id string) (*domain.Post, domain.CallResult) {
	var post domain.Post
	res := c.do(ctx, "posts_get", http.MethodGet, "/posts/"+url.PathEscape(id), nil, &post)
	if !res.OK() {
		return nil, res
	}
	return &post, res
}

// Create calls POST /posts.
func (c *Client) Create(ctx context.Context, input ports.PostInput) domain.CallResult {
	return c.do(ctx, "posts_create", http.MethodPost, "/posts", postPayload{Title: input.Title, Content: input.Body}, nil)
}

// Update calls PUT /posts/{id}.
func (c *Client) Update(ctx context.Context, id string, input ports.PostInput) domain.CallResult {
	return c.do(ctx, "posts_update", http.MethodPut, "/posts/"+url.PathEscape(id), postPayload{Title: input.Title, Content: input.Body}, nil)
}

// Delete calls DELETE /posts/{id}.
func (c *Client) Delete(ctx context.Context, id string) domain.CallResult {
	return c.do(ctx, "posts_delete", http.MethodDelete, "/posts/"+url.PathEscape(id), nil, nil)
}
