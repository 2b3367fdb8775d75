package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/notify"
)

// PagesHandler serves the public, read-only pages. It talks to the remote API
// directly; the admin editing state is none of its business.
type PagesHandler struct {
	posts    ports.PostAPI
	sessions ports.SessionService
	bulletin *notify.Bulletin
	logger   zerolog.Logger
}

func NewPagesHandler(posts ports.PostAPI, sessions ports.SessionService, bulletin *notify.Bulletin, logger zerolog.Logger) *PagesHandler {
	return &PagesHandler{posts: posts, sessions: sessions, bulletin: bulletin, logger: logger}
}

func (h *PagesHandler) page(title string) page {
	return page{
		Title:   title,
		Session: h.sessions.Snapshot(),
		Flash:   h.bulletin.Current(),
	}
}

// Home handles GET /.
func (h *PagesHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", h.page("Home"))
}

type postsPage struct {
	page
	Posts  []domain.Post
	Failed bool
}

// Posts handles GET /posts — the public list.
func (h *PagesHandler) Posts(c echo.Context) error {
	posts, res := h.posts.List(c.Request().Context())
	if !res.OK() {
		h.logger.Error().Err(res.Cause()).Msg("public post list failed")
	}
	return c.Render(http.StatusOK, "posts.html", postsPage{
		page:   h.page("Posts"),
		Posts:  posts,
		Failed: !res.OK(),
	})
}

type postDetailPage struct {
	page
	Post   *domain.Post
	Failed bool
}

// PostDetail handles GET /posts/:id. An unknown id renders the not-found
// state; only transient failures render as errors.
func (h *PagesHandler) PostDetail(c echo.Context) error {
	post, res := h.posts.Get(c.Request().Context(), c.Param("id"))

	data := postDetailPage{page: h.page("Post")}
	switch {
	case res.OK():
		data.Post = post
		data.Title = post.Title
	case res.Transient():
		h.logger.Error().Err(res.Cause()).Str("post_id", c.Param("id")).Msg("post detail failed")
		data.Failed = true
	}
	return c.Render(http.StatusOK, "post_detail.html", data)
}
