package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/notify"
)

// AdminHandler serves the gated editing view. Every mutation follows
// POST-redirect-GET: the outcome lands in the notification slot and the
// redirect re-renders the dashboard from the service's current state.
type AdminHandler struct {
	posts    ports.PostService
	sessions ports.SessionService
	bulletin *notify.Bulletin
}

func NewAdminHandler(posts ports.PostService, sessions ports.SessionService, bulletin *notify.Bulletin) *AdminHandler {
	return &AdminHandler{posts: posts, sessions: sessions, bulletin: bulletin}
}

type adminPage struct {
	page
	View ports.PostsView
}

// Dashboard handles GET /admin. Each visit is a mount: the collection is
// re-fetched, and on failure the previously held posts stay on screen.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	h.posts.Refresh(c.Request().Context())

	return c.Render(http.StatusOK, "admin.html", adminPage{
		page: page{
			Title:   "Admin",
			Session: h.sessions.Snapshot(),
			Flash:   h.bulletin.Current(),
		},
		View: h.posts.View(),
	})
}

// Submit handles POST /admin/posts — create or update, depending on the
// hidden target_id field.
func (h *AdminHandler) Submit(c echo.Context) error {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		h.bulletin.Post("Title and body are required", domain.SeverityError)
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	h.posts.Submit(c.Request().Context(), form.draft())
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Edit handles POST /admin/posts/:id/edit.
func (h *AdminHandler) Edit(c echo.Context) error {
	if !h.posts.BeginEdit(c.Param("id")) {
		h.bulletin.Post("That post no longer exists", domain.SeverityError)
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// CancelEdit handles POST /admin/edit/cancel.
func (h *AdminHandler) CancelEdit(c echo.Context) error {
	h.posts.CancelEdit()
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// RequestDelete handles POST /admin/posts/:id/delete. It only opens the
// confirmation prompt; nothing is deleted yet.
func (h *AdminHandler) RequestDelete(c echo.Context) error {
	h.posts.RequestRemove(c.Param("id"))
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// CancelDelete handles POST /admin/delete/cancel.
func (h *AdminHandler) CancelDelete(c echo.Context) error {
	h.posts.CancelRemove()
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// ConfirmDelete handles POST /admin/delete/confirm.
func (h *AdminHandler) ConfirmDelete(c echo.Context) error {
	h.posts.ConfirmRemove(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, "/admin")
}
