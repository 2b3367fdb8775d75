package handler

import (
	"github.com/nordblog/console/internal/core/domain"
)

// --- Form types ---

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// postForm carries one submitted draft. TargetID comes from a hidden field;
// its presence selects update mode.
type postForm struct {
	Title    string `form:"title"     validate:"required"`
	Body     string `form:"body"      validate:"required"`
	TargetID string `form:"target_id"`
}

func (f postForm) draft() domain.Draft {
	return domain.Draft{Title: f.Title, Body: f.Body, TargetID: f.TargetID}
}

// --- Page data ---

// page carries the fields every template needs: the nav bar reads the session,
// the flash partial reads the notification.
type page struct {
	Title   string
	Session domain.Session
	Flash   *domain.Notification
}
