package domain

import "errors"

var ErrPostNotFound = errors.New("post not found")

// Post models a published content unit. The ID is assigned by the remote API
// and is never generated on this side.
type Post struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Body  string `json:"content"`
}

// Excerpt returns the body truncated for list views.
func (p Post) Excerpt(max int) string {
	if max <= 0 || len(p.Body) <= max {
		return p.Body
	}
	return p.Body[:max] + "..."
}

// Draft is the ephemeral form state for an in-progress create or update.
// TargetID present means update mode; absent means create mode.
type Draft struct {
	Title    string
	Body     string
	TargetID string
}

// Editing reports whether the draft targets an existing post.
func (d Draft) Editing() bool { return d.TargetID != "" }
