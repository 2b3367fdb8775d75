package ports

import (
	"context"

	"github.com/nordblog/console/internal/core/domain"
)

// PostsView is a point-in-time snapshot of the editing state for rendering.
type PostsView struct {
	// Posts is the last successful server read, always replaced wholesale.
	Posts []domain.Post
	Draft domain.Draft
	// PendingDelete is the id awaiting confirmation, or "".
	PendingDelete string
	Submitting    bool
}

// PostService keeps the displayed post collection in sync with server-side
// mutations. Outcomes surface through the shared notification slot, not
// through return values.
type PostService interface {
	// Refresh replaces the collection with the server's current state. On
	// failure the previous collection stays visible.
	Refresh(ctx context.Context)

	// Submit issues a create when the draft has no target, an update scoped
	// to the target otherwise. On success the draft is cleared and the
	// collection refreshed; on failure the draft is preserved.
	Submit(ctx context.Context, draft domain.Draft)

	// BeginEdit populates the draft from a held post and reports whether the
	// id was found. CancelEdit returns to create mode.
	BeginEdit(id string) bool
	CancelEdit()

	// RequestRemove marks an id for deletion; the delete call itself is only
	// ever issued from ConfirmRemove. CancelRemove dismisses the request.
	RequestRemove(id string)
	CancelRemove()
	ConfirmRemove(ctx context.Context)

	View() PostsView
}
