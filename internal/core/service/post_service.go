package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/notify"
)

// PostService keeps the displayed post collection in sync with the remote
// API. The collection is only ever the result of the last successful list
// call; after a confirmed mutation it is re-fetched wholesale, never patched
// locally.
type PostService struct {
	api      ports.PostAPI
	bulletin *notify.Bulletin
	logger   zerolog.Logger

	mu            sync.Mutex
	posts         []domain.Post
	draft         domain.Draft
	pendingDelete string
	submitting    bool
}

func NewPostService(api ports.PostAPI, bulletin *notify.Bulletin, logger zerolog.Logger) *PostService {
	if api == nil {
		panic("service: PostService requires a PostAPI")
	}
	if bulletin == nil {
		panic("service: PostService requires a Bulletin")
	}
	return &PostService{api: api, bulletin: bulletin, logger: logger}
}

// Refresh replaces the held collection with the server's current state. On
// failure the previous collection stays visible and an error notification is
// posted; stale-but-visible beats empty-on-transient-failure.
func (s *PostService) Refresh(ctx context.Context) {
	posts, res := s.api.List(ctx)
	if ctx.Err() != nil {
		return
	}
	if !res.OK() {
		s.logger.Error().Err(res.Cause()).Msg("post list refresh failed")
		s.bulletin.Post("Could not load posts", domain.SeverityError)
		return
	}

	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}

// Submit issues a create when the draft has no target, otherwise an update
// scoped to the target id. On success the draft clears and the collection is
// re-fetched; on failure the draft is kept so typed content is not lost.
// At most one submit is in flight at a time; extra calls are dropped.
func (s *PostService) Submit(ctx context.Context, draft domain.Draft) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return
	}
	s.submitting = true
	s.draft = draft
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	input := ports.PostInput{Title: draft.Title, Body: draft.Body}
	var res domain.CallResult
	if draft.Editing() {
		res = s.api.Update(ctx, draft.TargetID, input)
	} else {
		res = s.api.Create(ctx, input)
	}
	if ctx.Err() != nil {
		return
	}
	if !res.OK() {
		s.logger.Error().Err(res.Cause()).Bool("editing", draft.Editing()).Msg("post submit failed")
		s.bulletin.Post("Could not save the post", domain.SeverityError)
		return
	}

	s.mu.Lock()
	s.draft = domain.Draft{}
	s.mu.Unlock()

	// Re-fetch only after the mutation's success has been observed.
	s.Refresh(ctx)

	if draft.Editing() {
		s.bulletin.Post("Post updated", domain.SeveritySuccess)
	} else {
		s.bulletin.Post("Post created", domain.SeveritySuccess)
	}
}

// BeginEdit populates the draft from the held post with the given id and
// enters update mode. It reports whether the id was found.
func (s *PostService) BeginEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			s.draft = domain.Draft{Title: p.Title, Body: p.Body, TargetID: p.ID}
			return true
		}
	}
	return false
}

// CancelEdit discards the draft and returns to create mode.
func (s *PostService) CancelEdit() {
	s.mu.Lock()
	s.draft = domain.Draft{}
	s.mu.Unlock()
}

// RequestRemove marks a post for deletion pending explicit confirmation.
// No remote call happens here.
func (s *PostService) RequestRemove(id string) {
	s.mu.Lock()
	s.pendingDelete = id
	s.mu.Unlock()
}

// CancelRemove dismisses the pending confirmation.
func (s *PostService) CancelRemove() {
	s.mu.Lock()
	s.pendingDelete = ""
	s.mu.Unlock()
}

// ConfirmRemove issues the delete call for the pending id. The confirmation
// prompt is dismissed whether the call succeeds or fails.
func (s *PostService) ConfirmRemove(ctx context.Context) {
	s.mu.Lock()
	id := s.pendingDelete
	s.mu.Unlock()
	if id == "" {
		return
	}

	res := s.api.Delete(ctx, id)
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	s.pendingDelete = ""
	s.mu.Unlock()

	if !res.OK() {
		s.logger.Error().Err(res.Cause()).Str("post_id", id).Msg("post delete failed")
		s.bulletin.Post("Could not delete the post", domain.SeverityError)
		return
	}

	s.Refresh(ctx)
	s.bulletin.Post("Post deleted", domain.SeveritySuccess)
}

// View returns a snapshot of the editing state for rendering.
func (s *PostService) View() ports.PostsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]domain.Post, len(s.posts))
	copy(posts, s.posts)

	return ports.PostsView{
		Posts:         posts,
		Draft:         s.draft,
		PendingDelete: s.pendingDelete,
		Submitting:    s.submitting,
	}
}
