package ports

import (
	"context"

	"github.com/nordblog/console/internal/core/domain"
)

// AuthAPI is the remote authentication surface the console consumes. The
// session credential travels with every call; the adapter owns how.
type AuthAPI interface {
	// Me introspects the current session. The identity is non-nil exactly
	// when the result is OK. A denied result is the normal signed-out answer.
	Me(ctx context.Context) (*domain.Identity, domain.CallResult)

	Login(ctx context.Context, creds domain.Credentials) domain.CallResult
	Register(ctx context.Context, creds domain.Credentials) domain.CallResult
	Logout(ctx context.Context) domain.CallResult
}

// PostInput is the payload for a create or update call.
type PostInput struct {
	Title string
	Body  string
}

// PostAPI is the remote post collection surface.
type PostAPI interface {
	List(ctx context.Context) ([]domain.Post, domain.CallResult)
	Get(ctx context.Context, id string) (*domain.Post, domain.CallResult)
	Create(ctx context.Context, input PostInput) domain.CallResult
	Update(ctx context.Context, id string, input PostInput) domain.CallResult
	Delete(ctx context.Context, id string) domain.CallResult
}
