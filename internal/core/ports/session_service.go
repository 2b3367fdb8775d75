package ports

import (
	"context"

	"github.com/nordblog/console/internal/core/domain"
)

// SessionService owns the single session object for this console instance.
// All other components observe it through Snapshot and never mutate it.
type SessionService interface {
	// Probe resolves the current session status from the introspection
	// endpoint. It performs exactly one status transition per invocation.
	Probe(ctx context.Context)

	// Login authenticates and, on acknowledgement, re-probes to obtain the
	// canonical identity. Rejected credentials are a normal false return;
	// the error is non-nil only for transport-level failures.
	Login(ctx context.Context, creds domain.Credentials) (bool, error)

	// Register creates an account. It never establishes a session.
	Register(ctx context.Context, creds domain.Credentials) (bool, error)

	// Logout ends the session. The local identity is cleared regardless of
	// how the remote call goes.
	Logout(ctx context.Context)

	Snapshot() domain.Session
}
