package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/metrics"
)

// SessionService owns the one session object of this console instance and is
// the only component allowed to mutate it. The lifecycle is: checking until
// the startup probe resolves, then authenticated or anonymous; checking is
// never re-entered.
type SessionService struct {
	auth   ports.AuthAPI
	logger zerolog.Logger

	mu       sync.RWMutex
	status   domain.SessionStatus
	identity *domain.Identity
}

func NewSessionService(auth ports.AuthAPI, logger zerolog.Logger) *SessionService {
	if auth == nil {
		panic("service: SessionService requires an AuthAPI")
	}
	return &SessionService{
		auth:   auth,
		logger: logger,
		status: domain.StatusChecking,
	}
}

// Probe resolves the session status from the introspection endpoint and
// performs exactly one transition. A denied answer is the normal signed-out
// case; transport failures and server faults also land on anonymous, but are
// logged so they stay distinguishable.
func (s *SessionService) Probe(ctx context.Context) {
	identity, res := s.auth.Me(ctx)

	switch {
	case res.OK() && identity != nil:
		s.transition(domain.StatusAuthenticated, identity)
	case res.Denied():
		s.transition(domain.StatusAnonymous, nil)
	default:
		s.logger.Warn().
			Int("status", res.Status).
			AnErr("cause", res.Err).
			Msg("session probe failed, treating as anonymous")
		s.transition(domain.StatusAnonymous, nil)
	}
}

// Login sends credentials to the remote API. On acknowledgement the identity
// is re-derived from the introspection endpoint rather than trusted from the
// login response. Rejected credentials return (false, nil); only transport
// failures and server faults produce an error.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (bool, error) {
	res := s.auth.Login(ctx, creds)

	switch res.Outcome {
	case domain.OutcomeOK:
		s.Probe(ctx)
		return s.Snapshot().Authenticated(), nil
	case domain.OutcomeDenied, domain.OutcomeRejected:
		return false, nil
	default:
		return false, fmt.Errorf("login call failed: %w", res.Cause())
	}
}

// Register creates an account. It deliberately establishes no session; the
// caller signs in separately.
func (s *SessionService) Register(ctx context.Context, creds domain.Credentials) (bool, error) {
	res := s.auth.Register(ctx, creds)

	switch res.Outcome {
	case domain.OutcomeOK:
		return true, nil
	case domain.OutcomeDenied, domain.OutcomeRejected:
		return false, nil
	default:
		return false, fmt.Errorf("register call failed: %w", res.Cause())
	}
}

// Logout tells the remote API to end the session, then clears the local
// identity no matter what came back. A failed call must not strand the
// console in an authenticated-looking state.
func (s *SessionService) Logout(ctx context.Context) {
	if res := s.auth.Logout(ctx); !res.OK() {
		s.logger.Warn().
			Int("status", res.Status).
			AnErr("cause", res.Err).
			Msg("logout call failed, clearing local session anyway")
	}
	s.transition(domain.StatusAnonymous, nil)
}

// Snapshot returns a read-only copy of the session for gates and views.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Session{Status: s.status}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

func (s *SessionService) transition(to domain.SessionStatus, identity *domain.Identity) {
	s.mu.Lock()
	from := s.status
	s.status = to
	s.identity = identity
	s.mu.Unlock()

	if from != to {
		metrics.SessionTransitionsTotal.WithLabelValues(string(to)).Inc()
		s.logger.Info().
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("session status changed")
	}
}
