package domain

// SessionStatus is the authentication state of this console instance.
type SessionStatus string

const (
	// StatusChecking holds only until the startup probe resolves; it is
	// never re-entered afterwards.
	StatusChecking      SessionStatus = "checking"
	StatusAuthenticated SessionStatus = "authenticated"
	StatusAnonymous     SessionStatus = "anonymous"
)

// Identity is the authenticated actor as reported by the introspection
// endpoint. The console never derives it from anywhere else.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Session is a point-in-time view of the single session object owned by the
// session service. Identity is non-nil exactly when Status is authenticated.
type Session struct {
	Status   SessionStatus
	Identity *Identity
}

// Settled reports whether the startup probe has resolved.
func (s Session) Settled() bool { return s.Status != StatusChecking }

func (s Session) Authenticated() bool { return s.Status == StatusAuthenticated }

// Email returns the signed-in email, or "" when anonymous.
func (s Session) Email() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Email
}

// Credentials carry a login or registration attempt. The password is held
// only for the duration of the call and never logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
