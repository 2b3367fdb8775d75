package domain

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a short-lived status message. At most one is visible at a
// time; a new one replaces the current one rather than queueing behind it.
type Notification struct {
	Text     string
	Severity Severity
}
