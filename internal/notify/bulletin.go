// Package notify implements the single-slot transient notification channel
// shared by the post service and the page handlers.
package notify

import (
	"sync"
	"time"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/metrics"
)

const defaultTTL = 3 * time.Second

// Bulletin holds at most one notification at a time. Posting replaces the
// current message rather than queueing behind it, and the message disappears
// on its own once the TTL elapses.
type Bulletin struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *domain.Notification
	expires time.Time

	now func() time.Time // stubbed in tests
}

// NewBulletin creates a Bulletin whose messages expire after ttl.
// If ttl <= 0, defaultTTL is used.
func NewBulletin(ttl time.Duration) *Bulletin {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Bulletin{ttl: ttl, now: time.Now}
}

// Post publishes a notification, superseding any current one.
func (b *Bulletin) Post(text string, severity domain.Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = &domain.Notification{Text: text, Severity: severity}
	b.expires = b.now().Add(b.ttl)
	metrics.NotificationsTotal.WithLabelValues(string(severity)).Inc()
}

// Current returns a copy of the visible notification, or nil when the slot is
// empty or the message has expired.
func (b *Bulletin) Current() *domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil || b.now().After(b.expires) {
		b.current = nil
		return nil
	}
	n := *b.current
	return &n
}

// Clear empties the slot.
func (b *Bulletin) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
}
