package form

import (
	"time"

	"github.com/KirkDiggler/rpg-petgen/internal/pkg/clock"
)

// Notice is a transient warning shown to the designer
type Notice struct {
	// Seq increases with every Show
	Seq       int
	Message   string
	ShownAt   time.Time
	ExpiresAt time.Time
}

// NoticeBoard holds at most one notice and drops it once its ttl has passed.
// Showing a new notice replaces the current one.
type NoticeBoard struct {
	clock   clock.Clock
	ttl     time.Duration
	current *Notice
	seq     int
}

// NewNoticeBoard creates a board whose notices last ttl
func NewNoticeBoard(clk clock.Clock, ttl time.Duration) *NoticeBoard {
	return &NoticeBoard{
		clock: clk,
		ttl:   ttl,
	}
}

// Show posts msg
func (b *NoticeBoard) Show(msg string) {
	now := b.clock.Now()
	b.seq++
	b.current = &Notice{
		Seq:       b.seq,
		Message:   msg,
		ShownAt:   now,
		ExpiresAt: now.Add(b.ttl),
	}
}

// Current returns the visible notice, if any
func (b *NoticeBoard) Current() (Notice, bool) {
	if b.current == nil {
		return Notice{}, false
	}
	if !b.clock.Now().Before(b.current.ExpiresAt) {
		b.current = nil
		return Notice{}, false
	}
	return *b.current, true
}

// Dismiss drops the current notice
func (b *NoticeBoard) Dismiss() {
	b.current = nil
}
