package service

import (
	"sync"
	"time"

	"elampillai/storefront/internal/domain"
)

// DefaultNoticeTTL is how long a transient notice stays visible.
const DefaultNoticeTTL = 3 * time.Second

// noticeBoard holds the transient per-session notices. Expired notices are
// pruned lazily on read, against the injected clock rather than the wall
// clock.
type noticeBoard struct {
	mu      sync.Mutex
	clock   Clock
	ttl     time.Duration
	notices []domain.Notice
}

func newNoticeBoard(clock Clock, ttl time.Duration) *noticeBoard {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &noticeBoard{clock: clock, ttl: ttl}
}

func (b *noticeBoard) Post(message, kind string) {
	now := b.clock.Now()
	b.mu.Lock()
	b.notices = append(b.notices, domain.Notice{
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(b.ttl),
	})
	b.mu.Unlock()
}

// Active returns the notices that have not yet expired, oldest first.
func (b *noticeBoard) Active() []domain.Notice {
	now := b.clock.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.notices[:0]
	for _, n := range b.notices {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	b.notices = kept

	out := make([]domain.Notice, len(kept))
	copy(out, kept)
	return out
}
