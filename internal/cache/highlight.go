// Package cache holds small process-wide UI affordances: the card to highlight
// after an edit and the last scroll offset of each block. Both are best-effort;
// losing an entry never affects the document.
package cache

import (
	"sync"
	"time"
)

// DefaultHighlightTTL is how long a pending highlight stays valid.
const DefaultHighlightTTL = 5 * time.Second

// Target is the card a render should highlight.
type Target struct {
	Block  int
	Column int
	Item   int
}

type highlight struct {
	target  Target
	expires time.Time
}

// Highlights maps a document to the card it should highlight next.
type Highlights struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]highlight
}

// NewHighlights creates a store whose entries expire after ttl.
func NewHighlights(ttl time.Duration) *Highlights {
	if ttl <= 0 {
		ttl = DefaultHighlightTTL
	}
	return &Highlights{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]highlight),
	}
}

// SetNow overrides the clock (for testing).
func (h *Highlights) SetNow(fn func() time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = fn
}

// Set records target as the pending highlight for doc, replacing any previous one.
func (h *Highlights) Set(doc string, target Target) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[doc] = highlight{target: target, expires: h.now().Add(h.ttl)}
}

// Take returns and removes the pending highlight for doc if it has not expired.
func (h *Highlights) Take(doc string) (Target, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry, ok := h.entries[doc]
	if !ok {
		return Target{}, false
	}
	delete(h.entries, doc)
	if !h.now().Before(entry.expires) {
		return Target{}, false
	}
	return entry.target, true
}
