package cache

import "sync"

// ScrollOffsets remembers the first visible item row per block.
type ScrollOffsets struct {
	mu      sync.Mutex
	offsets map[string]int
}

// NewScrollOffsets creates an empty store.
func NewScrollOffsets() *ScrollOffsets {
	return &ScrollOffsets{offsets: make(map[string]int)}
}

// Set stores the offset for block. Negative offsets are stored as zero.
func (s *ScrollOffsets) Set(block string, offset int) {
	if offset < 0 {
		offset = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets[block] = offset
}

// Get returns the stored offset, zero when unknown.
func (s *ScrollOffsets) Get(block string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offsets[block]
}

// Forget drops the offset for block.
func (s *ScrollOffsets) Forget(block string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.offsets, block)
}
