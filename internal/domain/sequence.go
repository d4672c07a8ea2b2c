package domain

import "sync"

// Sequence hands out strictly increasing identifiers. Each owner injects its
// own instance; there are no process-wide counters.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}
