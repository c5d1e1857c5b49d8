package domain

import "sync"

// IDSource yields a fresh, strictly increasing identifier on each call.
type IDSource interface {
	Next() int64
}

// Sequence is a counter starting at 1. The zero value is ready to use.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}
