// Package inmemory provides a concurrency-safe, slice-backed implementation
// of [memory.Store].
package inmemory

import (
	"sync"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
	"github.com/Rreeqqwel/omni-agent-cli/providers/memory"
)

// Store is a simple in-memory message history guarded by an RWMutex; reads
// are copies, so callers can never mutate the stored history.
type Store struct {
	mu       sync.RWMutex
	messages []ai.Message
}

var _ memory.Store = (*Store)(nil)

// New returns an empty Store ready for use.
func New() *Store {
	return &Store{messages: []ai.Message{}}
}

// Append adds messages to the end of the history.
func (s *Store) Append(messages ...ai.Message) {
	if len(messages) == 0 {
		return
	}
	s.mu.Lock()
	s.messages = append(s.messages, messages...)
	s.mu.Unlock()
}

// Messages returns a copy of the full history, oldest first. The returned
// slice is always non-nil.
func (s *Store) Messages() []ai.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ai.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns a copy of up to n trailing messages. Zero or negative n
// yields an empty slice.
func (s *Store) Last(n int) []ai.Message {
	if n <= 0 {
		return []ai.Message{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.messages) {
		n = len(s.messages)
	}
	out := make([]ai.Message, n)
	copy(out, s.messages[len(s.messages)-n:])
	return out
}

// Clear discards the history but keeps the underlying capacity.
func (s *Store) Clear() {
	s.mu.Lock()
	s.messages = s.messages[:0]
	s.mu.Unlock()
}
