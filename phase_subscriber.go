package groupeng

import (
	"sync"

	"github.com/clarksmr/groupeng/types"
)

// phaseSubscriber is a helper for managing phase change subscriptions.
type phaseSubscriber struct {
	ch     chan types.Phase
	mu     sync.Mutex
	closed bool
}

// trySend sends a phase update to the subscriber's channel without blocking.
func (s *phaseSubscriber) trySend(phase types.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.ch <- phase:
	default:
		// Subscriber is slow or not ready; they will get the next update.
	}
}

// close safely closes the subscriber's channel.
func (s *phaseSubscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
