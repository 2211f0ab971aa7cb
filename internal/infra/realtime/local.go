package realtime

import (
	"context"
	"sync"

	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// LocalTransport is an in-process transport for single-node deployments and tests.
type LocalTransport struct {
	mu         sync.RWMutex
	subs       map[uuid.UUID]map[*localSubscription]struct{}
	bufferSize int
}

func NewLocalTransport(bufferSize int) *LocalTransport {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &LocalTransport{
		subs:       make(map[uuid.UUID]map[*localSubscription]struct{}),
		bufferSize: bufferSize,
	}
}

func (t *LocalTransport) Publish(_ context.Context, channelID uuid.UUID, payload []byte) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for sub := range t.subs[channelID] {
		sub.deliver(payload)
	}
	return nil
}

func (t *LocalTransport) Subscribe(_ context.Context, channelID uuid.UUID) (shared.TransportSubscription, error) {
	sub := &localSubscription{
		transport: t,
		channelID: channelID,
		out:       make(chan []byte, t.bufferSize),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.subs[channelID] == nil {
		t.subs[channelID] = make(map[*localSubscription]struct{})
	}
	t.subs[channelID][sub] = struct{}{}
	return sub, nil
}

// Subscribers reports how many live subscriptions a channel has.
func (t *LocalTransport) Subscribers(channelID uuid.UUID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs[channelID])
}

func (t *LocalTransport) remove(sub *localSubscription) {
	t.mu.Lock()
	defer t.mu.Unlock()
	set := t.subs[sub.channelID]
	delete(set, sub)
	if len(set) == 0 {
		delete(t.subs, sub.channelID)
	}
}

type localSubscription struct {
	transport *LocalTransport
	channelID uuid.UUID
	out       chan []byte

	mu     sync.Mutex
	closed bool
}

// deliver never blocks the publisher; an overflowing subscriber loses the
// message and catches up from history.
func (s *localSubscription) deliver(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.out <- payload:
	default:
	}
}

func (s *localSubscription) Messages() <-chan []byte {
	return s.out
}

func (s *localSubscription) Close() error {
	s.transport.remove(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.out)
	}
	return nil
}
