package snapshot

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
)

// HubError is an error type for snapshot broadcasting.
type HubError string

func (e HubError) Error() string {
	return string(e)
}

// ErrHubClosed is flagged when publishing to or subscribing at a closed hub.
const ErrHubClosed = HubError("snapshot hub is closed")

// Hub broadcasts snapshots to subscribers. Every subscriber receives the
// snapshots published after it subscribed, in publishing order. Publishing
// never waits for subscribers: a subscriber whose buffer is full misses
// the snapshot.
type Hub struct {
	cast   *caster.Caster
	mx     sync.Mutex
	closed bool
}

// NewHub creates a hub. Cancelling ctx closes the hub.
func NewHub(ctx context.Context) *Hub {
	return &Hub{cast: caster.New(ctx)}
}

// Subscribe returns a channel of snapshots. The channel is closed when ctx
// is done or the hub is closed. capacity is the number of snapshots which
// may be buffered for a slow subscriber.
func (h *Hub) Subscribe(ctx context.Context, capacity uint) (<-chan Snapshot, error) {
	h.mx.Lock()
	defer h.mx.Unlock()
	if h.closed {
		return nil, ErrHubClosed
	}
	select {
	case <-h.cast.Done():
		return nil, ErrHubClosed
	default:
	}
	sub, _ := h.cast.Sub(ctx, capacity)
	out := make(chan Snapshot, capacity)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				h.cast.Unsub(sub)
				return
			case m, ok := <-sub:
				if !ok {
					return
				}
				s, ok := m.(Snapshot)
				if !ok {
					continue
				}
				select {
				case out <- s:
				case <-ctx.Done():
					h.cast.Unsub(sub)
					return
				}
			}
		}
	}()
	return out, nil
}

// Publish sends s to all current subscribers which have room for it.
func (h *Hub) Publish(s Snapshot) error {
	h.mx.Lock()
	defer h.mx.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	if !h.cast.TryPub(s) {
		return ErrHubClosed
	}
	T().Debugf("snapshot published")
	return nil
}

// Close shuts the hub down. Closing twice is a no-op.
func (h *Hub) Close() {
	h.mx.Lock()
	defer h.mx.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.cast.Close()
}
