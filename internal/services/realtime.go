package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const subscriberBuffer = 32

// Hub fans store events out to connected display screens. A subscriber
// that falls behind by more than its buffer loses the oldest backlog and
// is expected to refetch state.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]chan Event
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]chan Event),
		log:  log.With().Str("component", "hub").Logger(),
	}
}

// Subscribe registers a listener. The returned func must be called once
// the listener is done; it closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	id := uuid.New()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish implements Notifier. It never blocks the caller.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- evt:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- evt:
			default:
			}
			h.log.Warn().Str("subscriber", id.String()).Str("event", evt.Type).Msg("subscriber lagging, dropped oldest event")
		}
	}
}

// Subscribers reports the number of live listeners.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
