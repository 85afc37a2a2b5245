// Package ws fans incoming alerts out to live subscribers. Subscribers attach
// to a named channel: one channel per area plus a catch-all channel that
// receives every alert regardless of area.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/routing"
)

// CatchAllChannel receives every alert in addition to the per-area channel.
const CatchAllChannel = "all"

const subscriberBuffer = 16

// Subscriber is one live consumer of a channel. Messages arrive on Send;
// a subscriber that stops draining gets its pending messages dropped rather
// than blocking the fan-out.
type Subscriber struct {
	Channel string
	Send    chan []byte
}

// Hub maintains the set of active subscribers per channel.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscriber]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Subscriber]bool),
	}
}

// Subscribe registers a new subscriber on the given channel.
func (h *Hub) Subscribe(channel string) *Subscriber {
	sub := &Subscriber{
		Channel: channel,
		Send:    make(chan []byte, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[channel] == nil {
		h.subscribers[channel] = make(map[*Subscriber]bool)
	}
	h.subscribers[channel][sub] = true
	return sub
}

// Unsubscribe removes a subscriber and closes its Send channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[sub.Channel]
	if !ok || !subs[sub] {
		return
	}
	delete(subs, sub)
	close(sub.Send)
	if len(subs) == 0 {
		delete(h.subscribers, sub.Channel)
	}
}

// Broadcast delivers one alert to its per-area channel and to the catch-all
// channel. Fan-out is non-exclusive: both publications happen for every
// alert.
func (h *Hub) Broadcast(alert entity.Alert) error {
	message, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	areaChannel := routing.NormalizeSegment(alert.Area)
	h.publish(areaChannel, message)
	h.publish(CatchAllChannel, message)
	return nil
}

func (h *Hub) publish(channel string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[channel] {
		select {
		case sub.Send <- message:
		default:
			// Subscriber is not draining; drop instead of blocking.
		}
	}
}

// Subscribers reports the number of live subscribers on a channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[channel])
}
