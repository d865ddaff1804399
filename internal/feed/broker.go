package feed

import (
	"sync"

	"uniformes/internal/model"
)

// Broker fans full-collection snapshots out to in-process subscribers.
// Every publish delivers a complete replacement, never a delta, so a slow
// subscriber only ever misses intermediate states, not data.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan []model.Delivery
	closed bool
}

// NewBroker returns an empty snapshot broker
func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan []model.Delivery)}
}

// Subscribe registers a new snapshot channel. The returned cancel func
// releases the subscription and closes the channel; it is safe to call
// more than once.
func (b *Broker) Subscribe() (<-chan []model.Delivery, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []model.Delivery, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish delivers snapshot to every subscriber without blocking. If a
// subscriber has not drained the previous snapshot it is replaced, so each
// channel always holds the most recent state.
func (b *Broker) Publish(snapshot []model.Delivery) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	for _, ch := range b.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}

// Close tears down the broker and closes all subscriber channels.
// No callbacks fire after Close returns.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
