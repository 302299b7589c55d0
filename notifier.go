/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import "sync"

// ChangeEvent announces that some item of the tagged type was created,
// updated, or deleted. It deliberately carries no payload, identifier, or
// operation kind; subscribers that need the data re-read it.
type ChangeEvent struct {
	// Type is the notification tag of the mutated item type.
	Type string
}

// subscriberBuffer is the per-subscriber channel capacity. Events beyond it
// spill into the subscriber's overflow queue; Publish never blocks on a
// slow consumer.
const subscriberBuffer = 16

// subscriber owns one observer's delivery state. Fast-path events go
// straight into out; once the buffer is full they queue in overflow and a
// pump goroutine forwards them, giving up as soon as done closes.
type subscriber struct {
	mu       sync.Mutex
	out      chan ChangeEvent
	overflow []ChangeEvent
	inflight bool
	wake     chan struct{}
	done     chan struct{}
}

func newSubscriber() *subscriber {
	s := &subscriber{
		out:  make(chan ChangeEvent, subscriberBuffer),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go s.pump()
	return s
}

// push hands the subscriber one event. It delivers into the buffer directly
// while no overflow is pending, so the common case is synchronous; otherwise
// it appends to the overflow queue and wakes the pump. Never blocks.
func (s *subscriber) push(ev ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.overflow) == 0 && !s.inflight {
		select {
		case s.out <- ev:
			return
		default:
		}
	}

	s.overflow = append(s.overflow, ev)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump forwards overflow events in order, one at a time, until done closes.
// It owns closing out, so subscribers always observe closure after the
// buffered events they were going to get anyway.
func (s *subscriber) pump() {
	for {
		s.mu.Lock()
		if len(s.overflow) == 0 {
			s.inflight = false
			s.mu.Unlock()

			select {
			case <-s.wake:
				continue
			case <-s.done:
				close(s.out)
				return
			}
		}
		ev := s.overflow[0]
		s.overflow = s.overflow[1:]
		s.inflight = true
		s.mu.Unlock()

		select {
		case s.out <- ev:
		case <-s.done:
			close(s.out)
			return
		}
	}
}

// ChangeNotifier fans ChangeEvents out to every current subscriber.
// Events are delivered exactly once per subscriber, in publish order.
// Subscribers that join after an event see nothing retroactively.
type ChangeNotifier struct {
	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	closed bool
}

// NewChangeNotifier creates an open notifier with no subscribers.
func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{
		subs: make(map[int]*subscriber),
	}
}

// Subscribe registers a new observer and returns its receive channel plus a
// cancel function. Cancel is idempotent, returns without waiting on the
// observer, and leads to channel closure. Subscribing to a closed notifier
// returns an already-closed channel and a no-op cancel.
func (n *ChangeNotifier) Subscribe() (<-chan ChangeEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		ch := make(chan ChangeEvent)
		close(ch)
		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	sub := newSubscriber()
	n.subs[id] = sub

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub.done)
		}
	}
	return sub.out, cancel
}

// Publish delivers ev to every current subscriber. It never blocks: slow
// subscribers accumulate events in their overflow queue instead of wedging
// mutations, cancellation, or disposal. Publishing to a closed notifier is
// a silent no-op. The mutex serializes publishes, so all subscribers
// observe the same event order.
func (n *ChangeNotifier) Publish(ev ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	for _, sub := range n.subs {
		sub.push(ev)
	}
}

// Close shuts the notifier down: every subscriber channel closes after its
// already-buffered events, and further publishes are dropped. Returns
// without waiting on slow subscribers; closing twice is a no-op.
func (n *ChangeNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, sub := range n.subs {
		delete(n.subs, id)
		close(sub.done)
	}
}
