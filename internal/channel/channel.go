// Package channel implements the process-wide paste relay. One Channel
// owns the single subscription to the platform's paste notifications,
// classifies incoming clipboard snapshots into payloads, and fans each
// payload out to every live subscriber.
//
// The Channel is transport-agnostic: the native side is anything that
// can answer a pull (transport.Transport) and hand paste notifications
// to a callback. Subscribers register, receive payloads via Deliver,
// and unregister; there is no replay — a late subscriber sees only
// events emitted while it is live.
package channel

import (
	"log/slog"
	"sort"
	"sync"

	"go.gausoft.dev/pastein/internal/payload"
	"go.gausoft.dev/pastein/internal/transport"
)

// Subscriber is anything that can receive classified payloads from the
// channel. Deliver must be fast or fan out internally; it runs on the
// channel's emission path.
type Subscriber interface {
	ID() int64
	Deliver(payload.Payload)
}

// AttachFunc establishes the native paste subscription: it wires notify
// into whatever push mechanism the platform offers and returns a detach
// function. Both are called at most once per Initialize/Dispose pair.
type AttachFunc func(notify transport.PasteFunc) (detach func())

// Config assembles a Channel. Transport is the primary pull path,
// Fallback the degraded text-only path (may be nil), Attach the native
// push subscription (may be nil for pull-only setups).
type Config struct {
	Transport transport.Transport
	Fallback  transport.Transport
	Attach    AttachFunc
}

// Channel relays classified paste payloads to all registered subscribers.
type Channel struct {
	tr       transport.Transport
	fallback transport.Transport
	attach   AttachFunc

	mu          sync.Mutex
	subs        map[int64]Subscriber
	initialized bool
	detach      func()

	// emitMu serialises fan-out: every live subscriber receives event N
	// before any subscriber receives event N+1.
	emitMu sync.Mutex
}

// New returns a Channel that is not yet attached to the native side.
func New(cfg Config) *Channel {
	return &Channel{
		tr:       cfg.Transport,
		fallback: cfg.Fallback,
		attach:   cfg.Attach,
		subs:     make(map[int64]Subscriber),
	}
}

// Initialize establishes the one underlying native subscription.
// Idempotent: calling twice is a no-op. A disposed channel may be
// initialized again (hot-reload style restarts).
func (c *Channel) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	c.initialized = true
	if c.attach != nil {
		c.detach = c.attach(c.OnPasteDetected)
	}
	slog.Debug("paste channel initialized")
}

// Dispose tears down the native subscription. Native paste events
// arriving afterwards are dropped silently. Idempotent.
func (c *Channel) Dispose() {
	c.mu.Lock()
	detach := c.detach
	c.detach = nil
	wasInit := c.initialized
	c.initialized = false
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
	if wasInit {
		slog.Debug("paste channel disposed")
	}
}

// Subscribe adds a subscriber. Subscribing an id that is already
// present is a no-op, never an error.
func (c *Channel) Subscribe(s Subscriber) {
	c.mu.Lock()
	_, dup := c.subs[s.ID()]
	if !dup {
		c.subs[s.ID()] = s
	}
	total := len(c.subs)
	c.mu.Unlock()

	if dup {
		return
	}
	slog.Debug("paste subscriber registered", "view", s.ID(), "total", total)
}

// Unsubscribe removes a subscriber. Unknown ids are a no-op.
func (c *Channel) Unsubscribe(id int64) {
	c.mu.Lock()
	_, ok := c.subs[id]
	delete(c.subs, id)
	total := len(c.subs)
	c.mu.Unlock()

	if ok {
		slog.Debug("paste subscriber unregistered", "view", id, "total", total)
	}
}

// SubscriberCount reports how many views are currently registered.
func (c *Channel) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// OnPasteDetected is the native→core push entry point: the platform
// detected a paste action and captured the clipboard at that moment.
// Dropped silently when the channel is not initialized.
func (c *Channel) OnPasteDetected(content transport.Content) {
	c.mu.Lock()
	live := c.initialized
	c.mu.Unlock()
	if !live {
		slog.Debug("paste event dropped, channel not initialized")
		return
	}
	c.emit(payload.Classify(content))
}

// GetCurrentPayload reads and classifies the clipboard right now,
// independent of the event stream. Degradation chain: primary transport
// → text-only fallback → Unsupported. It never fails the caller.
func (c *Channel) GetCurrentPayload() payload.Payload {
	if c.tr != nil {
		content, err := c.tr.GetClipboardContent()
		if err == nil {
			return payload.Classify(content)
		}
		slog.Warn("clipboard read failed, trying text fallback", "err", err)
	}
	if c.fallback != nil {
		content, err := c.fallback.GetClipboardContent()
		if err == nil {
			return payload.Classify(content)
		}
		slog.Warn("text fallback read failed", "err", err)
	}
	return payload.Unsupported{}
}

// PasteNow performs a manually-triggered paste action: read, classify,
// broadcast, and return the payload so the caller can also act on it
// (e.g. insert text into its field) atomically with the notification.
func (c *Channel) PasteNow() payload.Payload {
	p := c.GetCurrentPayload()
	c.emit(p)
	return p
}

// emit fans p out to a snapshot of the current subscribers. The
// registry lock is released before any Deliver call so a subscriber
// tearing down concurrently never receives mid-teardown; emitMu keeps
// whole events ordered relative to each other.
func (c *Channel) emit(p payload.Payload) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	targets := make([]Subscriber, 0, len(c.subs))
	for _, s := range c.subs {
		targets = append(targets, s)
	}
	c.mu.Unlock()

	// Stable delivery order: oldest view first.
	sort.Slice(targets, func(i, j int) bool { return targets[i].ID() < targets[j].ID() })

	slog.Debug("paste payload", "kind", p.Kind(), "subscribers", len(targets))
	for _, s := range targets {
		s.Deliver(p)
	}
}
