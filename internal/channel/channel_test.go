package channel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.gausoft.dev/pastein/internal/payload"
	"go.gausoft.dev/pastein/internal/transport"
)

type fakeSub struct {
	id  int64
	got []payload.Payload
}

func (s *fakeSub) ID() int64                 { return s.id }
func (s *fakeSub) Deliver(p payload.Payload) { s.got = append(s.got, p) }

type fakeTransport struct {
	content transport.Content
	err     error
}

func (t *fakeTransport) GetClipboardContent() (transport.Content, error) {
	return t.content, t.err
}

func textContent(s string) transport.Content {
	return transport.Content{Items: []transport.Item{transport.NewTextItem(s)}}
}

func TestInitializeIsIdempotent(t *testing.T) {
	attached := 0
	c := New(Config{Attach: func(transport.PasteFunc) func() {
		attached++
		return func() {}
	}})

	c.Initialize()
	c.Initialize()
	assert.Equal(t, 1, attached, "second Initialize must be a no-op")
}

func TestDisposeDropsSubsequentEvents(t *testing.T) {
	detached := 0
	c := New(Config{Attach: func(transport.PasteFunc) func() {
		return func() { detached++ }
	}})
	sub := &fakeSub{id: 1}
	c.Subscribe(sub)

	c.Initialize()
	c.OnPasteDetected(textContent("before"))
	c.Dispose()
	c.OnPasteDetected(textContent("after"))

	require.Len(t, sub.got, 1)
	assert.Equal(t, payload.Text{Text: "before"}, sub.got[0])
	assert.Equal(t, 1, detached)

	// Double dispose is a no-op.
	c.Dispose()
	assert.Equal(t, 1, detached)
}

func TestReinitializeAfterDispose(t *testing.T) {
	attached := 0
	c := New(Config{Attach: func(transport.PasteFunc) func() {
		attached++
		return func() {}
	}})
	sub := &fakeSub{id: 1}
	c.Subscribe(sub)

	c.Initialize()
	c.Dispose()
	c.Initialize()
	c.OnPasteDetected(textContent("again"))

	assert.Equal(t, 2, attached)
	require.Len(t, sub.got, 1)
	assert.Equal(t, payload.Text{Text: "again"}, sub.got[0])
}

func TestFanOutReachesEverySubscriberInOrder(t *testing.T) {
	c := New(Config{})
	a := &fakeSub{id: 1}
	b := &fakeSub{id: 2}
	c.Subscribe(a)
	c.Subscribe(b)
	c.Initialize()

	c.OnPasteDetected(textContent("one"))
	c.OnPasteDetected(textContent("two"))

	want := []payload.Payload{payload.Text{Text: "one"}, payload.Text{Text: "two"}}
	assert.Equal(t, want, a.got)
	assert.Equal(t, want, b.got)
}

func TestNoReplayForLateSubscribers(t *testing.T) {
	c := New(Config{})
	c.Initialize()
	early := &fakeSub{id: 1}
	c.Subscribe(early)
	c.OnPasteDetected(textContent("missed"))

	late := &fakeSub{id: 2}
	c.Subscribe(late)
	c.OnPasteDetected(textContent("seen"))

	assert.Len(t, early.got, 2)
	require.Len(t, late.got, 1)
	assert.Equal(t, payload.Text{Text: "seen"}, late.got[0])
}

func TestSubscribeDuplicateIDIsNoop(t *testing.T) {
	c := New(Config{})
	c.Initialize()
	sub := &fakeSub{id: 7}
	c.Subscribe(sub)
	c.Subscribe(sub)
	assert.Equal(t, 1, c.SubscriberCount())

	c.OnPasteDetected(textContent("x"))
	assert.Len(t, sub.got, 1, "double registration must not double deliveries")
}

func TestUnsubscribeUnknownIDIsNoop(t *testing.T) {
	c := New(Config{})
	assert.NotPanics(t, func() { c.Unsubscribe(42) })
}

func TestEventsDroppedBeforeInitialize(t *testing.T) {
	c := New(Config{})
	sub := &fakeSub{id: 1}
	c.Subscribe(sub)

	c.OnPasteDetected(textContent("too early"))
	assert.Empty(t, sub.got)
}

func TestGetCurrentPayloadPrimary(t *testing.T) {
	c := New(Config{Transport: &fakeTransport{content: textContent("hi")}})
	assert.Equal(t, payload.Text{Text: "hi"}, c.GetCurrentPayload())
}

func TestGetCurrentPayloadFallsBackToTextRead(t *testing.T) {
	c := New(Config{
		Transport: &fakeTransport{err: errors.New("channel torn down")},
		Fallback:  &fakeTransport{content: textContent("fallback")},
	})
	assert.Equal(t, payload.Text{Text: "fallback"}, c.GetCurrentPayload())
}

func TestGetCurrentPayloadDegradesToUnsupported(t *testing.T) {
	c := New(Config{
		Transport: &fakeTransport{err: errors.New("boom")},
		Fallback:  &fakeTransport{err: errors.New("also boom")},
	})
	assert.Equal(t, payload.Unsupported{}, c.GetCurrentPayload())
}

func TestGetCurrentPayloadNoTransports(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, payload.Unsupported{}, c.GetCurrentPayload())
}

func TestPasteNowBroadcastsAndReturns(t *testing.T) {
	c := New(Config{Transport: &fakeTransport{content: textContent("now")}})
	sub := &fakeSub{id: 1}
	c.Subscribe(sub)

	p := c.PasteNow()

	assert.Equal(t, payload.Text{Text: "now"}, p)
	require.Len(t, sub.got, 1)
	assert.True(t, p.Equal(sub.got[0]))
}
