package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.gausoft.dev/pastein/internal/channel"
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

func TestInterceptorNotifiesThenRunsDefault(t *testing.T) {
	tr := &fakeTransport{content: textContent("hello")}
	ch := channel.New(channel.Config{Transport: tr})
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)

	var order []string
	wrapped := NewInterceptor(ch).Wrap(func() { order = append(order, "default") })

	prev := len(sub.got)
	wrapped()

	require.Len(t, sub.got, prev+1, "exactly one notification per invocation")
	assert.Equal(t, payload.Text{Text: "hello"}, sub.got[0])
	assert.Equal(t, []string{"default"}, order, "default paste behaviour must still run")
}

func TestInterceptorNilDefault(t *testing.T) {
	ch := channel.New(channel.Config{Transport: &fakeTransport{}})
	wrapped := NewInterceptor(ch).Wrap(nil)
	assert.NotPanics(t, wrapped)
}

func TestInterceptorReentrantDefaultNotifiesOnce(t *testing.T) {
	tr := &fakeTransport{content: textContent("once")}
	ch := channel.New(channel.Config{Transport: tr})
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)

	i := NewInterceptor(ch)
	// Simulate a toolkit whose synthetic default paste routes back
	// through the wrapped command.
	var wrapped func()
	depth := 0
	wrapped = i.Wrap(func() {
		if depth == 0 {
			depth++
			wrapped()
		}
	})

	wrapped()
	assert.Len(t, sub.got, 1, "re-entrant dispatch is still one paste action")
}

func TestInterceptorTwoActionsTwoNotifications(t *testing.T) {
	tr := &fakeTransport{content: textContent("x")}
	ch := channel.New(channel.Config{Transport: tr})
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)

	wrapped := NewInterceptor(ch).Wrap(func() {})
	wrapped()
	wrapped()
	assert.Len(t, sub.got, 2)
}

func TestInsertionInlineBytes(t *testing.T) {
	ch := channel.New(channel.Config{})
	ch.Initialize()
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)

	NewInsertion(ch).OnInsert(transport.NewBinaryItem(transport.MIMEPNG, []byte{1, 2}))

	require.Len(t, sub.got, 1)
	img, ok := sub.got[0].(payload.Image)
	require.True(t, ok)
	assert.Equal(t, transport.MIMEPNG, img.Items[0].MIME)
}

func TestInsertionURIReadsResource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pasted.png")
	require.NoError(t, os.WriteFile(path, []byte{0xCA, 0xFE}, 0o600))

	ch := channel.New(channel.Config{})
	ch.Initialize()
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)

	NewInsertion(ch).OnInsertURI("file://"+path, transport.MIMEPNG)

	require.Len(t, sub.got, 1)
	img, ok := sub.got[0].(payload.Image)
	require.True(t, ok, "URI insertion must resolve to bytes before classification")
	assert.Equal(t, []byte{0xCA, 0xFE}, img.Items[0].Data)
}

func TestInsertionURIUnreadableDegrades(t *testing.T) {
	ch := channel.New(channel.Config{})
	ch.Initialize()
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)

	NewInsertion(ch).OnInsertURI(filepath.Join(t.TempDir(), "gone.png"), transport.MIMEPNG)

	require.Len(t, sub.got, 1)
	assert.Equal(t, payload.Unsupported{}, sub.got[0])
}

func TestManualTriggerReadsAtTriggerTime(t *testing.T) {
	tr := &fakeTransport{content: textContent("stale")}
	ch := channel.New(channel.Config{Transport: tr})
	sub := &fakeSub{id: 1}
	ch.Subscribe(sub)
	m := NewManual(ch)

	// Clipboard changes after construction; the trigger must see the
	// fresh content, never a pre-fetched snapshot.
	tr.content = textContent("fresh")
	p := m.Trigger()

	assert.Equal(t, payload.Text{Text: "fresh"}, p)
	require.Len(t, sub.got, 1)
	assert.Equal(t, payload.Text{Text: "fresh"}, sub.got[0])
}

func TestSelect(t *testing.T) {
	ch := channel.New(channel.Config{})

	assert.IsType(t, &Insertion{}, Select(ch, true, true))
	assert.IsType(t, &Interceptor{}, Select(ch, true, false))
	assert.IsType(t, &Manual{}, Select(ch, false, false))
}
