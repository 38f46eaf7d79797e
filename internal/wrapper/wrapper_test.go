package wrapper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.gausoft.dev/pastein/internal/channel"
	"go.gausoft.dev/pastein/internal/payload"
	"go.gausoft.dev/pastein/internal/tempfile"
	"go.gausoft.dev/pastein/internal/transport"
)

func textContent(s string) transport.Content {
	return transport.Content{Items: []transport.Item{transport.NewTextItem(s)}}
}

func imageContent(data []byte) transport.Content {
	return transport.Content{Items: []transport.Item{
		transport.NewBinaryItem(transport.MIMEPNG, data),
	}}
}

// collect returns a callback appending into got.
func collect(got *[]payload.Payload) Callback {
	return func(p payload.Payload) { *got = append(*got, p) }
}

func TestDeliversAcceptedPayloads(t *testing.T) {
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{})
	w.Mount(ch)

	ch.OnPasteDetected(textContent("hello"))

	require.Len(t, got, 1)
	assert.Equal(t, payload.Text{Text: "hello"}, got[0])
}

func TestMountInitializesChannel(t *testing.T) {
	// Mount must make the channel live without an explicit Initialize.
	attached := false
	ch := channel.New(channel.Config{Attach: func(transport.PasteFunc) func() {
		attached = true
		return func() {}
	}})
	w := New(func(payload.Payload) {}, Options{})
	w.Mount(ch)
	assert.True(t, attached)
}

func TestFilterDropsOtherKinds(t *testing.T) {
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{Filter: payload.Types(payload.KindImage)})
	w.Mount(ch)

	for i := 0; i < 100; i++ {
		ch.OnPasteDetected(textContent("nope"))
	}
	assert.Empty(t, got, "image-only wrapper must never see text payloads")

	ch.OnPasteDetected(imageContent([]byte{1}))
	assert.Len(t, got, 1)
}

func TestAtMostOncePerPasteAction(t *testing.T) {
	ch := channel.New(channel.Config{})
	var a, b []payload.Payload
	wa := New(collect(&a), Options{})
	wb := New(collect(&b), Options{})
	wa.Mount(ch)
	wb.Mount(ch)

	ch.OnPasteDetected(textContent("once"))

	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

func TestDisableEnableRoundTrip(t *testing.T) {
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{})
	w.Mount(ch)

	ch.OnPasteDetected(textContent("1"))
	w.SetEnabled(false)
	ch.OnPasteDetected(textContent("2"))
	ch.OnPasteDetected(textContent("3"))
	w.SetEnabled(true)
	ch.OnPasteDetected(textContent("4"))

	require.Len(t, got, 2, "zero deliveries while disabled")
	assert.Equal(t, payload.Text{Text: "1"}, got[0])
	assert.Equal(t, payload.Text{Text: "4"}, got[1])
}

func TestStartsDisabled(t *testing.T) {
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{Disabled: true})
	w.Mount(ch)

	ch.OnPasteDetected(textContent("while disabled"))
	assert.Empty(t, got)

	w.SetEnabled(true)
	ch.OnPasteDetected(textContent("after enable"))
	assert.Len(t, got, 1)
}

func TestDisposedWrapperIsInert(t *testing.T) {
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{})
	w.Mount(ch)
	w.Dispose()

	assert.NotPanics(t, func() {
		ch.OnPasteDetected(textContent("queued"))
		w.SetEnabled(true)
		w.Dispose()
		w.Mount(ch)
	})
	assert.Empty(t, got)
	assert.Equal(t, 0, ch.SubscriberCount())
}

func TestDisposeWhileDisabledStillUnregisters(t *testing.T) {
	ch := channel.New(channel.Config{})
	w := New(func(payload.Payload) {}, Options{})
	w.Mount(ch)
	w.SetEnabled(false)
	w.Dispose()
	assert.Equal(t, 0, ch.SubscriberCount())
}

func TestMountTwiceKeepsID(t *testing.T) {
	ch := channel.New(channel.Config{})
	w := New(func(payload.Payload) {}, Options{})
	w.Mount(ch)
	id := w.ViewID()
	w.Mount(ch)
	assert.Equal(t, id, w.ViewID())
	assert.Equal(t, 1, ch.SubscriberCount())
}

func TestViewIDsAreMonotonic(t *testing.T) {
	ch := channel.New(channel.Config{})
	a := New(func(payload.Payload) {}, Options{})
	b := New(func(payload.Payload) {}, Options{})
	a.Mount(ch)
	b.Mount(ch)
	assert.Greater(t, b.ViewID(), a.ViewID())
}

func TestFileBackedDelivery(t *testing.T) {
	dir := t.TempDir()
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{FileBacked: true, TempDir: dir})
	w.Mount(ch)

	ch.OnPasteDetected(imageContent([]byte{0x89, 0x50}))

	require.Len(t, got, 1)
	fi, ok := got[0].(payload.FileImage)
	require.True(t, ok, "file-backed wrapper must deliver FileImage")
	require.Len(t, fi.URIs, 1)
	require.Len(t, fi.MIMETypes, 1)
	assert.Equal(t, transport.MIMEPNG, fi.MIMETypes[0])

	data, err := os.ReadFile(fi.URIs[0])
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, data)
	assert.Contains(t, filepath.Base(fi.URIs[0]), tempfile.Prefix)
}

func TestFileBackedConversionFailureDegrades(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	ch := channel.New(channel.Config{})
	var got []payload.Payload
	w := New(collect(&got), Options{FileBacked: true, TempDir: dir})
	w.Mount(ch)

	ch.OnPasteDetected(imageContent([]byte{1}))

	require.Len(t, got, 1)
	assert.Equal(t, payload.Unsupported{}, got[0])
}

func TestClearTemporaryArtifacts(t *testing.T) {
	dir := t.TempDir()
	ours := filepath.Join(dir, tempfile.Prefix+"x.png")
	theirs := filepath.Join(dir, "keep.png")
	require.NoError(t, os.WriteFile(ours, []byte{1}, 0o600))
	require.NoError(t, os.WriteFile(theirs, []byte{2}, 0o600))

	ClearTemporaryArtifacts(dir)

	assert.NoFileExists(t, ours)
	assert.FileExists(t, theirs)
}
