// Package clip reads the system clipboard across platforms. Build
// constraints select the appropriate implementation:
//
//	clip_darwin.go   — macOS via golang.design/x/clipboard + cgo changeCount
//	clip_windows.go  — Windows via golang.design/x/clipboard + AddClipboardFormatListener
//	clip_linux.go    — Linux via golang.design/x/clipboard, polling only
//	clip_other.go    — headless / container stub
//
// Readers fail closed: any OS-level failure (locked clipboard, missing
// display server) surfaces as an empty snapshot, never as an error.
package clip

import "go.gausoft.dev/pastein/internal/transport"

// Backend is the interface all platform clipboard readers satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current clipboard contents as a snapshot.
	// The snapshot is empty if the clipboard is empty, locked by
	// another process, or holds only unsupported formats.
	Read() transport.Content

	// Watch returns a channel that receives a signal whenever the
	// clipboard changes. The channel is never closed. On platforms
	// without native change notification this is implemented via
	// polling. The caller should call Read() when it receives from
	// the channel — content is never pre-fetched.
	Watch() <-chan struct{}

	// Close releases any resources held by the backend.
	Close()
}

// AsTransport adapts a Backend to the transport pull interface. The
// returned transport never errors; failures have already collapsed to
// an empty snapshot inside Read.
func AsTransport(b Backend) transport.Transport {
	return backendTransport{b}
}

type backendTransport struct{ b Backend }

func (t backendTransport) GetClipboardContent() (transport.Content, error) {
	return t.b.Read(), nil
}
