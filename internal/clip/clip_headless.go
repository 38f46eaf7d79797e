package clip

import "go.gausoft.dev/pastein/internal/transport"

// headlessBackend is a no-op clipboard reader for environments without a
// display server (headless Linux servers, containers, etc.). It never
// produces Watch events and always reads an empty snapshot.
type headlessBackend struct {
	watchCh chan struct{}
}

func (b *headlessBackend) Name() string            { return "headless (no-op)" }
func (b *headlessBackend) Read() transport.Content { return transport.Content{} }
func (b *headlessBackend) Watch() <-chan struct{}  { return b.watchCh }
func (b *headlessBackend) Close()                  {}
