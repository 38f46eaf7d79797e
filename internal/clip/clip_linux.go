//go:build linux

package clip

import (
	"bytes"
	"log/slog"
	"time"

	"golang.design/x/clipboard"

	"go.gausoft.dev/pastein/internal/transport"
)

const linuxPollInterval = 250 * time.Millisecond

type linuxBackend struct {
	watchCh  chan struct{}
	done     chan struct{}
	lastText []byte
	lastImg  []byte
}

// New returns the Linux clipboard backend, or a headless no-op backend
// if the display environment is unavailable (e.g. a server without X11
// or Wayland). clipboard.Init is called here rather than in init() so
// that sub-commands that never read the clipboard don't trigger the
// warning.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{watchCh: make(chan struct{})}
	}
	b := &linuxBackend{
		watchCh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go b.poll()
	return b
}

func (b *linuxBackend) Name() string { return "Linux clipboard (poll)" }

func (b *linuxBackend) poll() {
	t := time.NewTicker(linuxPollInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			text := clipboard.Read(clipboard.FmtText)
			img := clipboard.Read(clipboard.FmtImage)
			if !bytes.Equal(text, b.lastText) || !bytes.Equal(img, b.lastImg) {
				b.lastText = text
				b.lastImg = img
				select {
				case b.watchCh <- struct{}{}:
				default:
				}
			}
		}
	}
}

func (b *linuxBackend) Read() transport.Content {
	var items []transport.Item
	// Image before text: the snapshot preserves reader order and the
	// classifier gives images priority either way, but keeping the
	// original check order makes the snapshots comparable across
	// platforms.
	if img := clipboard.Read(clipboard.FmtImage); img != nil {
		items = append(items, transport.NewBinaryItem(transport.MIMEPNG, img))
	}
	if text := clipboard.Read(clipboard.FmtText); text != nil {
		items = append(items, transport.NewBinaryItem(transport.MIMEText, text))
	}
	return transport.Content{Items: items}
}

func (b *linuxBackend) Watch() <-chan struct{} { return b.watchCh }
func (b *linuxBackend) Close()                 { close(b.done) }
