// Package wrapper is the per-field policy layer over the paste channel:
// each wrapped text input owns one Wrapper, which subscribes to the
// channel, filters payloads by accepted kind, optionally converts image
// bytes to temp files, and hands accepted payloads to the consumer
// callback exactly once each.
//
// Lifecycle per instance: Unmounted → Mounted+Disabled ⇄ Mounted+Enabled
// → Disposed (terminal). Misuse — double mount, enable after dispose,
// double dispose — is always a silent no-op; UI teardown ordering is not
// something consumers fully control.
package wrapper

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"go.gausoft.dev/pastein/internal/channel"
	"go.gausoft.dev/pastein/internal/payload"
	"go.gausoft.dev/pastein/internal/tempfile"
)

// nextViewID hands out process-wide monotonically increasing view ids.
var nextViewID atomic.Int64

// Callback receives payloads that passed the wrapper's filter. It runs
// on the channel's emission path and must not call back into the
// wrapper synchronously.
type Callback func(payload.Payload)

// Options configure a Wrapper at construction.
type Options struct {
	// Filter restricts which payload kinds reach the callback.
	// nil accepts everything; payload.Types() accepts nothing.
	Filter *payload.Filter

	// FileBacked switches image delivery from raw bytes to temp-file
	// paths (a FileImage payload). Conversion failures degrade that
	// paste to Unsupported.
	FileBacked bool

	// TempDir is where file-backed images land; OS temp dir when empty.
	TempDir string

	// Disabled starts the wrapper mounted-but-disabled. The default
	// (false) matches the common case: deliver from mount onwards.
	Disabled bool
}

// Wrapper applies per-instance policy to the channel's broadcast.
type Wrapper struct {
	onPaste    Callback
	filter     *payload.Filter
	fileBacked bool
	writer     *tempfile.Writer

	// mu guards the state machine and is held across the consumer
	// callback, so Dispose and SetEnabled(false) linearize against an
	// in-flight delivery: once they return, the callback cannot fire
	// again.
	mu       sync.Mutex
	ch       *channel.Channel
	id       int64
	mounted  bool
	enabled  bool
	disposed bool
}

// New builds a Wrapper; nothing happens until Mount.
func New(onPaste Callback, opts Options) *Wrapper {
	return &Wrapper{
		onPaste:    onPaste,
		filter:     opts.Filter,
		fileBacked: opts.FileBacked,
		writer:     tempfile.NewWriter(opts.TempDir),
		enabled:    !opts.Disabled,
	}
}

// ViewID returns the instance id, 0 before Mount.
func (w *Wrapper) ViewID() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.id
}

// Mount attaches the wrapper to ch, assigns its view id, and — when
// enabled — initializes the channel (safe to call redundantly) and
// subscribes. Mounting twice, or after Dispose, is a no-op.
func (w *Wrapper) Mount(ch *channel.Channel) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted || w.disposed {
		return
	}
	w.ch = ch
	w.id = nextViewID.Add(1)
	w.mounted = true
	if w.enabled {
		w.subscribeLocked()
	}
}

// SetEnabled flips delivery on or off. Disabling unsubscribes, so
// events occurring strictly while disabled never reach this instance;
// re-enabling resubscribes for subsequent events. No-op when the value
// is unchanged, before Mount the flag is stored for Mount to honour,
// and after Dispose nothing happens.
func (w *Wrapper) SetEnabled(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disposed || w.enabled == enabled {
		return
	}
	w.enabled = enabled
	if !w.mounted {
		return
	}
	if enabled {
		w.subscribeLocked()
	} else {
		w.ch.Unsubscribe(w.id)
	}
}

// Dispose unsubscribes and makes the wrapper permanently inert,
// regardless of its enabled state. Idempotent. Must not be called from
// inside the OnPaste callback.
func (w *Wrapper) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disposed {
		return
	}
	w.disposed = true
	if w.mounted {
		w.ch.Unsubscribe(w.id)
	}
}

func (w *Wrapper) subscribeLocked() {
	w.ch.Initialize()
	w.ch.Subscribe(w)
}

// ID implements channel.Subscriber.
func (w *Wrapper) ID() int64 { return w.id }

// Deliver implements channel.Subscriber: filter, convert, hand to the
// consumer. Payloads arriving after dispose or while disabled are
// dropped without side effects.
func (w *Wrapper) Deliver(p payload.Payload) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disposed || !w.enabled {
		return
	}
	if !w.filter.Accepts(p.Kind()) {
		return
	}
	if img, ok := p.(payload.Image); ok && w.fileBacked {
		p = w.toFileBacked(img)
	}
	w.onPaste(p)
}

// toFileBacked converts raw image bytes to a FileImage payload. A
// conversion failure turns this paste into Unsupported — paste is a
// best-effort convenience, never an error surface.
func (w *Wrapper) toFileBacked(img payload.Image) payload.Payload {
	uris, mimes, err := w.writer.WriteImages(img.Items)
	if err != nil {
		slog.Warn("file-backed conversion failed", "view", w.id, "err", err)
		return payload.Unsupported{}
	}
	return payload.FileImage{URIs: uris, MIMETypes: mimes}
}

// ClearTemporaryArtifacts removes every file created by prior
// file-backed conversions into dir (OS temp dir when empty). Files
// without the pipeline's reserved name prefix are untouched.
func ClearTemporaryArtifacts(dir string) {
	tempfile.NewWriter(dir).Clear()
}
