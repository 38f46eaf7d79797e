package source

import (
	"sync/atomic"

	"go.gausoft.dev/pastein/internal/channel"
)

// Interceptor implements replacement interception: it wraps a field's
// built-in paste action so a paste both notifies consumers and still
// performs its visible default behaviour.
type Interceptor struct {
	ch *channel.Channel

	// inFlight guards re-entrancy: when the default action routes back
	// through the wrapped command (some toolkits dispatch the synthetic
	// paste through the same hook), the nested call must not notify a
	// second time for the same user action.
	inFlight atomic.Bool
}

// NewInterceptor returns an Interceptor publishing to ch.
func NewInterceptor(ch *channel.Channel) *Interceptor {
	return &Interceptor{ch: ch}
}

func (i *Interceptor) Name() string { return "replacement interception" }

// Wrap returns the replacement for defaultPaste. Invoking it reads and
// broadcasts the clipboard exactly once, then runs defaultPaste so the
// field's own paste behaviour proceeds unchanged. defaultPaste may be
// nil when the field has no default action to preserve.
func (i *Interceptor) Wrap(defaultPaste func()) func() {
	return func() {
		if i.inFlight.CompareAndSwap(false, true) {
			defer i.inFlight.Store(false)
			// Read at invocation time, never earlier: the clipboard is
			// captured at the moment of the paste action.
			i.ch.PasteNow()
		}
		if defaultPaste != nil {
			defaultPaste()
		}
	}
}
