// Package source adapts platform paste hooks into channel notifications.
//
// Platforms expose paste in three shapes, each covered by one strategy:
//
//   - Interceptor (replacement interception): the toolkit has a built-in
//     paste command that can be wrapped. The wrapper notifies, then lets
//     the original command run so the field behaves as before.
//   - Insertion (native content-insertion callback): the OS pushes the
//     inserted content (inline bytes or a file URI) straight at us; no
//     clipboard read is needed, but URIs must be resolved first.
//   - Manual (trigger + read): nothing native exists, so the host
//     intercepts a generic paste intent and triggers an explicit
//     clipboard read at that moment.
//
// Exactly one strategy is wired per field at startup; all three funnel
// into the same channel, and each guarantees at most one notification
// per discrete paste action, with the clipboard read happening no
// earlier than the action itself.
package source

import "go.gausoft.dev/pastein/internal/channel"

// Strategy is the common face of the three variants, for selection and
// diagnostics. The useful surface of each variant is its own: Wrap for
// the Interceptor, OnInsert/OnInsertURI for Insertion, Trigger for
// Manual.
type Strategy interface {
	Name() string
}

var (
	_ Strategy = (*Interceptor)(nil)
	_ Strategy = (*Insertion)(nil)
	_ Strategy = (*Manual)(nil)
)

// Select picks the conventional variant for a host capability. Hosts
// with a wrappable paste command want NewInterceptor, hosts receiving
// pushed insertions want NewInsertion, and everything else falls back
// to NewManual — the only variant with no host requirements.
func Select(ch *channel.Channel, canWrap, hasInsertion bool) Strategy {
	switch {
	case hasInsertion:
		return NewInsertion(ch)
	case canWrap:
		return NewInterceptor(ch)
	default:
		return NewManual(ch)
	}
}
