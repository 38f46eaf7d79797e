package source

import (
	"go.gausoft.dev/pastein/internal/channel"
	"go.gausoft.dev/pastein/internal/payload"
)

// Manual is the trigger-then-read strategy for platforms with no paste
// hook at all: the host intercepts a generic paste intent (keyboard
// shortcut, context-menu action) and calls Trigger. The clipboard is
// read only then — nothing is pre-fetched, so the content is exactly
// what the clipboard held at the moment of the action.
type Manual struct {
	ch *channel.Channel
}

// NewManual returns a Manual strategy publishing to ch.
func NewManual(ch *channel.Channel) *Manual {
	return &Manual{ch: ch}
}

func (m *Manual) Name() string { return "manual trigger + read" }

// Trigger performs one paste action: read, classify, broadcast. The
// payload is also returned so the caller can insert text into its own
// field atomically with the notification.
func (m *Manual) Trigger() payload.Payload {
	return m.ch.PasteNow()
}
