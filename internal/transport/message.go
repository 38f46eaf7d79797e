package transport

import (
	"encoding/json"
	"fmt"
)

// Type identifies the kind of message crossing the platform boundary.
type Type string

const (
	// TypeGetContent asks the platform side for the current clipboard.
	TypeGetContent Type = "GET_CONTENT"
	// TypeContent answers a GET_CONTENT request.
	TypeContent Type = "CONTENT"
	// TypePaste is the platform-initiated push: a paste action happened
	// and this is what the clipboard held at that moment.
	TypePaste Type = "PASTE"
	// TypeVersion asks for / answers with the platform version string.
	TypeVersion Type = "VERSION"
	// TypeError reports a platform-side failure. Receivers treat it the
	// same as an empty clipboard; errors never cross the boundary upward.
	TypeError Type = "ERROR"
)

// Message is the top-level wire envelope.
type Message struct {
	Type Type `json:"type"`

	// CONTENT / PASTE — the clipboard items, one per representation.
	Items []Item `json:"items,omitempty"`

	// VERSION response.
	Version string `json:"version,omitempty"`

	// ERROR.
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}

// ContentOf returns the items of a CONTENT or PASTE message as a snapshot.
func (m *Message) ContentOf() Content {
	return Content{Items: m.Items}
}
