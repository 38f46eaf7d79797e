// Package transport defines the platform boundary of the paste pipeline.
//
// The boundary carries exactly two logical operations: a pull
// (GetClipboardContent) and a push (a paste notification with content).
// Both move ClipboardItem values — an opaque byte payload tagged with a
// MIME type. That pair is the single serialization contract crossing the
// process/platform boundary; new MIME types never change the shape.
//
// On the wire each message is one line of JSON: <json>\n. Byte payloads
// ride as base64 inside JSON strings so binary content (images) is safe
// to embed.
package transport

import "strings"

// Item is a single clipboard representation with a MIME type.
type Item struct {
	MIME string `json:"mimeType"`
	Data []byte `json:"data"` // base64 on the wire
}

// NewTextItem creates a text/plain Item from a plain string.
func NewTextItem(text string) Item {
	return Item{MIME: MIMEText, Data: []byte(text)}
}

// NewBinaryItem creates an Item from raw bytes with the given MIME type.
func NewBinaryItem(mime string, data []byte) Item {
	return Item{MIME: mime, Data: data}
}

// Content is one clipboard snapshot: zero or more items in reader order.
// An empty Content means the clipboard was empty, locked, or held only
// formats the platform reader does not expose.
type Content struct {
	Items []Item
}

// Empty reports whether the snapshot carries no items.
func (c Content) Empty() bool { return len(c.Items) == 0 }

// Common MIME types seen on real clipboards.
const (
	MIMEText = "text/plain"
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
	MIMEWebP = "image/webp"
)

// IsImageMIME reports whether mime names an image representation.
func IsImageMIME(mime string) bool { return strings.HasPrefix(mime, "image/") }

// IsTextMIME reports whether mime names a textual representation.
func IsTextMIME(mime string) bool { return strings.HasPrefix(mime, "text/") }
