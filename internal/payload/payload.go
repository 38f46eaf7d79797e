// Package payload defines the normalized result of classifying one
// clipboard snapshot, and the pure classification function itself.
//
// A Payload is a closed sum: exactly one of Text, Image, FileImage or
// Unsupported. Equality is structural and order-sensitive — two image
// payloads are equal only if their (bytes, MIME) sequences match in order.
package payload

import (
	"bytes"

	"go.gausoft.dev/pastein/internal/transport"
)

// Kind is the coarse category of a payload, used for filtering.
type Kind string

const (
	KindText        Kind = "text"
	KindImage       Kind = "image"
	KindUnsupported Kind = "unsupported"
)

// Payload is the normalized, immutable result of classification.
// The set of implementations is closed: Text, Image, FileImage, Unsupported.
type Payload interface {
	Kind() Kind
	Equal(other Payload) bool

	sealed()
}

// Text is a plain UTF-8 text paste.
type Text struct {
	Text string
}

func (Text) Kind() Kind { return KindText }
func (Text) sealed()    {}

func (p Text) Equal(other Payload) bool {
	o, ok := other.(Text)
	return ok && o.Text == p.Text
}

// Image carries raw image bytes, one item per clipboard representation,
// in reader order.
type Image struct {
	Items []transport.Item
}

func (Image) Kind() Kind { return KindImage }
func (Image) sealed()    {}

func (p Image) Equal(other Payload) bool {
	o, ok := other.(Image)
	if !ok || len(o.Items) != len(p.Items) {
		return false
	}
	for i, it := range p.Items {
		if it.MIME != o.Items[i].MIME || !bytes.Equal(it.Data, o.Items[i].Data) {
			return false
		}
	}
	return true
}

// FileImage is the file-backed variant of Image: bytes have been written
// to temp files and only the paths travel. URIs and MIMETypes are
// parallel sequences of equal length.
type FileImage struct {
	URIs      []string
	MIMETypes []string
}

func (FileImage) Kind() Kind { return KindImage }
func (FileImage) sealed()    {}

func (p FileImage) Equal(other Payload) bool {
	o, ok := other.(FileImage)
	if !ok || len(o.URIs) != len(p.URIs) || len(o.MIMETypes) != len(p.MIMETypes) {
		return false
	}
	for i, u := range p.URIs {
		if u != o.URIs[i] {
			return false
		}
	}
	for i, m := range p.MIMETypes {
		if m != o.MIMETypes[i] {
			return false
		}
	}
	return true
}

// Unsupported is the payload for pastes the pipeline cannot represent:
// empty clipboard, undecodable content, or a failed conversion. It
// carries no data.
type Unsupported struct{}

func (Unsupported) Kind() Kind { return KindUnsupported }
func (Unsupported) sealed()    {}

func (Unsupported) Equal(other Payload) bool {
	_, ok := other.(Unsupported)
	return ok
}
