package payload

import (
	"unicode/utf8"

	"go.gausoft.dev/pastein/internal/transport"
)

// Classify maps one clipboard snapshot to a Payload. It is pure and
// deterministic:
//
//  1. Any image item present → Image carrying all image items, in order.
//     Images win over a simultaneous text fallback (an image copy often
//     carries a text representation too; that fallback is discarded).
//  2. Otherwise the first text item, if it decodes as UTF-8 → Text.
//  3. Otherwise → Unsupported (also the result for an empty snapshot).
func Classify(c transport.Content) Payload {
	var images []transport.Item
	var firstText *transport.Item

	for i, it := range c.Items {
		switch {
		case transport.IsImageMIME(it.MIME):
			images = append(images, it)
		case transport.IsTextMIME(it.MIME):
			if firstText == nil {
				firstText = &c.Items[i]
			}
		}
	}

	if len(images) > 0 {
		return Image{Items: images}
	}
	if firstText != nil && utf8.Valid(firstText.Data) {
		return Text{Text: string(firstText.Data)}
	}
	return Unsupported{}
}
