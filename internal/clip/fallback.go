package clip

import (
	"fmt"

	"github.com/atotto/clipboard"

	"go.gausoft.dev/pastein/internal/transport"
)

// TextFallback is a last-resort clipboard reader used when the primary
// transport errors: it can only see the text representation, but it
// works without a running event pipeline. Backed by atotto/clipboard
// (xclip/xsel, pbpaste, or the Win32 text API depending on platform).
type TextFallback struct{}

// GetClipboardContent implements transport.Transport with a text-only read.
func (TextFallback) GetClipboardContent() (transport.Content, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return transport.Content{}, fmt.Errorf("text fallback: %w", err)
	}
	if text == "" {
		return transport.Content{}, nil
	}
	return transport.Content{Items: []transport.Item{transport.NewTextItem(text)}}, nil
}
