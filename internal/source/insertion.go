package source

import (
	"log/slog"
	"os"
	"strings"

	"go.gausoft.dev/pastein/internal/channel"
	"go.gausoft.dev/pastein/internal/transport"
)

// Insertion adapts push-based content delivery: the platform hands the
// inserted content directly to the input, either as inline bytes or as
// a URI referencing a file. One delivery is one paste action and maps
// to exactly one notification.
type Insertion struct {
	ch *channel.Channel

	// readFile is swappable for tests; os.ReadFile otherwise.
	readFile func(string) ([]byte, error)
}

// NewInsertion returns an Insertion publishing to ch.
func NewInsertion(ch *channel.Channel) *Insertion {
	return &Insertion{ch: ch, readFile: os.ReadFile}
}

func (s *Insertion) Name() string { return "content-insertion callback" }

// OnInsert handles an insertion delivered with inline bytes.
func (s *Insertion) OnInsert(items ...transport.Item) {
	s.ch.OnPasteDetected(transport.Content{Items: items})
}

// OnInsertURI handles an insertion delivered as a content URI: the
// referenced resource is read before proceeding, since downstream only
// understands bytes. An unreadable resource degrades to an empty
// snapshot, which classifies as an unsupported paste.
func (s *Insertion) OnInsertURI(uri, mime string) {
	data, err := s.readFile(strings.TrimPrefix(uri, "file://"))
	if err != nil {
		slog.Warn("inserted resource unreadable", "uri", uri, "err", err)
		s.ch.OnPasteDetected(transport.Content{})
		return
	}
	s.ch.OnPasteDetected(transport.Content{
		Items: []transport.Item{transport.NewBinaryItem(mime, data)},
	})
}
