package transport

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Transport is the pull side of the platform boundary: "read the
// clipboard now". Implementations never block indefinitely; on failure
// they return an error and let the caller degrade (the pipeline maps
// every transport error to an unsupported paste, never a crash).
type Transport interface {
	GetClipboardContent() (Content, error)
}

// PasteFunc receives platform-initiated paste notifications together
// with the clipboard content captured at the moment of the paste.
type PasteFunc func(Content)

// ErrClosed is returned by Remote operations after the connection is gone.
var ErrClosed = errors.New("transport closed")

const requestTimeout = 3 * time.Second

// Remote is a Transport backed by a framed connection to an
// out-of-process platform helper. It multiplexes pull responses and
// push notifications over the one connection: PASTE messages go to the
// registered PasteFunc, CONTENT/ERROR messages answer the single
// outstanding GET_CONTENT request.
type Remote struct {
	conn    *Conn
	onPaste PasteFunc

	reqMu   sync.Mutex // serialises GET_CONTENT requests
	pending chan *Message

	closeOnce sync.Once
	closed    chan struct{}
}

// NewRemote wraps conn and starts the read loop. onPaste may be nil if
// the caller only ever pulls.
func NewRemote(conn *Conn, onPaste PasteFunc) *Remote {
	r := &Remote{
		conn:    conn,
		onPaste: onPaste,
		pending: make(chan *Message, 1),
		closed:  make(chan struct{}),
	}
	go r.readLoop()
	return r
}

func (r *Remote) readLoop() {
	for {
		msg, err := r.conn.ReadMsg()
		if err != nil {
			r.Close()
			return
		}
		switch msg.Type {
		case TypePaste:
			if r.onPaste != nil {
				r.onPaste(msg.ContentOf())
			}
		case TypeContent, TypeError:
			select {
			case r.pending <- msg:
			default:
				// No request outstanding; stale response, drop it.
			}
		default:
			// Unknown types are ignored so the shape can grow.
		}
	}
}

// GetClipboardContent implements Transport over the remote helper.
func (r *Remote) GetClipboardContent() (Content, error) {
	r.reqMu.Lock()
	defer r.reqMu.Unlock()

	select {
	case <-r.closed:
		return Content{}, ErrClosed
	default:
	}

	// Drain any stale response left behind by a timed-out request.
	select {
	case <-r.pending:
	default:
	}

	if err := r.conn.WriteMsg(&Message{Type: TypeGetContent}); err != nil {
		return Content{}, fmt.Errorf("get content: %w", err)
	}

	select {
	case msg := <-r.pending:
		if msg.Type == TypeError {
			return Content{}, fmt.Errorf("platform: %s", msg.Error)
		}
		return msg.ContentOf(), nil
	case <-r.closed:
		return Content{}, ErrClosed
	case <-time.After(requestTimeout):
		return Content{}, errors.New("get content: timeout")
	}
}

// Close tears down the connection. Idempotent.
func (r *Remote) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)
		_ = r.conn.Close()
	})
}
