package browser

import "github.com/phanxgames/sapling"

// Message is something the network side reports to the frame loop.
type Message interface {
	message()
}

// PageLoaded carries a parsed page ready to be shown.
type PageLoaded struct {
	Page sapling.Page
}

// Status carries a one-line status text for the overlay.
type Status struct {
	Text string
}

// LoadFailed reports a request that could not be served.
type LoadFailed struct {
	URL string
	Err error
}

func (PageLoaded) message() {}
func (Status) message()     {}
func (LoadFailed) message() {}

// Inbox is the queue between producers running on other goroutines and the
// single frame loop that owns the scene. Producers Post; the frame loop
// calls Drain once per frame.
type Inbox struct {
	ch chan Message
}

// NewInbox creates an inbox buffering up to size messages.
func NewInbox(size int) *Inbox {
	return &Inbox{ch: make(chan Message, max(size, 1))}
}

// Post queues m without blocking. It reports false when the inbox is full
// and m was dropped.
func (in *Inbox) Post(m Message) bool {
	select {
	case in.ch <- m:
		return true
	default:
		return false
	}
}

// Drain calls fn for every queued message without waiting for more.
func (in *Inbox) Drain(fn func(Message)) int {
	n := 0
	for {
		select {
		case m := <-in.ch:
			fn(m)
			n++
		default:
			return n
		}
	}
}

// Len returns the number of queued messages.
func (in *Inbox) Len() int {
	return len(in.ch)
}
