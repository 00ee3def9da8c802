// Package actor serializes concurrent access to a single *sheet.Sheet
// onto one goroutine, so the network-facing domain stack (broadcast,
// cmd/cellsheetd) can be driven by many concurrent clients without
// breaking the core engine's single-threaded ownership model
// (SPEC_FULL.md §5: "the actor is the sole owner/goroutine touching
// the sheet").
package actor

import "github.com/cellgraph/spreadsheet/sheet"

// request is a closure queued onto the actor's single goroutine; done
// is closed once fn has run, so callers can block for the result.
type request struct {
	fn   func(*sheet.Sheet)
	done chan struct{}
}

// Actor owns a *sheet.Sheet exclusively: every operation against it
// runs inside the actor's goroutine, one at a time, in submission order.
type Actor struct {
	requests chan request
	stop     chan struct{}
}

// New starts the actor goroutine over a fresh sheet and returns a
// handle to it. Call Stop when done to release the goroutine.
func New() *Actor {
	a := &Actor{
		requests: make(chan request),
		stop:     make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Actor) run() {
	s := sheet.New()
	for {
		select {
		case req := <-a.requests:
			req.fn(s)
			close(req.done)
		case <-a.stop:
			return
		}
	}
}

// Do runs fn against the owned sheet on the actor's goroutine and
// blocks until it completes. Safe to call from any number of goroutines.
func (a *Actor) Do(fn func(*sheet.Sheet)) {
	req := request{fn: fn, done: make(chan struct{})}
	a.requests <- req
	<-req.done
}

// Stop terminates the actor's goroutine. Further calls to Do will
// block forever; callers must not call Stop more than once.
func (a *Actor) Stop() {
	close(a.stop)
}
