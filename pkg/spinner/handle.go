package spinner

import (
	"runtime"
	"sync"
)

// Handle is the caller's side of a running spinner. It is safe for concurrent
// use. Update and Message never wait on terminal output.
type Handle struct {
	mu      sync.RWMutex
	closed  bool
	updates chan update
	loop    *renderLoop
}

func newHandle(updates chan update, loop *renderLoop) *Handle {
	h := &Handle{updates: updates, loop: loop}

	// The render goroutine holds no reference to the handle, so a handle
	// dropped without Close still lets the loop observe the closed channel.
	runtime.SetFinalizer(h, (*Handle).shutdown)

	return h
}

// Update replaces the status shown next to the spinner. If several updates
// arrive between two frames only the last one is drawn.
func (h *Handle) Update(status string) error {
	return h.send(update{kind: updateStatus, text: status})
}

// Message prints text on its own line above the spinner. Only the last message
// queued between two frames is printed.
func (h *Handle) Message(text string) error {
	return h.send(update{kind: updateMessage, text: text})
}

// Close stops the render loop and waits for it to exit. Nothing is written to
// the output after Close returns. The returned error is the output failure
// that stopped the loop early, if there was one. Calling Close again is a
// no-op that returns the same result.
func (h *Handle) Close() error {
	h.shutdown()
	<-h.loop.done

	runtime.SetFinalizer(h, nil)

	return h.loop.err
}

func (h *Handle) send(u update) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	unsent := &UnsentError{Kind: u.kind.String(), Payload: u.text}

	if h.closed {
		return unsent
	}

	select {
	case <-h.loop.done:
		return unsent
	default:
	}

	select {
	case h.updates <- u:
		return nil
	case <-h.loop.done:
		return unsent
	}
}

func (h *Handle) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.closed {
		h.closed = true
		close(h.updates)
	}
}
