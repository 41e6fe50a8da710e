package headless

import (
	"errors"

	"github.com/go-drift/reflex/pkg/toolkit"
)

// ErrClosed is returned by the simulation helpers once Close has been processed.
var ErrClosed = errors.New("headless: window closed")

func (t *Toolkit) enqueue(e entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	t.queue = append(t.queue, e)
	t.cond.Signal()
	return nil
}

// Awake posts payload to the wait queue. Safe from any goroutine. Payloads
// posted after the window closed are dropped.
func (t *Toolkit) Awake(payload any) {
	_ = t.enqueue(entry{kind: entryPayload, payload: payload})
}

// Wait blocks until a payload is available, running queued native events on
// the calling goroutine first. It returns ok=false once Close is reached.
func (t *Toolkit) Wait() (any, bool) {
	for {
		t.mu.Lock()
		for len(t.queue) == 0 && !t.closed {
			t.cond.Wait()
		}
		if t.closed {
			t.mu.Unlock()
			return nil, false
		}
		e := t.queue[0]
		t.queue = t.queue[1:]
		if e.kind == entryClose {
			t.closed = true
			t.queue = nil
		}
		t.mu.Unlock()

		switch e.kind {
		case entryPayload:
			return e.payload, true
		case entryNative:
			e.native()
		case entryClose:
			return nil, false
		}
	}
}

// Poll is the non-blocking form of Wait. It returns ok=false when the queue
// is drained or the window has closed.
func (t *Toolkit) Poll() (any, bool) {
	for {
		t.mu.Lock()
		if t.closed || len(t.queue) == 0 {
			t.mu.Unlock()
			return nil, false
		}
		e := t.queue[0]
		t.queue = t.queue[1:]
		if e.kind == entryClose {
			t.closed = true
			t.queue = nil
		}
		t.mu.Unlock()

		switch e.kind {
		case entryPayload:
			return e.payload, true
		case entryNative:
			e.native()
		case entryClose:
			return nil, false
		}
	}
}

// Pending reports how many entries are queued.
func (t *Toolkit) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}

// Closed reports whether Close has been processed.
func (t *Toolkit) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Fire simulates a native event on h. The handle's callback runs on the
// waiting goroutine.
func (t *Toolkit) Fire(h toolkit.Handle, reason toolkit.Reason) error {
	return t.enqueue(entry{kind: entryNative, native: func() {
		n, ok := t.nodes[h]
		if !ok || n.callback == nil {
			return
		}
		n.callback(toolkit.Event{Handle: h, Reason: reason, Item: -1})
	}})
}

// Pick simulates choosing item index of a menu, tree or browser.
func (t *Toolkit) Pick(h toolkit.Handle, index int) error {
	return t.enqueue(entry{kind: entryNative, native: func() {
		n, ok := t.nodes[h]
		if !ok || index < 0 || index >= len(n.Items) {
			return
		}
		if cb := n.Items[index].Callback; cb != nil {
			cb()
		}
		if n.callback != nil {
			n.callback(toolkit.Event{Handle: h, Reason: toolkit.ReasonSelected, Item: index})
		}
	}})
}

// Type simulates the user replacing an input's text, firing a changed event.
func (t *Toolkit) Type(h toolkit.Handle, text string) error {
	return t.Set(h, text)
}

// Set simulates the user changing h's value, firing a changed event.
func (t *Toolkit) Set(h toolkit.Handle, value any) error {
	return t.enqueue(entry{kind: entryNative, native: func() {
		n, ok := t.nodes[h]
		if !ok {
			return
		}
		n.Attrs[toolkit.AttrValue] = value
		if n.callback != nil {
			n.callback(toolkit.Event{Handle: h, Reason: toolkit.ReasonChanged, Item: -1})
		}
	}})
}

// Resize simulates the user resizing h.
func (t *Toolkit) Resize(h toolkit.Handle, r toolkit.Rect) error {
	return t.enqueue(entry{kind: entryNative, native: func() {
		if _, ok := t.nodes[h]; ok {
			t.SetGeometry(h, r)
		}
	}})
}

// Close simulates the last window closing. Wait returns ok=false when it
// reaches this entry.
func (t *Toolkit) Close() {
	_ = t.enqueue(entry{kind: entryClose})
}
