package core

import "github.com/go-drift/reflex/pkg/toolkit"

// Message is an application-defined value consumed by the update function.
// The core never inspects it.
type Message = any

// Thunk computes a Message. It is the payload posted to the UI thread.
type Thunk func() Message

// Emit returns a Thunk that always yields msg.
func Emit(msg Message) Thunk {
	return func() Message { return msg }
}

// Trigger is the message-producing closure attached to a triggerable widget.
// Triggers are compared by identity: every view rebuild produces new ones.
type Trigger struct {
	thunk Thunk
}

// NewTrigger wraps fn. A nil fn yields a nil Trigger.
func NewTrigger(fn Thunk) *Trigger {
	if fn == nil {
		return nil
	}
	return &Trigger{thunk: fn}
}

// Thunk returns the wrapped closure.
func (t *Trigger) Thunk() Thunk {
	if t == nil {
		return nil
	}
	return t.thunk
}

// Fire posts the trigger's thunk to the UI thread. It never evaluates the
// thunk itself.
func (t *Trigger) Fire(tk toolkit.Toolkit) {
	if t == nil || t.thunk == nil {
		return
	}
	tk.Awake(t.thunk)
}

// SwapTrigger moves *cur to next. The live callback reads *cur when it
// fires, so replacing one trigger with another costs no native call; only a
// presence change registers (cb) or detaches (nil) the handle's callback.
func SwapTrigger(tk toolkit.Toolkit, h toolkit.Handle, cur **Trigger, next *Trigger, cb toolkit.Callback) {
	had := *cur != nil
	*cur = next
	switch {
	case !had && next != nil:
		tk.SetCallback(h, cb)
	case had && next == nil:
		tk.SetCallback(h, nil)
	}
}
