package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestReflexErrorString(t *testing.T) {
	err := &ReflexError{
		Op:   "widgets.Button.View",
		Kind: KindToolkit,
		Err:  stderrors.New("out of handles"),
	}
	want := "widgets.Button.View [toolkit]: out of handles"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReflexErrorWithHandle(t *testing.T) {
	err := &ReflexError{
		Op:     "core.ReconcileChildren",
		Kind:   KindToolkit,
		Handle: 42,
		Err:    stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "handle=42") {
		t.Errorf("error string %q should contain handle=42", got)
	}
}

func TestReflexErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &ReflexError{Op: "x", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindToolkit, "toolkit"},
		{KindMismatch, "mismatch"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
		{KindState, "state"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "engine.Step"
	if got, want := err.Error(), "panic in engine.Step: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestMismatchErrorString(t *testing.T) {
	err := &MismatchError{Op: "widgets.Button.Update", Want: "Button", Got: "Box"}
	if got, want := err.Error(), "widgets.Button.Update: cannot patch Button with Box"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *ReflexError
	SetHandler(&testHandler{onError: func(err *ReflexError) { captured = err }})
	defer SetHandler(nil)

	Report(&ReflexError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverFatal_ReflexErrorBecomesReturn(t *testing.T) {
	var reported *ReflexError
	SetHandler(&testHandler{onError: func(err *ReflexError) { reported = err }})
	defer SetHandler(nil)

	run := func() (err error) {
		defer RecoverFatal("test.run", &err)
		panic(Toolkit("test.create", 7, stderrors.New("no display")))
	}
	err := run()
	if err == nil {
		t.Fatal("expected an error")
	}
	var rerr *ReflexError
	if !stderrors.As(err, &rerr) || rerr.Kind != KindToolkit || rerr.Handle != 7 {
		t.Errorf("unexpected error %#v", err)
	}
	if reported == nil {
		t.Error("expected fatal error to be reported")
	}
}

func TestRecoverFatal_OtherPanicsPropagate(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	defer func() {
		if r := recover(); r != "app bug" {
			t.Errorf("recovered %v, want app bug", r)
		}
		if captured == nil {
			t.Error("expected panic to be reported before re-raising")
		}
	}()
	var err error
	func() {
		defer RecoverFatal("test.run", &err)
		panic("app bug")
	}()
}

func TestMismatchPanics(t *testing.T) {
	defer func() {
		r := recover()
		rerr, ok := r.(*ReflexError)
		if !ok || rerr.Kind != KindMismatch {
			t.Fatalf("recovered %#v, want KindMismatch ReflexError", r)
		}
		var m *MismatchError
		if !stderrors.As(rerr, &m) || m.Want != "Flex" || m.Got != "Pack" {
			t.Errorf("unexpected mismatch %#v", rerr.Err)
		}
	}()
	Mismatch("widgets.Group.Update", "Flex", "Pack")
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler_Verbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Out: &buf}
	h.HandleError(&ReflexError{Op: "op", Kind: KindToolkit, Handle: 3, Err: stderrors.New("x"), StackTrace: "frame"})
	out := buf.String()
	for _, want := range []string{"[reflex error] op [toolkit]", "handle=3", "Stack trace:\nframe"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*ReflexError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ReflexError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
