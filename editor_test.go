package tilekit

import "testing"

func press(x, y int) Event   { return Event{Kind: EventPress, X: x, Y: y} }
func release(x, y int) Event { return Event{Kind: EventRelease, X: x, Y: y} }

func TestEditIntegerAcceptsTypedValue(t *testing.T) {
	// bounds (0,0,400,200): fieldH=40; keypad cellW=100, cellH=40.
	// '7' is row0/col0 -> center (50,60). '5' is row1/col1 -> center (150,100).
	// Accept is row3/col3 -> center (350,180).
	host := newFakeHost(
		press(50, 60), release(50, 60), // '7'
		press(150, 100), release(150, 100), // '5'
		press(350, 180), release(350, 180), // accept
	)
	ctx := newTestContext(host, 800, 480, 32, 32, 32)
	style := editorStyleForTest()

	got, ok := EditInteger(ctx, NewRect(0, 0, 400, 200), style, 0, false)
	if !ok {
		t.Fatal("expected acceptance")
	}
	if got != 75 {
		t.Fatalf("got %d, want 75", got)
	}
}

func TestEditIntegerCancelReturnsOriginal(t *testing.T) {
	// Cancel is row2/col3 -> center (350,140).
	host := newFakeHost(
		press(150, 100), release(150, 100), // '5', ignored by cancel
		press(350, 140), release(350, 140), // cancel
	)
	ctx := newTestContext(host, 800, 480, 32, 32, 32)
	style := editorStyleForTest()

	got, ok := EditInteger(ctx, NewRect(0, 0, 400, 200), style, 42, false)
	if ok {
		t.Fatal("expected cancellation")
	}
	if got != 42 {
		t.Fatalf("got %d, want original value 42 on cancel", got)
	}
}

func editorStyleForTest() EditorStyle {
	s := defaultTestStyle()
	return EditorStyle{
		Field:         s,
		Key:           s,
		AcceptText:    []byte("OK"),
		CancelText:    []byte("X"),
		BackspaceText: []byte("<-"),
		ClearText:     []byte("C"),
		ShiftText:     []byte("^"),
		SpaceText:     []byte(" "),
	}
}

func TestStringEditorTruncateKeepsValidUTF8(t *testing.T) {
	host := newFakeHost()
	ctx := newTestContext(host, 800, 480, 32, 32, 51) // field + 50 keys
	e := &stringEditor{ctx: ctx, cap: 32, allowEmpty: true}
	e.buf = append(make([]byte, 0, 32), "café"...) // trailing 'é' is 2 bytes
	e.field = ctx.AddWidget(NewRect(0, 0, 100, 20), defaultTestStyle(), nil, false)
	for i := range e.keys {
		e.keys[i] = ctx.AddWidget(NewRect(0, 0, 1, 1), defaultTestStyle(), nil, true)
	}

	e.truncate()

	if string(e.buf) != "caf" {
		t.Fatalf("after truncating a 2-byte rune, buffer = %q, want %q", e.buf, "caf")
	}

	e.truncate()
	if string(e.buf) != "ca" {
		t.Fatalf("after truncating an ASCII byte, buffer = %q, want %q", e.buf, "ca")
	}
}

func TestStringEditorAppendRespectsCapacity(t *testing.T) {
	host := newFakeHost()
	ctx := newTestContext(host, 800, 480, 32, 32, 51) // field + 50 keys
	e := &stringEditor{ctx: ctx, cap: 3, allowEmpty: true}
	e.buf = append(make([]byte, 0, 3), "ab"...)
	e.field = ctx.AddWidget(NewRect(0, 0, 100, 20), defaultTestStyle(), nil, false)
	for i := range e.keys {
		e.keys[i] = ctx.AddWidget(NewRect(0, 0, 1, 1), defaultTestStyle(), nil, true)
	}

	e.appendText("xyz")
	if string(e.buf) != "abx" {
		t.Fatalf("append should stop at capacity, got %q", e.buf)
	}
}
