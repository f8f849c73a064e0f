package tilekit

import "testing"

func TestFillClipsToClip(t *testing.T) {
	host := newFakeHost()
	ctx := newTestContext(host, 800, 480, 32, 32, 4)
	ctx.draw = drawState{tx: 0, ty: 0, clip: NewRect(0, 0, 10, 10)}

	ctx.fill(NewRect(5, 5, 20, 20), 0xABCDEF)
	if len(host.fills) != 1 {
		t.Fatalf("expected one fill call, got %d", len(host.fills))
	}
	want := NewRect(5, 5, 5, 5) // clipped to (0,0,10,10)
	if host.fills[0] != want {
		t.Fatalf("fill rect = %+v, want %+v", host.fills[0], want)
	}
}

func TestFillSkipsWhenFullyClipped(t *testing.T) {
	host := newFakeHost()
	ctx := newTestContext(host, 800, 480, 32, 32, 4)
	ctx.draw = drawState{clip: NewRect(0, 0, 10, 10)}

	ctx.fill(NewRect(100, 100, 10, 10), 1)
	if len(host.fills) != 0 {
		t.Fatalf("expected no fill call for a fully clipped rect, got %d", len(host.fills))
	}
}

func TestDrawWidgetRejectsEmptyRect(t *testing.T) {
	host := newFakeHost()
	ctx := newTestContext(host, 800, 480, 32, 32, 4)
	ctx.draw = drawState{clip: NewRect(0, 0, 800, 480)}

	w := Widget{Style: defaultTestStyle(), Rect: EmptyRect()}
	ctx.drawWidget(&w)
	if len(host.fills) != 0 {
		t.Fatal("an empty-rect widget should never be drawn")
	}
}

func TestDrawWidgetSavesAndRestoresDrawState(t *testing.T) {
	host := newFakeHost()
	ctx := newTestContext(host, 800, 480, 32, 32, 4)
	outer := drawState{tx: -1, ty: -2, clip: NewRect(0, 0, 800, 480)}
	ctx.draw = outer

	w := Widget{Style: defaultTestStyle(), Rect: NewRect(10, 10, 40, 40), Text: []byte("hi")}
	ctx.drawWidget(&w)

	if ctx.draw != outer {
		t.Fatalf("draw state leaked out of drawWidget: got %+v, want %+v", ctx.draw, outer)
	}
}

func TestTextAnchorAlignment(t *testing.T) {
	r := NewRect(0, 0, 20, 10)
	x, y := textAnchor(r, AlignCenter, AlignMiddle)
	if x != 10 || y != 5 {
		t.Fatalf("center/middle anchor = (%d,%d), want (10,5)", x, y)
	}
	x, y = textAnchor(r, AlignRight, AlignBottom)
	if x != 19 || y != 9 {
		t.Fatalf("right/bottom anchor = (%d,%d), want (19,9)", x, y)
	}
	x, y = textAnchor(r, AlignLeft, AlignTop)
	if x != 0 || y != 0 {
		t.Fatalf("left/top anchor = (%d,%d), want (0,0)", x, y)
	}
}
