package tilekit

// fakeHost is a minimal, deterministic Host used across this package's
// tests. Its font is fixed-width: every codepoint not listed in undefinedCPs
// has an advance of fakeGlyphAdvance and a 1x1 glyph box, which keeps width/anchor
// arithmetic easy to predict in assertions.
type fakeHost struct {
	events       []Event
	eventIdx     int
	blits        []point
	fills        []Rect
	fillColors   []Color
	glyphCalls   []glyphCall
	panicCode    PanicCode
	panicked     bool
	tick         Tick
	undefinedCPs map[rune]bool
}

type point struct{ X, Y int }

type glyphCall struct {
	Dest, Src Rect
	Colors    ColorPair
}

const fakeGlyphAdvance = 6

func newFakeHost(events ...Event) *fakeHost {
	return &fakeHost{events: events}
}

func (h *fakeHost) Panic(code PanicCode) {
	h.panicked = true
	h.panicCode = code
}

func (h *fakeHost) GetMonotonicTime() Tick {
	h.tick++
	return h.tick
}

func (h *fakeHost) GetEvent(timeout Tick) (Event, bool) {
	if h.eventIdx >= len(h.events) {
		return Event{}, false
	}
	ev := h.events[h.eventIdx]
	h.eventIdx++
	return ev, true
}

func (h *fakeHost) GetFontMetrics(font Font) FontMetrics {
	return FontMetrics{Ascent: 10, Descent: 2, Center: 5, LineHeight: 12}
}

func (h *fakeHost) GetGlyphMetrics(font Font, codepoint rune) (GlyphMetrics, bool) {
	if h.undefinedCPs != nil && h.undefinedCPs[codepoint] {
		return GlyphMetrics{}, false
	}
	return GlyphMetrics{
		Codepoint: codepoint,
		Width:     1,
		Height:    1,
		XBearing:  0,
		YBearing:  0,
		XAdvance:  fakeGlyphAdvance,
	}, true
}

func (h *fakeHost) DrawGlyph(dest, src Rect, metrics GlyphMetrics, colors ColorPair) {
	h.glyphCalls = append(h.glyphCalls, glyphCall{Dest: dest, Src: src, Colors: colors})
}

func (h *fakeHost) DrawFill(dest Rect, color Color) {
	h.fills = append(h.fills, dest)
	h.fillColors = append(h.fillColors, color)
}

func (h *fakeHost) BltTile(x, y int) {
	h.blits = append(h.blits, point{x, y})
}

func defaultTestStyle() *Style {
	return &Style{
		HAlign:   AlignLeft,
		VAlign:   AlignTop,
		HPadding: 1,
		VPadding: 1,
		Colors: [numWidgetStates]ColorPair{
			Disabled: {Foreground: 0x111111, Background: 0x222222},
			Enabled:  {Foreground: 0x333333, Background: 0x444444},
			Pressed:  {Foreground: 0x555555, Background: 0x666666},
		},
	}
}

// newTestContext builds a context over freshly allocated buffers sized for
// a w x h display tiled at tw x th, with capacity widgets of room.
func newTestContext(host Host, w, h, tw, th, capacity int) *Context {
	dirty := make([]uint32, DirtyBufferSize(w, h, tw, th))
	widgets := make([]Widget, capacity)
	return NewContext(dirty, widgets, w, h, tw, th, 0xFF000000, defaultTestStyle(), host, nil)
}
