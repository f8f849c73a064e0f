package tilekit

// PanicCode identifies why the engine invoked a fatal, non-returning host
// panic. These are programming errors, never runtime conditions an
// application is expected to recover from.
type PanicCode int

const (
	PanicUndefined PanicCode = iota
	PanicDirtyBufferTooSmall
	PanicOutOfMemory
	PanicInvalidWidgetHandle
)

func (c PanicCode) String() string {
	switch c {
	case PanicDirtyBufferTooSmall:
		return "dirty buffer too small"
	case PanicOutOfMemory:
		return "widget pool out of memory"
	case PanicInvalidWidgetHandle:
		return "invalid widget handle"
	default:
		return "undefined"
	}
}

// PanicError is the value raised by a Go panic() after the host's Panic
// capability has been invoked. The host's Panic is documented as
// non-returning; raising a real Go panic afterwards guarantees callers in
// this package never fall through as though it had returned.
type PanicError struct {
	Code PanicCode
}

func (e *PanicError) Error() string {
	return "tilekit: " + e.Code.String()
}

func panicWith(h Host, code PanicCode) {
	h.Panic(code)
	panic(&PanicError{Code: code})
}

// Tick is a 16-bit monotonic time unit. Per-the-spec's own resolution of its
// tick-width open question, every reference host and the event loop use this
// single width consistently rather than mixing it with a wider quantity.
type Tick uint16

// EventKind classifies a Host-produced input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventPress
	EventRelease
)

// Event is a single input event, with X/Y valid for Press/Release in
// display coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// Color is an opaque 32-bit value; its interpretation is entirely up to the
// host.
type Color uint32

// ColorPair is the foreground/background pair used to render one widget
// state.
type ColorPair struct {
	Foreground Color
	Background Color
}

// Font is an opaque handle to a host-resident font. The engine never
// inspects it; it is only ever passed back into Host methods.
type Font any

// FontMetrics describes line-level metrics for a font.
type FontMetrics struct {
	Ascent     int
	Descent    int
	Center     int
	LineHeight int
}

// GlyphMetrics describes a single glyph, plus an opaque pointer to its
// pixel coverage data for the host's DrawGlyph to interpret.
type GlyphMetrics struct {
	Codepoint rune
	Width     int
	Height    int
	XBearing  int
	YBearing  int
	XAdvance  int
	UserData  any
}

// Host is the capability table supplied by the application. The engine owns
// no hardware: every pixel, every input event, and every font metric flows
// through this interface. Panic is the only method documented as
// non-returning from the caller's point of view.
type Host interface {
	// Panic reports a fatal programming error. Implementations should not
	// return normally; the engine raises a Go panic immediately afterwards
	// regardless, so a Host that does return is still safe.
	Panic(code PanicCode)

	// GetMonotonicTime returns the current tick count.
	GetMonotonicTime() Tick

	// GetEvent blocks up to timeout ticks waiting for an input event. It
	// returns the event and true, or a zero Event and false on timeout.
	GetEvent(timeout Tick) (Event, bool)

	// GetFontMetrics fills line-level metrics for font.
	GetFontMetrics(font Font) FontMetrics

	// GetGlyphMetrics reports whether font defines codepoint, and if so its
	// metrics and coverage data pointer.
	GetGlyphMetrics(font Font, codepoint rune) (GlyphMetrics, bool)

	// DrawGlyph rasterizes the src region of a glyph (in glyph-local
	// coordinates) into dest (in tile-buffer coordinates), using colors.
	DrawGlyph(dest, src Rect, metrics GlyphMetrics, colors ColorPair)

	// DrawFill fills dest, in the current tile back-buffer, with color.
	DrawFill(dest Rect, color Color)

	// BltTile copies the tile back-buffer onto the display at (x,y).
	BltTile(x, y int)
}
