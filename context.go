package tilekit

// drawState is the translation/clip pair applied by every drawing
// primitive. Widget draw pushes one snapshot on entry and pops it on exit,
// so nested draws (and any future composite widgets) cannot leak clip or
// translation into their caller.
type drawState struct {
	tx, ty int
	clip   Rect
}

// Context owns every buffer and every piece of mutable state the engine
// touches: the dirty bitmap, the widget pool, display geometry, the
// capability table, the current draw state, and the event-loop run/quit
// bookkeeping. The dirty bitmap and the widget pool are supplied by the
// caller and borrowed for the context's lifetime; the Context value itself
// is allocated by NewContext, not supplied by the caller.
type Context struct {
	dirty      []uint32
	dirtyPitch int // words per row
	dirtyCols  int // tile columns
	dirtyRows  int // tile rows

	widgets   []Widget
	widgetTop int

	displayW, displayH int
	tileW, tileH       int

	background   Color
	defaultStyle *Style

	host     Host
	userData any

	draw     drawState
	drawSave drawState

	quitFlag   bool
	runFlag    *bool
	lastResult int
	pressed    WidgetHandle
	needClean  bool
}

// DirtyBufferSize returns the number of uint32 words a dirty bitmap for a
// display of size w x h tiled at tw x th must provide, per the engine's
// fixed row-major, word-padded layout.
func DirtyBufferSize(w, h, tw, th int) int {
	cols := ceilDiv(w, tw)
	rows := ceilDiv(h, th)
	pitch := ceilDiv(cols, 32)
	return pitch * rows
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// NewContext initializes a Context over caller-supplied buffers. dirtyBuf
// must be at least DirtyBufferSize(displayW, displayH, tileW, tileH) words
// long; widgetBuf's length is the widget pool's capacity. Panics with
// PanicDirtyBufferTooSmall (via host) if dirtyBuf is undersized.
func NewContext(
	dirtyBuf []uint32,
	widgetBuf []Widget,
	displayW, displayH, tileW, tileH int,
	background Color,
	defaultStyle *Style,
	host Host,
	userData any,
) *Context {
	cols := ceilDiv(displayW, tileW)
	rows := ceilDiv(displayH, tileH)
	pitch := ceilDiv(cols, 32)
	required := pitch * rows

	if len(dirtyBuf) < required {
		panicWith(host, PanicDirtyBufferTooSmall)
	}

	ctx := &Context{
		dirty:        dirtyBuf,
		dirtyPitch:   pitch,
		dirtyCols:    cols,
		dirtyRows:    rows,
		widgets:      widgetBuf,
		widgetTop:    0,
		displayW:     displayW,
		displayH:     displayH,
		tileW:        tileW,
		tileH:        tileH,
		background:   background,
		defaultStyle: defaultStyle,
		host:         host,
		userData:     userData,
		pressed:      invalidHandle,
	}
	ctx.markAll()
	return ctx
}

// UserData returns the opaque user pointer supplied to NewContext.
func (c *Context) UserData() any { return c.userData }

// Host returns the capability table this context was built with.
func (c *Context) Host() Host { return c.host }
