package tilekit

// WidgetHandle is a stable index into the widget pool. It remains valid
// until the next bulk delete.
type WidgetHandle int

const invalidHandle WidgetHandle = -1

// WidgetCallback is invoked when a widget is triggered (a Release lands on
// the same widget that received the preceding Press).
type WidgetCallback func(ctx *Context, handle WidgetHandle, userData any)

// Widget is one entry in the widget pool.
type Widget struct {
	Style    *Style
	Text     []byte
	State    WidgetState
	Rect     Rect
	Callback WidgetCallback
	UserData any
	Metadata any
}

func (c *Context) resolveStyle(style *Style) *Style {
	if style == nil {
		return c.defaultStyle
	}
	return style
}

// AddWidget appends a new widget to the pool and marks its rect dirty.
// Panics with PanicOutOfMemory (via host) if the pool is full.
func (c *Context) AddWidget(rect Rect, style *Style, text []byte, enabled bool) WidgetHandle {
	if c.widgetTop >= len(c.widgets) {
		panicWith(c.host, PanicOutOfMemory)
	}

	state := Disabled
	if enabled {
		state = Enabled
	}

	h := WidgetHandle(c.widgetTop)
	c.widgets[c.widgetTop] = Widget{
		Style: c.resolveStyle(style),
		Text:  text,
		State: state,
		Rect:  rect,
	}
	c.widgetTop++
	c.markRect(rect)
	return h
}

// BulkDeleteWidgets resets the pool to empty, clears the pressed widget, and
// marks the entire display dirty. It is the only way widgets are destroyed.
func (c *Context) BulkDeleteWidgets() {
	c.widgetTop = 0
	c.pressed = invalidHandle
	c.markAll()
}

func (c *Context) widget(h WidgetHandle) *Widget {
	if h < 0 || int(h) >= c.widgetTop {
		panicWith(c.host, PanicInvalidWidgetHandle)
	}
	return &c.widgets[h]
}

// ForceRedrawWidget marks a widget's current rect dirty without changing
// anything about it.
func (c *Context) ForceRedrawWidget(h WidgetHandle) {
	c.markRect(c.widget(h).Rect)
}

// SetWidgetBounds marks the old rect dirty, assigns the new bounds, and
// marks the new rect dirty.
func (c *Context) SetWidgetBounds(h WidgetHandle, rect Rect) {
	w := c.widget(h)
	c.markRect(w.Rect)
	w.Rect = rect
	c.markRect(w.Rect)
}

// GetWidgetBounds returns a widget's current rect.
func (c *Context) GetWidgetBounds(h WidgetHandle) Rect {
	return c.widget(h).Rect
}

// SetWidgetStyle resolves a nil style to the context default, no-ops if
// unchanged, else assigns and marks dirty.
func (c *Context) SetWidgetStyle(h WidgetHandle, style *Style) {
	w := c.widget(h)
	style = c.resolveStyle(style)
	if w.Style == style {
		return
	}
	w.Style = style
	c.markRect(w.Rect)
}

// GetWidgetStyle returns a widget's current style.
func (c *Context) GetWidgetStyle(h WidgetHandle) *Style {
	return c.widget(h).Style
}

// SetWidgetText treats a nil slice as empty, no-ops if the new text is
// bytewise equal to the current text, else assigns and marks dirty.
func (c *Context) SetWidgetText(h WidgetHandle, text []byte) {
	w := c.widget(h)
	if bytesEqual(w.Text, text) {
		return
	}
	w.Text = text
	c.markRect(w.Rect)
}

// GetWidgetText returns a widget's current text.
func (c *Context) GetWidgetText(h WidgetHandle) []byte {
	return c.widget(h).Text
}

// SetWidgetEnabled flips a widget between Disabled and Enabled; it is a
// no-op if the widget is already in the requested state, and it never
// touches a Pressed widget.
func (c *Context) SetWidgetEnabled(h WidgetHandle, enabled bool) {
	w := c.widget(h)
	want := Disabled
	if enabled {
		want = Enabled
	}
	if w.State == Pressed || w.State == want {
		return
	}
	w.State = want
	c.markRect(w.Rect)
}

// GetWidgetEnabled reports whether a widget is Enabled or Pressed (i.e. not
// Disabled).
func (c *Context) GetWidgetEnabled(h WidgetHandle) bool {
	return c.widget(h).State != Disabled
}

// SetWidgetCallback assigns a widget's trigger callback and user pointer.
func (c *Context) SetWidgetCallback(h WidgetHandle, cb WidgetCallback, userData any) {
	w := c.widget(h)
	w.Callback = cb
	w.UserData = userData
}

// SetWidgetMetadata assigns opaque, application-owned metadata to a widget.
func (c *Context) SetWidgetMetadata(h WidgetHandle, metadata any) {
	c.widget(h).Metadata = metadata
}

// GetWidgetMetadata returns a widget's metadata.
func (c *Context) GetWidgetMetadata(h WidgetHandle) any {
	return c.widget(h).Metadata
}

// hitTest scans the pool from most-recently-inserted toward the first,
// returning the first whose rect contains the point. Returns invalidHandle
// if none match; a widget with an empty rect is never a hit.
func (c *Context) hitTest(x, y int) WidgetHandle {
	for i := c.widgetTop - 1; i >= 0; i-- {
		w := &c.widgets[i]
		if !w.Rect.Empty() && w.Rect.ContainsPoint(x, y) {
			return WidgetHandle(i)
		}
	}
	return invalidHandle
}

// setPressed returns any previously pressed widget to Enabled (marking it
// dirty), then stores and marks dirty the new pressed widget, if any.
func (c *Context) setPressed(h WidgetHandle) {
	if c.pressed != invalidHandle {
		prev := &c.widgets[c.pressed]
		prev.State = Enabled
		c.markRect(prev.Rect)
	}
	c.pressed = h
	if h != invalidHandle {
		w := &c.widgets[h]
		w.State = Pressed
		c.markRect(w.Rect)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
