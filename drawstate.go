package tilekit

// pushDrawState saves the current draw state so a nested draw can freely
// mutate translation/clip and restore it on exit.
func (c *Context) pushDrawState() {
	c.drawSave = c.draw
}

func (c *Context) popDrawState() {
	c.draw = c.drawSave
}

// fill translates rect by the current translation, intersects with the
// current clip, and if non-empty asks the host to fill it in the tile
// back-buffer.
func (c *Context) fill(rect Rect, color Color) {
	r := rect.Translate(c.draw.tx, c.draw.ty).Intersect(c.draw.clip)
	if r.Empty() {
		return
	}
	c.host.DrawFill(r, color)
}

// glyph draws one glyph at (x,y) in the current translation/clip, clipping
// both the destination and the source region of the glyph bitmap to match.
func (c *Context) glyph(x, y int, metrics GlyphMetrics, colors ColorPair) {
	dx := x + c.draw.tx + metrics.XBearing
	dy := y + c.draw.ty - metrics.YBearing
	dest := NewRect(dx, dy, metrics.Width, metrics.Height)
	dest = dest.Intersect(c.draw.clip)
	if dest.Empty() {
		return
	}
	src := Rect{
		X1: dest.X1 - dx,
		Y1: dest.Y1 - dy,
		X2: dest.X1 - dx + dest.Width(),
		Y2: dest.Y1 - dy + dest.Height(),
	}
	if src.Empty() {
		return
	}
	c.host.DrawGlyph(dest, src, metrics, colors)
}

// text renders text at (x,y) using font and colors, honoring horizontal and
// vertical alignment. Missing glyphs are skipped silently and contribute no
// advance.
func (c *Context) text(x, y int, halign HAlign, valign VAlign, text []byte, font Font, colors ColorPair) {
	fm := c.host.GetFontMetrics(font)
	width := stringWidth(c.host, font, text)

	switch halign {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}
	switch valign {
	case AlignTop:
		y += fm.Ascent
	case AlignMiddle:
		y += fm.Center
	case AlignBottom:
		y -= fm.Descent
	}

	for i := 0; i < len(text); {
		cp, adv := DecodeRune(padForDecode(text, i))
		i += adv
		metrics, ok := c.host.GetGlyphMetrics(font, cp)
		if !ok {
			continue
		}
		c.glyph(x, y, metrics, colors)
		x += metrics.XAdvance
	}
}

// drawWidget renders one widget: background fill, then (if the padded inner
// rect is non-empty) the widget's text clipped to that inner rect. Draw
// state is saved on entry and restored on exit.
func (c *Context) drawWidget(w *Widget) {
	if w.Rect.Empty() {
		return
	}
	style := w.Style
	colors := style.Colors[w.State]

	c.fill(w.Rect, colors.Background)

	inner := Rect{
		X1: w.Rect.X1 + style.HPadding,
		Y1: w.Rect.Y1 + style.VPadding,
		X2: w.Rect.X2 - style.HPadding,
		Y2: w.Rect.Y2 - style.VPadding,
	}
	if inner.Empty() {
		return
	}

	c.pushDrawState()
	c.draw.clip = c.draw.clip.Intersect(inner.Translate(c.draw.tx, c.draw.ty))

	anchorX, anchorY := textAnchor(inner, style.HAlign, style.VAlign)
	c.text(anchorX, anchorY, style.HAlign, style.VAlign, w.Text, style.Font, colors)

	c.popDrawState()
}

// textAnchor computes the (x,y) anchor point for text inside rect given its
// alignment: center maps to the midpoint, right/bottom map to the last
// valid pixel coordinate, left/top map to the origin.
func textAnchor(rect Rect, halign HAlign, valign VAlign) (x, y int) {
	switch halign {
	case AlignCenter:
		x = (rect.X1 + rect.X2) / 2
	case AlignRight:
		x = rect.X2 - 1
	default:
		x = rect.X1
	}
	switch valign {
	case AlignMiddle:
		y = (rect.Y1 + rect.Y2) / 2
	case AlignBottom:
		y = rect.Y2 - 1
	default:
		y = rect.Y1
	}
	return x, y
}
