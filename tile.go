package tilekit

import "math/bits"

func (c *Context) displayRect() Rect {
	return NewRect(0, 0, c.displayW, c.displayH)
}

// markRect marks every tile overlapping rect (after clamping to the
// display) as dirty. Already-dirty bits are left as-is.
func (c *Context) markRect(rect Rect) {
	rect = rect.Intersect(c.displayRect())
	if rect.Empty() {
		return
	}

	tx1 := rect.X1 / c.tileW
	ty1 := rect.Y1 / c.tileH
	tx2 := ceilDiv(rect.X2, c.tileW)
	ty2 := ceilDiv(rect.Y2, c.tileH)
	if tx2 <= tx1 || ty2 <= ty1 {
		return
	}

	leftMask := ^uint32(0) >> uint(tx1%32)
	rightMask := ^uint32(0) << uint(31-((tx2-1)%32))

	leftWord := tx1 / 32
	rightWord := (tx2 - 1) / 32

	for r := ty1; r < ty2; r++ {
		rowBase := r * c.dirtyPitch
		if leftWord == rightWord {
			c.dirty[rowBase+leftWord] |= leftMask & rightMask
			continue
		}
		c.dirty[rowBase+leftWord] |= leftMask
		for w := leftWord + 1; w < rightWord; w++ {
			c.dirty[rowBase+w] = ^uint32(0)
		}
		c.dirty[rowBase+rightWord] |= rightMask
	}
}

// markAll marks every tile of the display dirty.
func (c *Context) markAll() {
	c.markRect(c.displayRect())
}

// clean visits every dirty tile exactly once: fills its back-buffer region
// with the background color, draws every overlapping widget into it in
// insertion order, and blits it to the display. Each bitmap word is
// snapshotted and zeroed before its set bits are consumed, so a tile
// dirtied again while this pass is running is picked up on the next Clean,
// never re-visited within this one.
func (c *Context) clean() {
	tileRectLocal := NewRect(0, 0, c.tileW, c.tileH)

	for row := 0; row < c.dirtyRows; row++ {
		for col := 0; col < c.dirtyPitch; col++ {
			idx := row*c.dirtyPitch + col
			word := c.dirty[idx]
			if word == 0 {
				continue
			}
			c.dirty[idx] = 0

			wordXPixel := col * 32 * c.tileW
			rowYPixel := row * c.tileH

			for word != 0 {
				clz := bits.LeadingZeros32(word)
				word &^= uint32(1) << uint(31-clz)

				ox := wordXPixel + clz*c.tileW
				oy := rowYPixel

				c.host.DrawFill(tileRectLocal, c.background)

				c.draw = drawState{
					tx:   -ox,
					ty:   -oy,
					clip: tileRectLocal,
				}

				tileRectDisplay := NewRect(ox, oy, c.tileW, c.tileH)
				for i := 0; i < c.widgetTop; i++ {
					w := &c.widgets[i]
					if w.Rect.Overlaps(tileRectDisplay) {
						c.drawWidget(w)
					}
				}

				c.draw = drawState{}
				c.host.BltTile(ox, oy)
			}
		}
	}
}
