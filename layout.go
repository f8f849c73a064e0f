package tilekit

// LayoutGrid divides bounds into nCols x nRows equally sized cells
// separated by hSpacing/vSpacing (negative spacing is clamped to zero),
// walks them row-major, and Adds one widget per cell sharing style, text,
// and enabled. It stops once it has filled out or exhausted the grid,
// whichever comes first, and returns the number of widgets added.
//
// Degenerate input (nCols<=0, nRows<=0, or an empty bounds rect) is a
// silent no-op.
func (c *Context) LayoutGrid(bounds Rect, nCols, nRows, hSpacing, vSpacing int, style *Style, text []byte, enabled bool, out []WidgetHandle) int {
	if nCols <= 0 || nRows <= 0 || bounds.Empty() {
		return 0
	}
	if hSpacing < 0 {
		hSpacing = 0
	}
	if vSpacing < 0 {
		vSpacing = 0
	}

	cellW := (bounds.Width() - hSpacing*(nCols-1)) / nCols
	cellH := (bounds.Height() - vSpacing*(nRows-1)) / nRows

	added := 0
	for row := 0; row < nRows; row++ {
		for col := 0; col < nCols; col++ {
			if added >= len(out) {
				return added
			}
			x := bounds.X1 + col*(cellW+hSpacing)
			y := bounds.Y1 + row*(cellH+vSpacing)
			out[added] = c.AddWidget(NewRect(x, y, cellW, cellH), style, text, enabled)
			added++
		}
	}
	return added
}
