package tilekit

// stringWidth sums the pixel advance of every codepoint in text as rendered
// with font. Glyphs the font does not define contribute no width. It is
// also used to anchor horizontal alignment before drawing.
func stringWidth(h Host, font Font, text []byte) int {
	width := 0
	for i := 0; i < len(text); {
		cp, adv := DecodeRune(padForDecode(text, i))
		i += adv
		metrics, ok := h.GetGlyphMetrics(font, cp)
		if ok {
			width += metrics.XAdvance
		}
	}
	return width
}

// padForDecode returns a 4-byte view of text starting at i, zero-padded
// when fewer than 4 bytes of text remain.
func padForDecode(text []byte, i int) []byte {
	end := i + 4
	if end <= len(text) {
		return text[i:end]
	}
	var buf [4]byte
	copy(buf[:], text[i:])
	return buf[:]
}
