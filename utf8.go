package tilekit

// decodeLengths maps the high five bits of a UTF-8 lead byte (byte>>3) to a
// sequence length: 1-3 for ASCII and valid multi-byte leads, 4 for 4-byte
// leads, 0 for continuation bytes and other illegal leads.
var decodeLengths = [32]byte{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 3, 3, 4, 0,
}

// decodeMasks maps sequence length to the bits of the lead byte that carry
// payload (the rest is the length-encoding prefix).
var decodeMasks = [5]byte{0x00, 0x7f, 0x1f, 0x0f, 0x07}

// decodeShifts maps sequence length to the final right-shift applied after
// the four (always-read) bytes have been packed into a 21-bit accumulator.
var decodeShifts = [5]uint{0, 18, 12, 6, 0}

// DecodeRune consumes one codepoint starting at buf[0] and returns the
// codepoint plus the number of bytes to advance. It reads up to four bytes of
// buf; bytes past the end of a shorter buf are treated as zero, so buf only
// needs to be non-empty. The advance always follows the lead byte's declared
// length, even when buf is shorter than that.
//
// An illegal or continuation lead byte yields an advance of 1 and an unspecified
// codepoint; callers must still bound any decode loop by a pre-known end,
// since this function never reports an error.
func DecodeRune(buf []byte) (codepoint rune, advance int) {
	length := decodeLengths[buf[0]>>3]
	advance = int(length)
	if advance == 0 {
		advance = 1
	}

	var b1, b2, b3 byte
	if len(buf) > 1 {
		b1 = buf[1]
	}
	if len(buf) > 2 {
		b2 = buf[2]
	}
	if len(buf) > 3 {
		b3 = buf[3]
	}

	c := uint32(buf[0]&decodeMasks[length]) << 18
	c |= uint32(b1&0x3f) << 12
	c |= uint32(b2&0x3f) << 6
	c |= uint32(b3&0x3f) << 0
	c >>= decodeShifts[length]

	return rune(c), advance
}
