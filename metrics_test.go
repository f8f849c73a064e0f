package tilekit

import "testing"

func TestStringWidthSumsAdvances(t *testing.T) {
	host := newFakeHost()
	got := stringWidth(host, nil, []byte("abc"))
	want := 3 * fakeGlyphAdvance
	if got != want {
		t.Fatalf("width = %d, want %d", got, want)
	}
}

func TestStringWidthSkipsMissingGlyphs(t *testing.T) {
	host := newFakeHost()
	host.undefinedCPs = map[rune]bool{'b': true}
	got := stringWidth(host, nil, []byte("abc"))
	want := 2 * fakeGlyphAdvance
	if got != want {
		t.Fatalf("width = %d, want %d (missing glyph should contribute nothing)", got, want)
	}
}

func TestStringWidthEmpty(t *testing.T) {
	host := newFakeHost()
	if got := stringWidth(host, nil, nil); got != 0 {
		t.Fatalf("empty text width = %d, want 0", got)
	}
}
