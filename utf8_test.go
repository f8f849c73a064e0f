package tilekit

import "testing"

func TestDecodeRuneASCII(t *testing.T) {
	buf := []byte("Hi!!")
	cp, adv := DecodeRune(buf)
	if cp != 'H' || adv != 1 {
		t.Fatalf("got (%q,%d), want ('H',1)", cp, adv)
	}
}

func TestDecodeRuneMultiByte(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want rune
		adv  int
	}{
		{"two-byte", "éabc", 'é', 2},
		{"three-byte", "☃abc", '☃', 3},
		{"four-byte", "\U0001F600abc", '\U0001F600', 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := []byte(c.s)
			cp, adv := DecodeRune(buf)
			if cp != c.want || adv != c.adv {
				t.Fatalf("got (%U,%d), want (%U,%d)", cp, adv, c.want, c.adv)
			}
		})
	}
}

func TestDecodeRuneIllegalLeadAdvancesOne(t *testing.T) {
	buf := []byte{0x80, 'a', 'b', 'c'}
	_, adv := DecodeRune(buf)
	if adv != 1 {
		t.Fatalf("illegal lead should advance by 1, got %d", adv)
	}
}

func TestDecodeRuneShortBufferNearEnd(t *testing.T) {
	buf := []byte{0xe2, 0x98}
	// must not panic even though the 3-byte sequence is truncated.
	_, adv := DecodeRune(buf)
	if adv != 3 {
		t.Fatalf("advance should follow the lead byte's declared length, got %d", adv)
	}
}

func TestDecodeRuneWholeString(t *testing.T) {
	s := "aé☃\U0001F600z"
	buf := append([]byte(s), 0, 0, 0, 0) // trailing sentinel for short leads
	var got []rune
	for i := 0; i < len(s); {
		cp, adv := DecodeRune(buf[i:])
		got = append(got, cp)
		i += adv
	}
	want := []rune(s)
	if len(got) != len(want) {
		t.Fatalf("got %d runes, want %d: %v vs %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rune %d: got %U, want %U", i, got[i], want[i])
		}
	}
}
