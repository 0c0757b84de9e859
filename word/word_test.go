package word

import (
	"testing"
)

type masktestpair struct {
	word string
	mask uint32
}

func TestLetterMaskDerivation(t *testing.T) {
	var maskTests = []masktestpair{
		{"abcde", 0b11111},
		{"aaaaa", 0b1},
		// double letters contribute a single bit
		{"apple", LetterMask('a') | LetterMask('p') | LetterMask('l') | LetterMask('e')},
		{"zzzzz", 1 << 25},
		{"fubar", LetterMask('f') | LetterMask('u') | LetterMask('b') | LetterMask('a') | LetterMask('r')},
	}

	for _, pair := range maskTests {
		w := New(pair.word)
		if w.Letters() != pair.mask {
			t.Error("For", pair.word, "expected", pair.mask, "got", w.Letters())
		}
		// the mask must be exactly the union of the per-letter bits
		union := uint32(0)
		for i := 0; i < Length; i++ {
			union |= LetterMask(pair.word[i])
		}
		if w.Letters() != union {
			t.Error("mask for", pair.word, "is not the union of its letter bits")
		}
	}
}

func TestWordRoundTrip(t *testing.T) {
	for _, s := range []string{"crane", "zebra", "quiet"} {
		if New(s).String() != s {
			t.Error("round trip failed for", s)
		}
	}
}
