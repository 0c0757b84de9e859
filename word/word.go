package word

// Length is the only word length this solver knows about.
const Length = 5

// AllLetters is the mask with all 26 letter bits set.
const AllLetters = uint32(1<<26) - 1

// LetterMask returns the bit for a single lowercase letter.
func LetterMask(c byte) uint32 {
	return 1 << (c - 'a')
}

// Word is an immutable five-letter word plus a derived mask of which
// letters occur anywhere in it. The mask is duplicate-insensitive; a
// double letter contributes one bit. Words are cheap to copy and are
// passed by value everywhere.
//
// Construction assumes the input is exactly five lowercase ASCII
// letters. Validation happens at the lexicon boundary, not here.
type Word struct {
	bytes   [Length]byte
	letters uint32
}

func New(text string) Word {
	var w Word
	copy(w.bytes[:], text)
	for _, b := range w.bytes {
		w.letters |= LetterMask(b)
	}
	return w
}

// Letters returns the 26-bit set of letters occurring in the word.
func (w Word) Letters() uint32 {
	return w.letters
}

// At returns the letter at position i.
func (w Word) At(i int) byte {
	return w.bytes[i]
}

// Contains reports whether the letter c occurs anywhere in the word.
func (w Word) Contains(c byte) bool {
	return w.letters&LetterMask(c) != 0
}

func (w Word) String() string {
	return string(w.bytes[:])
}
