// Package pattern tracks what a sequence of guess outcomes has revealed
// about the goal word: which letters must be present, which are absent,
// and which letters each position may still hold.
package pattern

import (
	"strings"

	"github.com/domino14/wordler/word"
)

// Pattern is the accumulated constraint for one solving session.
//
// It is a plain value made of fixed-size fields, so an ordinary struct
// copy is a deep copy. The search branches on hypothetical outcomes by
// copying first and refining the copy; the live pattern owned by the
// session is only ever mutated through its own Refine call.
type Pattern struct {
	// positive: letters known to be in the goal somewhere.
	positive uint32
	// negative: letters known to be entirely absent.
	negative uint32
	// perPos: letters still allowed at each position. Bits are only
	// ever cleared, never set back.
	perPos [word.Length]uint32
}

// New returns the empty pattern: nothing known, every letter allowed at
// every position.
func New() Pattern {
	p := Pattern{}
	for i := range p.perPos {
		p.perPos[i] = word.AllLetters
	}
	return p
}

// Copy returns an independent copy to refine hypothetically.
func (p Pattern) Copy() Pattern {
	return p
}

// Matches reports whether w is still consistent with everything learned
// so far: it holds every known-present letter, none of the known-absent
// ones, and each of its letters is allowed at its position.
func (p *Pattern) Matches(w word.Word) bool {
	if w.Letters()&p.positive != p.positive {
		return false
	}
	if w.Letters()&p.negative != 0 {
		return false
	}
	for i := 0; i < word.Length; i++ {
		if p.perPos[i]&word.LetterMask(w.At(i)) == 0 {
			return false
		}
	}
	return true
}

// Refine folds one round of feedback into the pattern, in place.
//
// Positions are processed left to right. For a guess holding the same
// letter twice, a Nowhere at one position strips that letter from every
// position, including one an earlier Here pinned; whichever branch runs
// last for a shared letter wins. That follows directly from the simple
// containment rule in word.Compare and is kept as-is so refinement and
// comparison stay consistent with each other.
func (p *Pattern) Refine(guess word.Word, out word.Outcome) {
	for i := 0; i < word.Length; i++ {
		m := word.LetterMask(guess.At(i))
		switch out[i] {
		case word.Nowhere:
			p.negative |= m
			for j := range p.perPos {
				p.perPos[j] &^= m
			}
		case word.Elsewhere:
			p.positive |= m
			p.perPos[i] &^= m
		case word.Here:
			p.positive |= m
			p.perPos[i] = m
		}
	}
}

// Positive returns the set of letters known to be in the goal.
func (p *Pattern) Positive() uint32 {
	return p.positive
}

// Negative returns the set of letters known to be absent.
func (p *Pattern) Negative() uint32 {
	return p.negative
}

// Allowed returns the set of letters still allowed at position i.
func (p *Pattern) Allowed(i int) uint32 {
	return p.perPos[i]
}

func lettersOf(mask uint32) string {
	var sb strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if mask&word.LetterMask(c) != 0 {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// ToDisplayText renders the pattern for the shell: solved positions as
// their letter, open positions as a dot, plus the present and absent
// letter sets.
func (p *Pattern) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("positions: ")
	for i := 0; i < word.Length; i++ {
		mask := p.perPos[i]
		if mask != 0 && mask&(mask-1) == 0 {
			// single bit: position is solved
			sb.WriteString(lettersOf(mask))
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteString("\npresent:   ")
	sb.WriteString(lettersOf(p.positive))
	sb.WriteString("\nabsent:    ")
	sb.WriteString(lettersOf(p.negative))
	return sb.String()
}
