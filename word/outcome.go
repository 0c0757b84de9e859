package word

import (
	"errors"
	"strings"
)

// LetterOutcome classifies the feedback for one guessed letter.
type LetterOutcome uint8

const (
	// Nowhere: the letter does not occur in the goal.
	Nowhere LetterOutcome = iota
	// Elsewhere: the letter occurs in the goal, but not at this position.
	Elsewhere
	// Here: correct letter, correct position.
	Here
)

func (lo LetterOutcome) String() string {
	switch lo {
	case Here:
		return "🟩"
	case Elsewhere:
		return "🟨"
	}
	return "⬜"
}

// Outcome is the per-position feedback for one guess against one goal.
// It is derived data, recomputed whenever needed and never cached.
type Outcome [Length]LetterOutcome

// Compare scores a guess against a known goal. A letter is Here when it
// matches positionally, Elsewhere when it occurs anywhere in the goal,
// and Nowhere otherwise.
//
// Note the containment rule is deliberately simple: a guess with two
// copies of a letter the goal holds once reports Elsewhere for both
// copies, rather than Elsewhere for one and Nowhere for the other as
// the official game would. Pattern refinement depends on this exact
// behavior; see Pattern.Refine before changing it.
func Compare(goal, guess Word) Outcome {
	var out Outcome
	for i := 0; i < Length; i++ {
		switch {
		case guess.bytes[i] == goal.bytes[i]:
			out[i] = Here
		case goal.Contains(guess.bytes[i]):
			out[i] = Elsewhere
		default:
			out[i] = Nowhere
		}
	}
	return out
}

func (o Outcome) String() string {
	var sb strings.Builder
	for _, lo := range o {
		sb.WriteString(lo.String())
	}
	return sb.String()
}

// AllHere reports whether every position was an exact match, i.e. the
// guess was the goal.
func (o Outcome) AllHere() bool {
	for _, lo := range o {
		if lo != Here {
			return false
		}
	}
	return true
}

var errBadOutcome = errors.New("outcome must be 5 characters of g, y, x or .")

// ParseOutcome reads a manually entered feedback string, one character
// per position: g for an exact match, y for present-but-misplaced, and
// x (or .) for absent. Used when the goal is held by an external game.
func ParseOutcome(s string) (Outcome, error) {
	var out Outcome
	if len(s) != Length {
		return out, errBadOutcome
	}
	for i := 0; i < Length; i++ {
		switch s[i] {
		case 'g', 'G':
			out[i] = Here
		case 'y', 'Y':
			out[i] = Elsewhere
		case 'x', 'X', '.':
			out[i] = Nowhere
		default:
			return Outcome{}, errBadOutcome
		}
	}
	return out, nil
}
