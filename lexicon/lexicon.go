// Package lexicon loads and validates the word lists the solver runs
// on: a goal list (words that can be answers) and an extra list (words
// accepted as guesses only). Everything downstream assumes words are
// exactly five lowercase ASCII letters, so this is the one place that
// checks it.
package lexicon

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/wordler/pattern"
	"github.com/domino14/wordler/word"
)

// Pool is an ordered collection of words. Order matters: the solver
// breaks score ties by first-seen, so pools are shuffled once at load
// time to avoid a standing alphabetical bias.
type Pool []word.Word

// Lexicon is the pair of pools one session runs on. Goals shrinks as
// feedback accumulates; All never does, it is only a source of guesses.
type Lexicon struct {
	Goals Pool
	All   Pool
}

func validWord(line string) bool {
	if len(line) != word.Length {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] < 'a' || line[i] > 'z' {
			return false
		}
	}
	return true
}

// LoadFile reads one word per line and rejects the whole file on the
// first malformed entry. Feeding a malformed word past this boundary
// would silently corrupt the letter masks, so there is no lenient mode.
func LoadFile(path string) (Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pool Pool
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if !validWord(line) {
			return nil, fmt.Errorf("%s:%d: malformed word %q (want %d lowercase letters)",
				path, lineno, line, word.Length)
		}
		pool = append(pool, word.New(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", len(pool)).Msg("loaded-word-list")
	return pool, nil
}

// Load builds a lexicon from a goal list and an extra-guesses list. The
// full dictionary is the extra words plus the goals, and both pools are
// shuffled.
func Load(goalPath, extraPath string) (*Lexicon, error) {
	goals, err := LoadFile(goalPath)
	if err != nil {
		return nil, err
	}
	extra, err := LoadFile(extraPath)
	if err != nil {
		return nil, err
	}
	lex := &Lexicon{
		Goals: goals,
		All:   append(extra, goals...),
	}
	lex.Goals.Shuffle()
	lex.All.Shuffle()
	return lex, nil
}

// Shuffle randomizes pool order in place.
func (p Pool) Shuffle() {
	frand.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
}

// Retain returns the pool narrowed to the words still consistent with
// pat, preserving relative order.
func (p Pool) Retain(pat *pattern.Pattern) Pool {
	return lo.Filter(p, func(w word.Word, _ int) bool {
		return pat.Matches(w)
	})
}

// Strings renders the pool for display.
func (p Pool) Strings() []string {
	return lo.Map(p, func(w word.Word, _ int) string {
		return w.String()
	})
}
