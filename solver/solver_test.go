package solver

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordler/pattern"
	"github.com/domino14/wordler/word"
)

func pool(words ...string) []word.Word {
	p := make([]word.Word, len(words))
	for i, w := range words {
		p[i] = word.New(w)
	}
	return p
}

func TestInitEmptyGoals(t *testing.T) {
	is := is.New(t)
	s := &Solver{}
	err := s.Init(pattern.New(), nil, pool("crane"))
	is.Equal(err, ErrNoCandidates)
}

// A guess that tells the two goals apart (worst case 1 word left) must
// beat one that leaves both standing (worst case 2).
func TestRecommendPicksDistinguishingGuess(t *testing.T) {
	is := is.New(t)
	goals := pool("abcde", "fghij")
	// kkkkk shares no letters with either goal: whatever the goal, the
	// all-Nowhere outcome eliminates nothing.
	dict := append(pool("kkkkk"), goals...)

	s := &Solver{}
	s.SetThreads(1)
	is.NoErr(s.Init(pattern.New(), goals, dict))
	best, worst, err := s.Recommend(context.Background())
	is.NoErr(err)
	is.Equal(best, word.New("abcde")) // first-seen among the distinguishers
	is.Equal(worst, 1)
}

func TestRecommendPrefersGoalPoolOnNearTie(t *testing.T) {
	is := is.New(t)
	// Both goals share four letters; guessing either goal word leaves
	// at most one candidate, so the goal-pool guess wins even if some
	// dictionary word scores the same.
	goals := pool("crane", "crate")
	dict := append(pool("toads", "nasty"), goals...)

	s := &Solver{}
	s.SetThreads(1)
	is.NoErr(s.Init(pattern.New(), goals, dict))
	best, worst, err := s.Recommend(context.Background())
	is.NoErr(err)
	is.Equal(worst, 1)
	// the recommendation can win outright, so it comes from the goals
	is.True(best == word.New("crane") || best == word.New("crate"))
}

func TestParallelMatchesSequential(t *testing.T) {
	goals := pool(
		"about", "angle", "apple", "ample", "beach", "bread", "crane",
		"crate", "dream", "eagle", "early", "field", "flame", "grain",
		"heart", "house", "light", "mouse", "night", "ocean", "paint",
		"plant", "queen", "radio", "slate", "stone", "toast", "water",
	)
	dict := append(pool("fjord", "glyph", "nymph", "vozhd", "waqfs"), goals...)

	run := func(threads int) (word.Word, int) {
		s := &Solver{}
		s.SetThreads(threads)
		if err := s.Init(pattern.New(), goals, dict); err != nil {
			t.Fatal(err)
		}
		best, worst, err := s.Recommend(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return best, worst
	}

	seqBest, seqWorst := run(1)
	for _, threads := range []int{2, 3, 8} {
		best, worst := run(threads)
		assert.Equal(t, seqBest, best, "threads=%d", threads)
		assert.Equal(t, seqWorst, worst, "threads=%d", threads)
	}
}

func TestRecommendHonorsContext(t *testing.T) {
	is := is.New(t)
	goals := pool("abcde", "fghij", "klmno")
	s := &Solver{}
	s.SetThreads(1)
	is.NoErr(s.Init(pattern.New(), goals, goals))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := s.Recommend(ctx)
	is.Equal(err, context.Canceled)
}

func TestDistribution(t *testing.T) {
	is := is.New(t)
	goals := pool("abcde", "fghij")
	s := &Solver{}
	s.SetThreads(1)
	is.NoErr(s.Init(pattern.New(), goals, goals))

	// abcde solves one goal outright and eliminates itself for the
	// other, so exactly one word remains in every case.
	counts := s.Distribution(word.New("abcde"))
	is.Equal(counts, []float64{1, 1})

	// a guess with no letters in common leaves both goals both times
	counts = s.Distribution(word.New("vwxyz"))
	is.Equal(counts, []float64{2, 2})
}

// The search must never mutate the live pattern it was handed.
func TestSearchLeavesPatternUntouched(t *testing.T) {
	is := is.New(t)
	pat := pattern.New()
	pat.Refine(word.New("zzzzz"), word.Outcome{})
	snapshot := pat

	goals := pool("abcde", "fghij", "klmno")
	s := &Solver{}
	s.SetThreads(2)
	is.NoErr(s.Init(pat, goals, goals))
	_, _, err := s.Recommend(context.Background())
	is.NoErr(err)
	is.Equal(pat, snapshot)
}
