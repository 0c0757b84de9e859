// Package solver picks the guess that minimizes the worst-case number
// of goal words left after the next round of feedback. It is a plain
// minimax over (guess, hypothetical goal) pairs, not an entropy scorer:
// the adversary always hands back the least informative outcome.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordler/pattern"
	"github.com/domino14/wordler/word"
)

// ErrNoCandidates is returned when the goal pool is empty, i.e. the
// accumulated feedback is contradictory. Callers should check pool size
// before asking for a recommendation; this is the backstop.
var ErrNoCandidates = errors.New("no candidate goal words remain")

type scored struct {
	idx int
	// score is the negated worst-case remaining count, so that higher
	// is uniformly better.
	score int
}

// Solver holds an immutable snapshot of the session state for one
// search. The live pattern is copied at Init time; the search only ever
// refines local hypothetical copies.
type Solver struct {
	pat     pattern.Pattern
	goals   []word.Word
	dict    []word.Word
	threads int

	nodes   atomic.Uint64
	solving atomic.Bool
}

// Init prepares a search over the given pools. goals must already be
// filtered down to the words consistent with pat, and dict must be a
// superset of goals.
func (s *Solver) Init(pat pattern.Pattern, goals, dict []word.Word) error {
	if len(goals) == 0 {
		return ErrNoCandidates
	}
	s.pat = pat
	s.goals = goals
	s.dict = dict
	if s.threads == 0 {
		s.threads = max(1, runtime.NumCPU()-1)
	}
	return nil
}

func (s *Solver) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	s.threads = threads
}

func (s *Solver) IsSolving() bool {
	return s.solving.Load()
}

// Nodes returns the number of (guess, goal) pairs simulated by the last
// search.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// worstCase scores one candidate guess: over every hypothetical goal,
// refine a copy of the snapshot pattern with the simulated outcome and
// count the goal words that would survive. Returns the negated maximum
// so that higher is better.
func (s *Solver) worstCase(guess word.Word) int {
	worst := 0
	for _, goal := range s.goals {
		out := word.Compare(goal, guess)
		hyp := s.pat.Copy()
		hyp.Refine(guess, out)
		remaining := 0
		for _, g := range s.goals {
			if hyp.Matches(g) {
				remaining++
			}
		}
		if remaining > worst {
			worst = remaining
		}
	}
	s.nodes.Add(uint64(len(s.goals)))
	return -worst
}

// bestFrom runs the outer candidate loop over one pool. Ties go to the
// earliest pool index, which matches a sequential left-to-right scan
// exactly; pools are shuffled upstream so "earliest" is not a fixed
// alphabetic bias. The pool is sharded into contiguous index ranges
// across threads; each shard is independent, so the merge reproduces
// the sequential result bit for bit.
func (s *Solver) bestFrom(ctx context.Context, pool []word.Word) (scored, error) {
	threads := min(s.threads, len(pool))
	results := make([]scored, threads)
	g := errgroup.Group{}
	chunk := (len(pool) + threads - 1) / threads
	for t := 0; t < threads; t++ {
		t := t
		lo, hi := t*chunk, min((t+1)*chunk, len(pool))
		g.Go(func() error {
			best := scored{idx: -1, score: -(len(s.goals) + 1)}
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if sc := s.worstCase(pool[i]); sc > best.score {
					best = scored{idx: i, score: sc}
				}
			}
			results[t] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return scored{}, err
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
	}
	return best, nil
}

// Recommend returns the best guess and its worst-case bound: after
// playing it, at most that many goal words can remain, whatever the
// goal turns out to be.
//
// The dictionary pool is searched as well as the goal pool, but a
// goal-pool guess is preferred unless the dictionary guess is strictly
// better by more than one word; a goal-pool guess can win the game
// outright, so a one-word edge is not worth giving that up.
func (s *Solver) Recommend(ctx context.Context) (word.Word, int, error) {
	if len(s.goals) == 0 {
		return word.Word{}, 0, ErrNoCandidates
	}
	s.solving.Store(true)
	defer s.solving.Store(false)
	s.nodes.Store(0)

	bestDict, err := s.bestFrom(ctx, s.dict)
	if err != nil {
		return word.Word{}, 0, err
	}
	bestGoal, err := s.bestFrom(ctx, s.goals)
	if err != nil {
		return word.Word{}, 0, err
	}
	// The dictionary pool is a superset of the goal pool, so its best
	// score can never be worse. Anything else is a scoring bug.
	if bestDict.score < bestGoal.score {
		panic(fmt.Sprintf("minimax invariant violated: dict %d < goal %d",
			bestDict.score, bestGoal.score))
	}
	log.Debug().
		Str("dict-guess", s.dict[bestDict.idx].String()).Int("dict-worst", -bestDict.score).
		Str("goal-guess", s.goals[bestGoal.idx].String()).Int("goal-worst", -bestGoal.score).
		Uint64("nodes", s.nodes.Load()).
		Msg("search-done")
	if bestGoal.score+1 >= bestDict.score {
		return s.goals[bestGoal.idx], -bestGoal.score, nil
	}
	return s.dict[bestDict.idx], -bestDict.score, nil
}

// Distribution returns, for each hypothetical goal, how many goal words
// would remain after playing guess and refining on the outcome. The
// maximum of this slice is the guess's worst-case bound; the shape of
// it feeds the shell's histogram display.
func (s *Solver) Distribution(guess word.Word) []float64 {
	counts := make([]float64, 0, len(s.goals))
	for _, goal := range s.goals {
		out := word.Compare(goal, guess)
		hyp := s.pat.Copy()
		hyp.Refine(guess, out)
		remaining := 0
		for _, g := range s.goals {
			if hyp.Matches(g) {
				remaining++
			}
		}
		counts = append(counts, float64(remaining))
	}
	return counts
}
