package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordler/lexicon"
	"github.com/domino14/wordler/pattern"
	"github.com/domino14/wordler/word"
)

var errSolving = errors.New("a search is already running")

// resetSession reloads the word lists from the configured paths and
// starts over with an empty pattern.
func (sc *ShellController) resetSession() error {
	lex, err := lexicon.Load(sc.config.GoalListPath(), sc.config.ExtraListPath())
	if err != nil {
		return err
	}
	sc.lex = lex
	sc.goals = lex.Goals
	sc.pat = pattern.New()
	sc.goalSet = false
	sc.haveRec = false
	sc.round = 0
	log.Debug().Int("goals", len(lex.Goals)).Int("dict", len(lex.All)).
		Msg("session-reset")
	return nil
}

func (sc *ShellController) setGoal(text string) error {
	if !isPlainWord(text) {
		return fmt.Errorf("goal %q must be %d lowercase letters", text, word.Length)
	}
	sc.goal = word.New(text)
	sc.goalSet = true
	return nil
}

func (sc *ShellController) newSession(cmd *shellcmd) (*Response, error) {
	if sc.solver.IsSolving() {
		return nil, errSolving
	}
	if err := sc.resetSession(); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("new session: %d goal words, %d in dictionary",
		len(sc.goals), len(sc.lex.All))), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: load <goal-list> <extra-list>")
	}
	sc.config.Set("goal-list", cmd.args[0])
	sc.config.Set("extra-list", cmd.args[1])
	return sc.newSession(cmd)
}

func (sc *ShellController) goalCmd(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: goal <word>")
	}
	if err := sc.setGoal(cmd.args[0]); err != nil {
		return nil, err
	}
	return msg("goal set; type guesses to play against it"), nil
}

func (sc *ShellController) guess(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: guess <word>")
	}
	return sc.playGuess(cmd.args[0])
}

// playGuess runs one round against the known goal: score the guess,
// fold the outcome into the pattern, narrow the goal pool, and show
// where things stand.
func (sc *ShellController) playGuess(text string) (*Response, error) {
	if !sc.goalSet {
		return nil, errors.New("no goal set; use `goal <word>`, or `mark` if an external game holds the goal")
	}
	if !isPlainWord(text) {
		return nil, fmt.Errorf("guess %q must be %d lowercase letters", text, word.Length)
	}
	guess := word.New(text)
	if !sc.pat.Matches(guess) {
		sc.showMessage("note: that guess contradicts what you already know")
	}
	out := word.Compare(sc.goal, guess)
	sc.showMessage("outcome is " + out.String())
	if out.AllHere() {
		sc.round++
		return msg(fmt.Sprintf("solved in %d rounds! `new` starts another session", sc.round)), nil
	}
	return sc.applyOutcome(guess, out)
}

// mark enters feedback handed back by an external game, in place of
// computing it from a known goal.
func (sc *ShellController) mark(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: mark <guess> <outcome>, e.g. mark crane xygxx")
	}
	if !isPlainWord(cmd.args[0]) {
		return nil, fmt.Errorf("guess %q must be %d lowercase letters", cmd.args[0], word.Length)
	}
	out, err := word.ParseOutcome(cmd.args[1])
	if err != nil {
		return nil, err
	}
	return sc.applyOutcome(word.New(cmd.args[0]), out)
}

func (sc *ShellController) applyOutcome(guess word.Word, out word.Outcome) (*Response, error) {
	sc.pat.Refine(guess, out)
	sc.goals = sc.goals.Retain(&sc.pat)
	sc.round++
	sc.haveRec = false
	state, err := sc.show(nil)
	if err != nil {
		return nil, err
	}
	sc.showMessage(state.message)
	if len(sc.goals) == 0 {
		return nil, errors.New("no goal words left; the feedback so far is contradictory")
	}
	if len(sc.goals) <= sc.config.GetInt("max-solve-size") {
		return sc.rec(&shellcmd{cmd: "rec", options: map[string]string{}})
	}
	return msg(fmt.Sprintf("%d goal words remain; too many to search (max-solve-size %d)",
		len(sc.goals), sc.config.GetInt("max-solve-size"))), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString(sc.pat.ToDisplayText())
	sb.WriteString(fmt.Sprintf("\n%d matching goal words", len(sc.goals)))
	if len(sc.goals) <= sc.config.GetInt("show-pool-limit") {
		for _, w := range sc.goals.Strings() {
			sb.WriteString("\n  " + w)
		}
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) rec(cmd *shellcmd) (*Response, error) {
	if sc.solver.IsSolving() {
		return nil, errSolving
	}
	if len(sc.goals) == 0 {
		return nil, errors.New("no goal words left to recommend against")
	}
	if len(sc.goals) > sc.config.GetInt("max-solve-size") {
		return nil, fmt.Errorf("%d goal words remain; narrow below %d first, or raise max-solve-size",
			len(sc.goals), sc.config.GetInt("max-solve-size"))
	}
	if t, ok := cmd.options["threads"]; ok {
		threads, err := strconv.Atoi(t)
		if err != nil {
			return nil, err
		}
		sc.solver.SetThreads(threads)
	}
	if err := sc.solver.Init(sc.pat, sc.goals, sc.lex.All); err != nil {
		return nil, err
	}
	best, worst, err := sc.solver.Recommend(context.Background())
	if err != nil {
		return nil, err
	}
	sc.lastRec = best
	sc.lastWorst = worst
	sc.haveRec = true
	return msg(fmt.Sprintf("recommended guess is %s (at most %d possible words after it)",
		best, worst)), nil
}

// hist plots how many goal words would survive the last recommended
// guess, across every hypothetical goal. A flat, low histogram means
// the guess partitions the pool evenly.
func (sc *ShellController) hist(cmd *shellcmd) (*Response, error) {
	if !sc.haveRec {
		return nil, errors.New("no recommendation yet; run `rec` first")
	}
	counts := sc.solver.Distribution(sc.lastRec)
	bins := min(10, len(counts))
	h := histogram.Hist(bins, counts)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("words remaining after %s, over %d possible goals:\n",
		sc.lastRec, len(counts)))
	if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	switch key {
	case "max-solve-size", "show-pool-limit", "threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		sc.config.Set(key, n)
		if key == "threads" {
			sc.solver.SetThreads(n)
		}
	default:
		return nil, errors.New("unknown setting " + key)
	}
	return msg("set " + key + " to " + value), nil
}
