package word

import (
	"testing"

	"github.com/matryer/is"
)

func TestCompareHereIffPositional(t *testing.T) {
	is := is.New(t)
	goals := []string{"angle", "apple", "crane", "zebra"}
	guesses := []string{"angle", "ample", "eagle", "about"}
	for _, g := range goals {
		for _, u := range guesses {
			out := Compare(New(g), New(u))
			for i := 0; i < Length; i++ {
				is.Equal(out[i] == Here, g[i] == u[i])
			}
		}
	}
}

func TestCompareContainmentRule(t *testing.T) {
	is := is.New(t)
	// "apple" against goal "angle": a is an exact match; both copies of
	// p are missing from the goal entirely; l and e match their
	// positions.
	out := Compare(New("angle"), New("apple"))
	is.Equal(out, Outcome{Here, Nowhere, Nowhere, Here, Here})

	// Duplicate-letter simplification: "geese" against goal "crane"
	// holds one e, but every misplaced e in the guess still reports
	// Elsewhere by the containment rule, instead of just one of them.
	out = Compare(New("crane"), New("geese"))
	is.Equal(out, Outcome{Nowhere, Elsewhere, Elsewhere, Nowhere, Here})
}

func TestCompareAllNowhere(t *testing.T) {
	is := is.New(t)
	out := Compare(New("crane"), New("dimly"))
	is.Equal(out, Outcome{Nowhere, Nowhere, Nowhere, Nowhere, Nowhere})
	is.True(!out.AllHere())
	is.True(Compare(New("crane"), New("crane")).AllHere())
}

func TestParseOutcome(t *testing.T) {
	is := is.New(t)
	out, err := ParseOutcome("gyx.G")
	is.NoErr(err)
	is.Equal(out, Outcome{Here, Elsewhere, Nowhere, Nowhere, Here})

	_, err = ParseOutcome("gy")
	is.True(err != nil)
	_, err = ParseOutcome("gyxqg")
	is.True(err != nil)
}

func TestOutcomeString(t *testing.T) {
	is := is.New(t)
	out := Outcome{Here, Elsewhere, Nowhere, Nowhere, Here}
	is.Equal(out.String(), "🟩🟨⬜⬜🟩")
}
