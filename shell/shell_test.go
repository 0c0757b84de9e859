package shell

import (
	"testing"

	"github.com/matryer/is"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"rec -threads 4",
			&shellcmd{"rec", nil, map[string]string{"threads": "4"}},
			nil},
		{"mark crane xygxx",
			&shellcmd{"mark", []string{"crane", "xygxx"}, map[string]string{}},
			nil},
		{"load goals.txt extra.txt",
			&shellcmd{"load", []string{"goals.txt", "extra.txt"}, map[string]string{}},
			nil},
		{"rec -threads",
			nil, errWrongOptionSyntax},
	}
	for _, c := range cases {
		cmd, err := extractFields(c.line)
		is.Equal(cmd, c.expCmd)
		is.Equal(err, c.expErr)
	}
}

func TestIsPlainWord(t *testing.T) {
	is := is.New(t)
	is.True(isPlainWord("crane"))
	is.True(!isPlainWord("cran"))
	is.True(!isPlainWord("cranes"))
	is.True(!isPlainWord("Crane"))
	is.True(!isPlainWord("cra-e"))
}
