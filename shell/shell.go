package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordler/config"
	"github.com/domino14/wordler/lexicon"
	"github.com/domino14/wordler/pattern"
	"github.com/domino14/wordler/solver"
	"github.com/domino14/wordler/word"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong option syntax")
	errExiting           = errors.New("sending quit signal")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields parses a command line into the command, its positional
// arguments, and -key value option pairs. Quoted strings survive as
// single fields.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	lastWasOption := false
	lastOption := ""
	for _, token := range fields[1:] {
		if strings.HasPrefix(token, "-") {
			lastWasOption = true
			lastOption = token[1:]
			continue
		}
		if lastWasOption {
			options[lastOption] = token
			lastWasOption = false
		} else {
			args = append(args, token)
		}
	}
	if lastWasOption {
		// an option was specified with no value
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	exPath string

	lex   *lexicon.Lexicon
	goals lexicon.Pool
	pat   pattern.Pattern

	goal    word.Word
	goalSet bool

	round     int
	lastRec   word.Word
	lastWorst int
	haveRec   bool

	solver *solver.Solver
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, exPath string) *ShellController {
	prompt := "wordler"
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m" + prompt + ">\033[0m ",
		HistoryFile:     "/tmp/wordler_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		AutoComplete:        shellCompleter,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, config: cfg, exPath: exPath}
	sc.solver = &solver.Solver{}
	if t := cfg.GetInt("threads"); t > 0 {
		sc.solver.SetThreads(t)
	}
	if err := sc.resetSession(); err != nil {
		sc.showError(err)
	}
	if g := cfg.GetString("goal"); g != "" {
		if err := sc.setGoal(g); err != nil {
			sc.showError(err)
		}
	}
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) handle(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new":
		return sc.newSession(cmd)
	case "load":
		return sc.load(cmd)
	case "goal":
		return sc.goalCmd(cmd)
	case "guess":
		return sc.guess(cmd)
	case "mark":
		return sc.mark(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "rec":
		return sc.rec(cmd)
	case "hist":
		return sc.hist(cmd)
	case "set":
		return sc.set(cmd)
	case "help":
		return usage(cmd)
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errExiting
	default:
		// a bare five-letter word is a guess, matching the original
		// one-line-per-round loop
		if isPlainWord(cmd.cmd) {
			return sc.playGuess(cmd.cmd)
		}
		return nil, errors.New("command " + cmd.cmd + " not found; try `help`")
	}
}

func isPlainWord(s string) bool {
	if len(s) != word.Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.handle(line, sig)
		if err == errExiting {
			break
		}
		if err == errNoData {
			continue
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line non-interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	resp, err := sc.handle(strings.TrimSpace(line), sig)
	if err == errExiting {
		return
	}
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Cleanup() {
	// nothing to tear down right now; the readline instance is closed
	// when the loop exits
}
