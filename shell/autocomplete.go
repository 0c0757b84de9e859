package shell

import "github.com/chzyer/readline"

// shellCompleter completes command names and their options. Word
// arguments are left to the user; completing over a few thousand
// dictionary words is more noise than help.
var shellCompleter = readline.NewPrefixCompleter(
	readline.PcItem("new"),
	readline.PcItem("load"),
	readline.PcItem("goal"),
	readline.PcItem("guess"),
	readline.PcItem("mark"),
	readline.PcItem("show"),
	readline.PcItem("rec",
		readline.PcItem("-threads"),
	),
	readline.PcItem("hist"),
	readline.PcItem("set",
		readline.PcItem("max-solve-size"),
		readline.PcItem("show-pool-limit"),
		readline.PcItem("threads"),
	),
	readline.PcItem("help"),
	readline.PcItem("exit"),
	readline.PcItem("bye"),
)
