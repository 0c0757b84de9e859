package shell

const usageText = `Commands:
  new                      start over: reload and reshuffle the word lists
  load <goals> <extra>     switch to different word-list files
  goal <word>              set the secret goal for self-play
  <word> / guess <word>    play a guess against the known goal
  mark <guess> <outcome>   enter feedback from an external game;
                           outcome is 5 of g (green), y (yellow), x (gray)
  show / s                 show the pattern and the remaining goal words
  rec [-threads n]         recommend the guess with the best worst case
  hist                     histogram of remaining words for that guess
  set <key> <value>        change max-solve-size, show-pool-limit or threads
  exit / bye               quit
`

func usage(cmd *shellcmd) (*Response, error) {
	return msg(usageText), nil
}
