package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/tsawler/marktree"
)

// repl parses each line typed at the prompt and prints the result in the
// selected format. A line ending in a backslash continues on the next
// line.
func repl(opts options) error {
	rl, err := readline.New("md > ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Enter markdown; quit with <ctrl>D")
	var pending []string
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.HasSuffix(line, `\`) {
			pending = append(pending, strings.TrimSuffix(line, `\`))
			rl.SetPrompt("...> ")
			continue
		}
		pending = append(pending, line)
		input := strings.Join(pending, "\n")
		pending = nil
		rl.SetPrompt("md > ")
		if strings.TrimSpace(input) == "" {
			continue
		}

		var out strings.Builder
		ext := configure(marktree.FromString(input), opts)
		if err := render(ext, opts.format, &out); err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		fmt.Print(out.String())
	}
	pterm.Info.Println("Good bye!")
	return nil
}
