package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"score",
	"explain",
	"batch",
	"query",
	"import",
	"export",
	"stat",
	"bash",
	"version",
	"help",
}

// flags completed after a command
var commandFlags = map[string][]string{
	"score":  {"-format"},
	"batch":  {"-format", "-workers", "-output"},
	"query":  {"-format"},
	"import": {"-from", "-to"},
	"export": {"-from", "-to"},
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	completions := getCompletions(args)
	for _, c := range completions {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	if len(args) < 1 {
		return nil
	}

	// args[0] is "sentsem" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	if cursorIndex == commandIndex {
		return withPrefix(commands, lastWord)
	}

	if cursorIndex > commandIndex && strings.HasPrefix(lastWord, "-") {
		return withPrefix(commandFlags[args[commandIndex]], lastWord)
	}

	return nil
}

func withPrefix(words []string, prefix string) []string {
	var completions []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			completions = append(completions, w)
		}
	}
	return completions
}
