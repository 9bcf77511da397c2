package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"project",
	"ls",
	"sentence",
	"stat",
	"import",
	"export",
	"version",
	"bash",
	"help",
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
	if len(args) < 1 {
		return nil
	}

	// args[0] is the binary name (COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1

	if cursorIndex == commandIndex {
		lastWord := args[cursorIndex]
		var completions []string
		for _, c := range commands {
			if strings.HasPrefix(c, lastWord) {
				completions = append(completions, c)
			}
		}
		return completions
	}

	// help <command>
	if cursorIndex == commandIndex+1 && args[commandIndex] == "help" {
		lastWord := args[cursorIndex]
		var completions []string
		for _, c := range commands {
			if c != "help" && strings.HasPrefix(c, lastWord) {
				completions = append(completions, c)
			}
		}
		return completions
	}

	return nil
}
