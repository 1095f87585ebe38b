// Package cli provides helpers for interactive mode detection.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsNonInteractive reports whether prompts should be skipped and the
// safe default (refuse) used instead.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("REPLYKIT_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// approveDestructive gates an action that cannot be undone. force
// skips the prompt entirely; non-interactive sessions refuse with the
// given reason instead of guessing an answer.
func approveDestructive(prompt, refusal string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if IsNonInteractive() {
		return false, fmt.Errorf("%s; use --force", refusal)
	}
	return confirm(prompt), nil
}

// confirm asks a yes/no question on the terminal. Only an explicit
// "y"/"yes" counts as consent.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
