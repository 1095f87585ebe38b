// Package cli provides output helpers shared by all commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// IsJSONOutput reports whether commands should emit JSON.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput marshals v as indented JSON to out.
func WriteOutput(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	successLine = color.New(color.FgGreen).FprintlnFunc()
	failureLine = color.New(color.FgRed).FprintlnFunc()
)

func printSuccess(format string, args ...any) {
	successLine(os.Stdout, fmt.Sprintf(format, args...))
}

func printFailure(format string, args ...any) {
	failureLine(os.Stderr, fmt.Sprintf(format, args...))
}
