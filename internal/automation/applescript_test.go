package automation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

func TestInsertScriptOrder(t *testing.T) {
	script := insertScript("Mail", false)

	activate := strings.Index(script, `tell application "Mail" to activate`)
	top := strings.Index(script, "key code 126 using {command down}")
	paste := strings.Index(script, `keystroke "v" using {command down}`)

	require.GreaterOrEqual(t, activate, 0)
	require.Greater(t, top, activate, "cursor moves to top after activation")
	require.Greater(t, paste, top, "paste happens at the top of the document")
	require.NotContains(t, script, `keystroke "d"`, "no send step without the flag")
}

func TestInsertScriptSendIsLast(t *testing.T) {
	script := insertScript("Outlook", true)

	paste := strings.Index(script, `keystroke "v" using {command down}`)
	send := strings.Index(script, `keystroke "d" using {command down, shift down}`)

	require.GreaterOrEqual(t, paste, 0)
	require.Greater(t, send, paste, "send is the final keystroke")
	require.Contains(t, script, `tell process "Outlook"`)
}
