package automation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/replykit/replykit/internal/logging"
)

// Host errors.
var (
	ErrClipboardFailed = errors.New("failed to place text on the clipboard")
	ErrDispatchFailed  = errors.New("mail automation failed")
)

// Host is the abstract automation capability: it places body into the
// frontmost compose window of the target application and optionally
// triggers send. Each call is a single all-or-nothing dispatch.
type Host interface {
	Insert(ctx context.Context, body string, send bool) error
}

// AppleScriptHost drives a macOS mail application through osascript.
type AppleScriptHost struct {
	exec   Executor
	app    string
	logger zerolog.Logger
}

// NewAppleScriptHost creates a host targeting the named application
// ("Mail", "Outlook", ...). A nil executor uses the local machine.
func NewAppleScriptHost(exec Executor, app string) *AppleScriptHost {
	if exec == nil {
		exec = LocalExecutor{}
	}
	return &AppleScriptHost{
		exec:   exec,
		app:    app,
		logger: logging.Component("automation"),
	}
}

// Insert implements Host. The body goes onto the shared clipboard,
// then a single script activates the app, moves the insertion point
// to the top of the compose document, pastes, and optionally sends.
// Pasting at the very top keeps inserted text ahead of quoted content
// and stacks repeated insertions newest-first.
func (h *AppleScriptHost) Insert(ctx context.Context, body string, send bool) error {
	if err := clipboard.WriteAll(body); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardFailed, err)
	}

	script := insertScript(h.app, send)
	h.logger.Debug().Str("app", h.app).Bool("send", send).Msg("dispatching osascript")

	_, stderr, err := h.exec.Exec(ctx, "osascript", "-e", script)
	if err != nil {
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%w: %s", ErrDispatchFailed, detail)
	}
	return nil
}

// insertScript renders the ordered instruction list as AppleScript.
// Cmd+Up jumps to the top of the document, Cmd+V pastes, and
// Cmd+Shift+D is the send shortcut shared by Mail and Outlook.
func insertScript(app string, send bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application %q to activate\n", app)
	b.WriteString("tell application \"System Events\"\n")
	fmt.Fprintf(&b, "\ttell process %q\n", app)
	b.WriteString("\t\tkey code 126 using {command down}\n")
	b.WriteString("\t\tkeystroke \"v\" using {command down}\n")
	if send {
		b.WriteString("\t\tkeystroke \"d\" using {command down, shift down}\n")
	}
	b.WriteString("\tend tell\n")
	b.WriteString("end tell")
	return b.String()
}
