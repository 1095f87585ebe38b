// Package automation drives the external mail client through an
// OS-level scripting port and exposes the insertion pipeline on top.
package automation

import (
	"bytes"
	"context"
	"os/exec"
)

// Executor runs host commands. Implementations capture stdout and
// stderr separately so script failures can be reported verbatim.
type Executor interface {
	Exec(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// LocalExecutor runs commands on the local machine.
type LocalExecutor struct{}

// Exec implements Executor.
func (LocalExecutor) Exec(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
