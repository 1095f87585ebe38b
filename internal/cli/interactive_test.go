package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func forceNonInteractive(t *testing.T) {
	t.Helper()
	prev := nonInteractive
	nonInteractive = true
	t.Cleanup(func() { nonInteractive = prev })
}

func TestIsNonInteractiveFlag(t *testing.T) {
	forceNonInteractive(t)
	require.True(t, IsNonInteractive())
}

func TestIsNonInteractiveEnv(t *testing.T) {
	t.Setenv("REPLYKIT_NON_INTERACTIVE", "1")
	require.True(t, IsNonInteractive())
}

func TestApproveDestructiveRefusesWithoutForce(t *testing.T) {
	forceNonInteractive(t)

	ok, err := approveDestructive("Delete 'Thanks'?", "refusing to delete 'Thanks' without confirmation", false)
	require.False(t, ok)
	require.Error(t, err)
	require.Contains(t, err.Error(), "refusing to delete 'Thanks'")
	require.Contains(t, err.Error(), "--force")
}

func TestApproveDestructiveForceSkipsPrompt(t *testing.T) {
	forceNonInteractive(t)

	ok, err := approveDestructive("Paste 'Thanks' and send immediately?", "refusing to send without confirmation", true)
	require.NoError(t, err)
	require.True(t, ok)
}
