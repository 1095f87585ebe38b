package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("héllo wörld ", 10)

	got := truncate(long, 20)
	require.True(t, utf8.ValidString(got), "truncation must not split a rune")
	require.Equal(t, 20, len([]rune(got)))
	require.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateShortStringUnchanged(t *testing.T) {
	require.Equal(t, "héllo", truncate("héllo", 20))
	require.Equal(t, "one two", truncate("one\ntwo", 20))
}

func TestShortIDKeepsRunesIntact(t *testing.T) {
	id := "идентификатор-из-импорта"

	got := shortID(id)
	require.True(t, utf8.ValidString(got))
	require.Equal(t, 8, len([]rune(got)))

	require.Equal(t, "short", shortID("short"))
}
