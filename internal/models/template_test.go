package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTemplateTrimsTitle(t *testing.T) {
	tmpl := NewTemplate("  Thanks  ", "body")
	require.Equal(t, "Thanks", tmpl.Title)
	require.NotEmpty(t, tmpl.ID)
	require.True(t, tmpl.UpdatedAt.Equal(tmpl.CreatedAt))
}

func TestDuplicateResetsIdentity(t *testing.T) {
	src := NewTemplate("Thanks", "body")
	dup := src.Duplicate()

	require.NotEqual(t, src.ID, dup.ID)
	require.Equal(t, "Thanks (Copy)", dup.Title)
	require.Equal(t, src.Body, dup.Body)
	require.False(t, dup.CreatedAt.Before(src.CreatedAt))
}

func TestCloneAllIsDeep(t *testing.T) {
	src := []*Template{NewTemplate("A", "a")}
	cloned := CloneAll(src)

	cloned[0].Title = "changed"
	require.Equal(t, "A", src[0].Title)
}
