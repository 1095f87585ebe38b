// Package models defines the core data types for replykit.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CopySuffix is appended to the title of a duplicated template.
const CopySuffix = " (Copy)"

// Template is a single canned reply. The collection of templates is
// ordered; new templates always append and edits never move an entry.
type Template struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTemplate builds a template with a fresh id and both timestamps
// set to now. The title is stored trimmed.
func NewTemplate(title, body string) *Template {
	now := time.Now().UTC()
	return &Template{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Duplicate returns a copy of the template with a new identity: fresh
// id, fresh timestamps, and the copy suffix appended to the title.
// The receiver is not modified.
func (t *Template) Duplicate() *Template {
	dup := NewTemplate(t.Title+CopySuffix, t.Body)
	return dup
}

// Touch updates the modification timestamp.
func (t *Template) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy. Templates only hold value fields, so a
// struct copy is sufficient, but callers should not rely on that.
func (t *Template) Clone() *Template {
	c := *t
	return &c
}

// CloneAll deep-copies a collection, preserving order.
func CloneAll(templates []*Template) []*Template {
	out := make([]*Template, len(templates))
	for i, t := range templates {
		out[i] = t.Clone()
	}
	return out
}
