// Package transfer converts the template collection to and from the
// external JSON interchange format used for import and export.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/replykit/replykit/internal/models"
)

// ExportFileName is the default file name for exported collections.
const ExportFileName = "canned-replies.json"

// PlaceholderTitle substitutes a missing or blank title on import.
const PlaceholderTitle = "Untitled"

// Transfer errors.
var (
	ErrNothingToExport = errors.New("no templates to export")
	ErrBadFormat       = errors.New("import data is not a JSON array of templates")
)

// Export serializes the collection as a JSON array. Exporting an
// empty collection is a caller error, not an empty file.
func Export(templates []*models.Template) ([]byte, error) {
	if len(templates) == 0 {
		return nil, ErrNothingToExport
	}
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal templates: %w", err)
	}
	return data, nil
}

// Import parses a JSON array of template objects, repairing each
// element into a valid template. Malformed fields are substituted,
// never escalated: every input element yields exactly one template.
// Only an unparseable payload or a non-array top level fails.
func Import(data []byte) ([]*models.Template, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	templates := make([]*models.Template, 0, len(elements))
	seen := make(map[string]bool, len(elements))
	for _, raw := range elements {
		t := repair(raw)
		// ids must stay unique within the collection; a repeated id in
		// the payload keeps its first occurrence and later ones are
		// reassigned rather than dropped.
		if seen[t.ID] {
			t.ID = uuid.NewString()
		}
		seen[t.ID] = true
		templates = append(templates, t)
	}
	return templates, nil
}

// repair coerces one array element into a valid template. An element
// that is not even an object yields a fully defaulted template.
func repair(raw json.RawMessage) *models.Template {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		fields = map[string]any{}
	}

	now := time.Now().UTC()
	t := &models.Template{
		Title:     PlaceholderTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if title, ok := fields["title"].(string); ok && strings.TrimSpace(title) != "" {
		t.Title = strings.TrimSpace(title)
	}
	if body, ok := fields["body"].(string); ok {
		t.Body = body
	}
	if id, ok := fields["id"].(string); ok && id != "" {
		t.ID = id
	} else {
		t.ID = uuid.NewString()
	}
	if ts, ok := parseTimestamp(fields["createdAt"]); ok {
		t.CreatedAt = ts
	}
	if ts, ok := parseTimestamp(fields["updatedAt"]); ok {
		t.UpdatedAt = ts
	}
	return t
}

func parseTimestamp(value any) (time.Time, bool) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z0700", // offsets without a colon, e.g. +0000
		"2006-01-02T15:04:05",      // no zone, taken as UTC
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
