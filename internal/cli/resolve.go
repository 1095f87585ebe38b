package cli

import (
	"fmt"
	"strings"

	"github.com/replykit/replykit/internal/models"
	"github.com/replykit/replykit/internal/store"
)

// findTemplate resolves a command-line reference to a template: an
// exact id, an exact title, or a unique title prefix.
func findTemplate(s *store.Store, ref string) (*models.Template, error) {
	templates, err := s.List()
	if err != nil {
		return nil, err
	}

	for _, t := range templates {
		if t.ID == ref {
			return t, nil
		}
	}
	for _, t := range templates {
		if t.Title == ref {
			return t, nil
		}
	}

	var matches []*models.Template
	for _, t := range templates {
		if strings.HasPrefix(strings.ToLower(t.Title), strings.ToLower(ref)) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no template matches '%s'", ref)
	default:
		titles := make([]string, len(matches))
		for i, t := range matches {
			titles[i] = t.Title
		}
		return nil, fmt.Errorf("'%s' is ambiguous, matches: %s", ref, strings.Join(titles, ", "))
	}
}
