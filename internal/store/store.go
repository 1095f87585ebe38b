// Package store owns the authoritative in-memory template collection
// and mediates every mutation against the persistence port.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/replykit/replykit/internal/logging"
	"github.com/replykit/replykit/internal/models"
	"github.com/replykit/replykit/internal/storage"
)

// Store errors.
var (
	ErrTitleRequired    = errors.New("template title is required")
	ErrTemplateNotFound = errors.New("template not found")
	ErrSaveFailed       = errors.New("failed to save templates")
	ErrLoadFailed       = errors.New("failed to load templates")
)

// Store manages the template collection. All methods are safe for
// concurrent use; mutations are serialized so a later call never
// overwrites a snapshot from an earlier call still in flight.
type Store struct {
	mu        sync.Mutex
	port      storage.Port
	templates []*models.Template
	loaded    bool
	logger    zerolog.Logger
}

// New creates a Store backed by the given persistence port. The
// snapshot is loaded lazily on first use.
func New(port storage.Port) *Store {
	return &Store{
		port:   port,
		logger: logging.Component("store"),
	}
}

// ensureLoaded reads the persisted snapshot once. An empty slot is a
// valid first run and yields an empty collection. Callers must hold mu.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	data, err := s.port.Load()
	if errors.Is(err, storage.ErrSlotEmpty) {
		s.templates = []*models.Template{}
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	var templates []*models.Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return fmt.Errorf("%w: corrupt snapshot: %v", ErrLoadFailed, err)
	}
	s.templates = templates
	s.loaded = true
	s.logger.Debug().Int("count", len(templates)).Msg("snapshot loaded")
	return nil
}

// Templates returns a copy of the current collection plus a flag
// reporting whether the persisted snapshot has been read yet. Before
// the first load the collection is provisional and empty.
func (s *Store) Templates() ([]*models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return []*models.Template{}, false
	}
	return models.CloneAll(s.templates), true
}

// List loads the snapshot if needed and returns the collection.
func (s *Store) List() ([]*models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return models.CloneAll(s.templates), nil
}

// Get returns the template with the given id.
func (s *Store) Get(id string) (*models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	for _, t := range s.templates {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}

// Create appends a new template with the given title and body.
// Returns ErrTitleRequired if the title is blank after trimming.
func (s *Store) Create(title, body string) (*models.Template, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	t := models.NewTemplate(title, body)
	next := append(models.CloneAll(s.templates), t)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("id", t.ID).Str("title", t.Title).Msg("template created")
	return t.Clone(), nil
}

// Edit replaces the title and body of an existing template in place.
// The template keeps its id, position, and creation timestamp.
func (s *Store) Edit(id, title, body string) (*models.Template, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	next := models.CloneAll(s.templates)
	var edited *models.Template
	for _, t := range next {
		if t.ID == id {
			t.Title = strings.TrimSpace(title)
			t.Body = body
			t.Touch()
			edited = t
			break
		}
	}
	if edited == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	if err := s.commit(next); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("id", id).Msg("template edited")
	return edited.Clone(), nil
}

// Duplicate appends a copy of an existing template with a fresh
// identity and the copy suffix on its title. The source is unchanged.
func (s *Store) Duplicate(id string) (*models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	var source *models.Template
	for _, t := range s.templates {
		if t.ID == id {
			source = t
			break
		}
	}
	if source == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}

	dup := source.Duplicate()
	next := append(models.CloneAll(s.templates), dup)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("id", dup.ID).Str("source", id).Msg("template duplicated")
	return dup.Clone(), nil
}

// Delete removes a template by id. Deleting an unknown id is a no-op
// so a stale listing can never turn into an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	next := make([]*models.Template, 0, len(s.templates))
	found := false
	for _, t := range s.templates {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t.Clone())
	}
	if !found {
		return nil
	}
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug().Str("id", id).Msg("template deleted")
	return nil
}

// ReplaceAll overwrites the entire collection. Used by import; any
// user confirmation happens before this is called.
func (s *Store) ReplaceAll(templates []*models.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if err := s.commit(models.CloneAll(templates)); err != nil {
		return err
	}
	s.logger.Debug().Int("count", len(templates)).Msg("collection replaced")
	return nil
}

// commit persists next as the full snapshot and installs it in memory
// on success. On a failed write the previous collection stays
// authoritative. Callers must hold mu.
func (s *Store) commit(next []*models.Template) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := s.port.Save(data); err != nil {
		s.logger.Error().Err(err).Msg("snapshot write failed, keeping previous state")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	s.templates = next
	return nil
}
