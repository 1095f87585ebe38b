package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replykit/replykit/internal/storage"
	"github.com/replykit/replykit/internal/store"
)

// memPort is an in-memory storage.Port for exercising cli helpers.
type memPort struct {
	data []byte
}

func (p *memPort) Load() ([]byte, error) {
	if p.data == nil {
		return nil, storage.ErrSlotEmpty
	}
	return append([]byte(nil), p.data...), nil
}

func (p *memPort) Save(data []byte) error {
	p.data = append([]byte(nil), data...)
	return nil
}

func (p *memPort) Close() error { return nil }

func seedStore(t *testing.T, titles ...string) *store.Store {
	t.Helper()
	s := store.New(&memPort{})
	for _, title := range titles {
		_, err := s.Create(title, "body of "+title)
		require.NoError(t, err)
	}
	return s
}

func TestFindTemplateByID(t *testing.T) {
	s := seedStore(t, "Thanks", "Follow up")
	templates, err := s.List()
	require.NoError(t, err)

	got, err := findTemplate(s, templates[1].ID)
	require.NoError(t, err)
	require.Equal(t, "Follow up", got.Title)
}

func TestFindTemplateExactTitleBeatsPrefix(t *testing.T) {
	s := seedStore(t, "Thanks extended", "Thanks")

	got, err := findTemplate(s, "Thanks")
	require.NoError(t, err)
	require.Equal(t, "Thanks", got.Title)
}

func TestFindTemplateUniquePrefix(t *testing.T) {
	s := seedStore(t, "Thanks", "Follow up")

	got, err := findTemplate(s, "fo")
	require.NoError(t, err)
	require.Equal(t, "Follow up", got.Title)
}

func TestFindTemplateAmbiguousPrefix(t *testing.T) {
	s := seedStore(t, "Thanks", "Thanks (Copy)")

	_, err := findTemplate(s, "Than")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ambiguous")
	require.Contains(t, err.Error(), "Thanks (Copy)")
}

func TestFindTemplateNoMatch(t *testing.T) {
	s := seedStore(t, "Thanks")

	_, err := findTemplate(s, "nothing like this")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no template matches")
}
