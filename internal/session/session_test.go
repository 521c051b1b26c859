package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-bot/internal/model"
)

func TestTakeRemovesDraft(t *testing.T) {
	s := NewStore()
	s.Put(1, model.Draft{Amount: 500, FromUser: "al"})

	d, ok := s.Take(1)
	require.True(t, ok)
	assert.Equal(t, int64(500), d.Amount)

	_, ok = s.Take(1)
	assert.False(t, ok, "second take must see no draft")
}

func TestDraftsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.Put(1, model.Draft{Amount: 500, FromUser: "al"})

	_, ok := s.Take(2)
	require.False(t, ok, "user B must not see user A's draft")

	d, ok := s.Take(1)
	require.True(t, ok)
	assert.Equal(t, "al", d.FromUser)
}

func TestSecondPutOverwrites(t *testing.T) {
	s := NewStore()
	s.Put(1, model.Draft{Amount: 100, Comment: "первый"})
	s.Put(1, model.Draft{Amount: 200, Comment: "второй"})

	d, ok := s.Take(1)
	require.True(t, ok)
	assert.Equal(t, int64(200), d.Amount)
	assert.Equal(t, "второй", d.Comment)
}
