package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory InteractionStore for exercising the toggle
// algorithm without a database.
type memStore struct {
	rows map[uuid.UUID][2]uuid.UUID // record id -> (postID, authorID)
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[uuid.UUID][2]uuid.UUID)}
}

func (s *memStore) Find(postID, authorID uuid.UUID) (uuid.UUID, bool, error) {
	for id, pair := range s.rows {
		if pair[0] == postID && pair[1] == authorID {
			return id, true, nil
		}
	}
	return uuid.Nil, false, nil
}

func (s *memStore) Add(postID, authorID uuid.UUID) error {
	s.rows[uuid.New()] = [2]uuid.UUID{postID, authorID}
	return nil
}

func (s *memStore) Remove(id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

func TestToggleFlipsState(t *testing.T) {
	store := newMemStore()
	postID := uuid.New()
	userID := uuid.New()

	active, err := Toggle(store, postID, userID)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Len(t, store.rows, 1)

	active, err = Toggle(store, postID, userID)
	require.NoError(t, err)
	assert.False(t, active)
	assert.Empty(t, store.rows)
}

func TestToggleIsPerUser(t *testing.T) {
	store := newMemStore()
	postID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	active, err := Toggle(store, postID, userA)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = Toggle(store, postID, userB)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Len(t, store.rows, 2)

	// userA flipping off leaves userB's record alone
	active, err = Toggle(store, postID, userA)
	require.NoError(t, err)
	assert.False(t, active)
	assert.Len(t, store.rows, 1)
}
