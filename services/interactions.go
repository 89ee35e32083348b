package services

import (
	"github.com/google/uuid"
)

// InteractionStore is the slice of a repository the toggle algorithm needs.
// Both the like and bookmark repositories satisfy it.
type InteractionStore interface {
	Find(postID, authorID uuid.UUID) (id uuid.UUID, found bool, err error)
	Add(postID, authorID uuid.UUID) error
	Remove(id uuid.UUID) error
}

// Toggle flips the interaction state for (post, author) and reports the
// resulting state: true when a record was created, false when an existing
// record was removed. There is no "set" form; callers can only flip.
func Toggle(store InteractionStore, postID, authorID uuid.UUID) (bool, error) {
	id, found, err := store.Find(postID, authorID)
	if err != nil {
		return false, err
	}
	if found {
		return false, store.Remove(id)
	}
	return true, store.Add(postID, authorID)
}
