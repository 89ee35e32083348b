package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds the session identity to the context
func ctxWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves the session identity from the context. It fails
// when the request did not pass through the auth middleware.
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	ctxValue := ctx.Value(userIDKey)
	if ctxValue == nil {
		return uuid.Nil, errors.New("no session identity in context")
	}
	userID, ok := ctxValue.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("session identity is not a user ID")
	}
	return userID, nil
}
