package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-platform/inkwell-backend/database"
	"github.com/inkwell-platform/inkwell-backend/errs"
	"github.com/inkwell-platform/inkwell-backend/services"
)

type interactionHandler struct {
	responder    Responder
	logger       zerolog.Logger
	postRepo     *database.PostRepo
	likeRepo     *database.LikeRepo
	bookmarkRepo *database.BookmarkRepo
}

func newInteractionHandler(postRepo *database.PostRepo, likeRepo *database.LikeRepo, bookmarkRepo *database.BookmarkRepo) interactionHandler {
	logger := log.With().Str("handlerName", "interactionHandler").Logger()

	return interactionHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		postRepo:     postRepo,
		likeRepo:     likeRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

// toggleLike flips the caller's like on a post and reports the resulting
// state. Callers cannot force a state, only flip it.
func (h interactionHandler) toggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, apiErr := h.toggle(r, h.likeRepo, "like")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		h.responder.WriteJSON(w, map[string]bool{"liked": active})
	}
}

// toggleBookmark flips the caller's bookmark on a post and reports the
// resulting state.
func (h interactionHandler) toggleBookmark() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, apiErr := h.toggle(r, h.bookmarkRepo, "bookmark")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		h.responder.WriteJSON(w, map[string]bool{"bookmarked": active})
	}
}

// toggle is the shared path behind both interaction kinds: verify the post
// exists, then flip membership of the caller's interaction record.
func (h interactionHandler) toggle(r *http.Request, store services.InteractionStore, kind string) (bool, error) {
	postID, apiErr := parsePostID(r)
	if apiErr != nil {
		return false, apiErr
	}

	userID, err := ctxGetUserID(r.Context())
	if err != nil {
		return false, errs.Unauthorized
	}

	post, err := h.postRepo.FindByID(postID)
	if err != nil {
		return false, wrapDatabaseError("find post", "post", err)
	}
	if post == nil {
		return false, errs.NewNotFoundError("post not found")
	}

	active, err := services.Toggle(store, postID, userID)
	if err != nil {
		return false, wrapDatabaseError("toggle "+kind, kind, err)
	}
	return active, nil
}
