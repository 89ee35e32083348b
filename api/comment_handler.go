package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-platform/inkwell-backend/database"
	"github.com/inkwell-platform/inkwell-backend/errs"
	"github.com/inkwell-platform/inkwell-backend/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	postRepo    *database.PostRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, postRepo *database.PostRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// getComments lists a post's comments newest-first.
func (h commentHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parsePostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		comments, err := h.commentRepo.FindByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		responses := make([]commentResponse, 0, len(comments))
		for _, comment := range comments {
			responses = append(responses, newCommentResponse(*comment))
		}

		h.responder.WriteJSON(w, responses)
	}
}

// createComment adds a comment to an existing post. Any authenticated
// identity may comment; there is no ownership or moderation gate.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parsePostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		var req createCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment := models.Comment{
			Content:  req.Content,
			PostID:   postID,
			AuthorID: userID,
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		// Reload to pick up the author association
		createdComment, err := h.commentRepo.FindByID(comment.ID)
		if err != nil || createdComment == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created comment", "comment", err))
			return
		}

		h.responder.WriteJSON(w, newCommentResponse(*createdComment))
	}
}
