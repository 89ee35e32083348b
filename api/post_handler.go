package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/inkwell-platform/inkwell-backend/database"
	"github.com/inkwell-platform/inkwell-backend/errs"
	"github.com/inkwell-platform/inkwell-backend/models"
	"github.com/inkwell-platform/inkwell-backend/services"
)

type postHandler struct {
	responder    Responder
	logger       zerolog.Logger
	postRepo     *database.PostRepo
	userRepo     *database.UserRepo
	commentRepo  *database.CommentRepo
	likeRepo     *database.LikeRepo
	bookmarkRepo *database.BookmarkRepo
}

func newPostHandler(postRepo *database.PostRepo, userRepo *database.UserRepo, commentRepo *database.CommentRepo, likeRepo *database.LikeRepo, bookmarkRepo *database.BookmarkRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		postRepo:     postRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

// parsePostID extracts and parses the postID path parameter.
func parsePostID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	postIDStr := chi.URLParam(r, "postID")
	if postIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing postID")
	}

	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid postID")
	}
	return postID, nil
}

// getAllPosts retrieves all posts newest-first, each annotated with its
// author's public fields and interaction counts derived from the related
// rows.
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		summaries := make([]postSummary, 0, len(posts))
		for _, post := range posts {
			summaries = append(summaries, newPostSummary(*post))
		}

		h.responder.WriteJSON(w, summaries)
	}
}

// getPost retrieves a post with its comments (newest-first) and its
// like/bookmark counts.
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parsePostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
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

		comments, err := h.commentRepo.FindByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		likeCount, err := h.likeRepo.CountByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count likes", "likes", err))
			return
		}

		bookmarkCount, err := h.bookmarkRepo.CountByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count bookmarks", "bookmarks", err))
			return
		}

		commentResponses := make([]commentResponse, 0, len(comments))
		for _, comment := range comments {
			commentResponses = append(commentResponses, newCommentResponse(*comment))
		}

		author := newAuthorRef(post.Author)
		author.Bio = post.Author.Bio

		h.responder.WriteJSON(w, postDetail{
			ID:          post.ID,
			Title:       post.Title,
			Slug:        post.Slug,
			Content:     post.Content,
			CoverImage:  post.CoverImage,
			Tags:        post.Tags,
			ReadingTime: post.ReadingTime,
			AuthorID:    post.AuthorID,
			CreatedAt:   post.CreatedAt,
			UpdatedAt:   post.UpdatedAt,
			Author:      author,
			Comments:    commentResponses,
			Counts: interactionCounts{
				Likes:     likeCount,
				Bookmarks: bookmarkCount,
			},
		})
	}
}

// createPost creates a new post. Slug and reading time are derived from the
// submitted title and content; they are never taken from the client.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		author, err := h.userRepo.FindByID(req.AuthorID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find author", "user", err))
			return
		}
		if author == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("author not found"))
			return
		}

		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}

		post := models.Post{
			Title:       req.Title,
			Slug:        services.GenerateSlug(req.Title),
			Content:     req.Content,
			CoverImage:  req.CoverImage,
			Tags:        datatypes.JSONSlice[string](tags),
			ReadingTime: services.CalculateReadingTime(req.Content),
			AuthorID:    req.AuthorID,
		}

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		// Reload to pick up the author association
		createdPost, err := h.postRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created post", "post", err))
			return
		}

		h.responder.WriteJSON(w, newPostSummary(*createdPost))
	}
}

// updatePost replaces a post's fields. Only the author may update; the slug
// is recomputed only when the title changed and the reading time only when
// the content changed, so URL-stable edits stay URL-stable.
func (h postHandler) updatePost() http.HandlerFunc {
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

		if post.AuthorID != userID {
			h.responder.WriteError(w, errs.NewForbiddenError("only the author may modify this post"))
			return
		}

		var req updatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Title != post.Title {
			post.Slug = services.GenerateSlug(req.Title)
		}
		if req.Content != post.Content {
			post.ReadingTime = services.CalculateReadingTime(req.Content)
		}

		post.Title = req.Title
		post.Content = req.Content
		if req.Tags != nil {
			post.Tags = datatypes.JSONSlice[string](*req.Tags)
		}
		if req.CoverImage != nil {
			post.CoverImage = req.CoverImage
		}

		if err := h.postRepo.Update(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update post", "post", err))
			return
		}

		updatedPost, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated post", "post", err))
			return
		}

		h.responder.WriteJSON(w, updatedPost)
	}
}

// deletePost removes a post and everything hanging off it. Only the author
// may delete.
func (h postHandler) deletePost() http.HandlerFunc {
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

		if post.AuthorID != userID {
			h.responder.WriteError(w, errs.NewForbiddenError("only the author may delete this post"))
			return
		}

		if err := h.postRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
