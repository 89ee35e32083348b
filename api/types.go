package api

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-platform/inkwell-backend/errs"
	"github.com/inkwell-platform/inkwell-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	postHandler        postHandler
	commentHandler     commentHandler
	interactionHandler interactionHandler
	uploadHandler      uploadHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// Request bodies are decoded into one typed struct per endpoint and
// validated before any business logic runs.

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() *errs.ApiErr {
	if strings.TrimSpace(r.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if r.Password == "" {
		return errs.NewMissingRequiredFieldError("password")
	}
	return nil
}

type createPostRequest struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CoverImage *string   `json:"coverImage"`
	Tags       []string  `json:"tags"`
	AuthorID   uuid.UUID `json:"authorId"`
}

func (r createPostRequest) validate() *errs.ApiErr {
	if strings.TrimSpace(r.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	if r.AuthorID == uuid.Nil {
		return errs.NewMissingRequiredFieldError("authorId")
	}
	return nil
}

// updatePostRequest replaces title and content wholesale; tags and cover
// image are only replaced when present in the body.
type updatePostRequest struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CoverImage *string   `json:"coverImage"`
	Tags       *[]string `json:"tags"`
}

func (r updatePostRequest) validate() *errs.ApiErr {
	if strings.TrimSpace(r.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	return nil
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (r createCommentRequest) validate() *errs.ApiErr {
	if strings.TrimSpace(r.Content) == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	return nil
}

type uploadRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (r uploadRequest) validate() *errs.ApiErr {
	if r.ImageURL == "" {
		return errs.NewMissingRequiredFieldError("imageUrl")
	}
	parsed, err := url.Parse(r.ImageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errs.NewInvalidFieldError("imageUrl", "must be a well-formed http(s) URL")
	}
	return nil
}

// authorRef carries only the public fields of a user; email and password
// hash are never serialized into a response.
type authorRef struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar *string   `json:"avatar,omitempty"`
	Bio    *string   `json:"bio,omitempty"`
}

func newAuthorRef(u models.User) authorRef {
	return authorRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// registeredUser is the registration response: the stored user minus the
// password hash.
type registeredUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar *string   `json:"avatar,omitempty"`
}

// postSummary is a list/create response item: the post annotated with its
// author's public fields and row-counted interaction totals.
type postSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	ReadingTime int       `json:"readingTime"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	Author      authorRef `json:"author"`
	Tags        []string  `json:"tags"`
}

func newPostSummary(p models.Post) postSummary {
	return postSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
		ReadingTime: p.ReadingTime,
		Likes:       len(p.Likes),
		Comments:    len(p.Comments),
		CoverImage:  p.CoverImage,
		Author:      newAuthorRef(p.Author),
		Tags:        p.Tags,
	}
}

type interactionCounts struct {
	Likes     int64 `json:"likes"`
	Bookmarks int64 `json:"bookmarks"`
}

// postDetail is the single-post response: the full post, its author's
// public fields including bio, its comments newest-first, and like/bookmark
// counts.
type postDetail struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Content     string            `json:"content"`
	CoverImage  *string           `json:"coverImage,omitempty"`
	Tags        []string          `json:"tags"`
	ReadingTime int               `json:"readingTime"`
	AuthorID    uuid.UUID         `json:"authorId"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Author      authorRef         `json:"author"`
	Comments    []commentResponse `json:"comments"`
	Counts      interactionCounts `json:"_count"`
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	PostID    uuid.UUID `json:"postId"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Author    authorRef `json:"author"`
}

func newCommentResponse(c models.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		Author:    newAuthorRef(c.Author),
	}
}
