package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostDerivesSlugAndReadingTime(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")

	w := doJSON(t, router, http.MethodPost, "/posts", "", map[string]any{
		"title":    "My First Post",
		"content":  wordsOfLen(250),
		"tags":     []string{"go", "testing"},
		"authorId": author.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var post struct {
		Slug        string   `json:"slug"`
		ReadingTime int      `json:"readingTime"`
		Likes       int      `json:"likes"`
		Comments    int      `json:"comments"`
		Tags        []string `json:"tags"`
		Author      struct {
			Name string `json:"name"`
		} `json:"author"`
	}
	decodeBody(t, w, &post)

	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, 2, post.ReadingTime)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 0, post.Comments)
	assert.Equal(t, []string{"go", "testing"}, post.Tags)
	assert.Equal(t, "Ada", post.Author.Name)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	_, router := newTestEnv(t)

	w := doJSON(t, router, http.MethodPost, "/posts", "", map[string]any{
		"title":    "Orphan",
		"content":  "body",
		"authorId": uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePostMissingFields(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing title", map[string]any{"content": "body", "authorId": author.ID}},
		{"missing content", map[string]any{"title": "T", "authorId": author.ID}},
		{"missing author", map[string]any{"title": "T", "content": "body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/posts", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetPostNotFound(t *testing.T) {
	_, router := newTestEnv(t)

	w := doJSON(t, router, http.MethodGet, "/posts/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPostDetail(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")
	postID := createTestPost(t, router, author.ID, "Detailed Post", wordsOfLen(10))

	w := doJSON(t, router, http.MethodGet, "/posts/"+postID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Slug   string `json:"slug"`
		Author struct {
			ID   uuid.UUID `json:"id"`
			Name string    `json:"name"`
		} `json:"author"`
		Comments []any `json:"comments"`
		Counts   struct {
			Likes     int `json:"likes"`
			Bookmarks int `json:"bookmarks"`
		} `json:"_count"`
	}
	decodeBody(t, w, &detail)

	assert.Equal(t, "detailed-post", detail.Slug)
	assert.Equal(t, author.ID, detail.Author.ID)
	assert.Equal(t, "Ada", detail.Author.Name)
	assert.Empty(t, detail.Comments)
	assert.Zero(t, detail.Counts.Likes)
	assert.Zero(t, detail.Counts.Bookmarks)

	// Public author fields only
	assert.NotContains(t, w.Body.String(), "example.com")
}

func TestListPostsNewestFirst(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")

	oldID := createTestPost(t, router, author.ID, "Old Post", "old body")
	backdatePost(t, d, oldID, time.Hour)
	newID := createTestPost(t, router, author.ID, "New Post", "new body")

	w := doJSON(t, router, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []struct {
		ID uuid.UUID `json:"id"`
	}
	decodeBody(t, w, &posts)

	require.Len(t, posts, 2)
	assert.Equal(t, newID, posts[0].ID)
	assert.Equal(t, oldID, posts[1].ID)
}

func TestUpdatePostRecomputePolicy(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")
	postID := createTestPost(t, router, author.ID, "Stable Title", wordsOfLen(250))
	token := author.ID.String()

	// Same title, new content: slug stays, reading time follows the content.
	w := doJSON(t, router, http.MethodPut, "/posts/"+postID.String(), token, map[string]any{
		"title":   "Stable Title",
		"content": wordsOfLen(450),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Slug        string `json:"slug"`
		ReadingTime int    `json:"readingTime"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "stable-title", updated.Slug)
	assert.Equal(t, 3, updated.ReadingTime)

	// Same content, new title: slug follows the title, reading time stays.
	w = doJSON(t, router, http.MethodPut, "/posts/"+postID.String(), token, map[string]any{
		"title":   "Fresh Title",
		"content": wordsOfLen(450),
	})
	require.Equal(t, http.StatusOK, w.Code)

	decodeBody(t, w, &updated)
	assert.Equal(t, "fresh-title", updated.Slug)
	assert.Equal(t, 3, updated.ReadingTime)
}

func TestUpdatePostAuthorization(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")
	other := createTestUser(t, d, "Eve")
	postID := createTestPost(t, router, author.ID, "Guarded", "body")

	payload := map[string]any{"title": "Guarded", "content": "edited"}

	// Anonymous caller is rejected before authorship is ever evaluated.
	w := doJSON(t, router, http.MethodPut, "/posts/"+postID.String(), "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A valid session without authorship is forbidden.
	w = doJSON(t, router, http.MethodPut, "/posts/"+postID.String(), other.ID.String(), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The author may edit.
	w = doJSON(t, router, http.MethodPut, "/posts/"+postID.String(), author.ID.String(), payload)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePostNotFound(t *testing.T) {
	d, router := newTestEnv(t)
	user := createTestUser(t, d, "Ada")

	w := doJSON(t, router, http.MethodPut, "/posts/"+uuid.NewString(), user.ID.String(), map[string]any{
		"title":   "T",
		"content": "c",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostAuthorization(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")
	other := createTestUser(t, d, "Eve")
	postID := createTestPost(t, router, author.ID, "Doomed", "body")

	w := doJSON(t, router, http.MethodDelete, "/posts/"+postID.String(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/posts/"+postID.String(), other.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/posts/"+postID.String(), author.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestDeletePostCascades(t *testing.T) {
	d, router := newTestEnv(t)
	author := createTestUser(t, d, "Ada")
	reader := createTestUser(t, d, "Eve")
	postID := createTestPost(t, router, author.ID, "Cascade", "body")

	// Hang a comment, a like, and a bookmark off the post.
	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/posts/%s/comments", postID), reader.ID.String(), map[string]string{"content": "nice"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/posts/%s/like", postID), reader.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/posts/%s/bookmark", postID), reader.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/posts/"+postID.String(), author.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/posts/"+postID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No orphan rows remain retrievable.
	comments, err := d.CommentRepo().FindByPost(postID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	likeCount, err := d.LikeRepo().CountByPost(postID)
	require.NoError(t, err)
	assert.Zero(t, likeCount)

	bookmarkCount, err := d.BookmarkRepo().CountByPost(postID)
	require.NoError(t, err)
	assert.Zero(t, bookmarkCount)
}
