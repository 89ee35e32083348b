package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-platform/inkwell-backend/database"
	"github.com/inkwell-platform/inkwell-backend/models"
)

// newTestEnv builds a router backed by a fresh in-memory database.
func newTestEnv(t *testing.T) (database.Database, *chi.Mux) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	d := database.New(db)
	return d, newRouter(d)
}

// doJSON performs a request against the router. An empty token means an
// anonymous caller; otherwise it is sent as the bearer session identity.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

var testUserSeq int

// createTestUser inserts a user directly through the repository.
func createTestUser(t *testing.T, d database.Database, name string) models.User {
	t.Helper()

	testUserSeq++
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@example.com", strings.ToLower(name), testUserSeq),
		Password: "not-a-real-hash",
	}
	require.NoError(t, d.UserRepo().Add(&user))
	return user
}

// createTestPost creates a post through the API so the derived fields go
// through the same path production writes do.
func createTestPost(t *testing.T, router http.Handler, authorID uuid.UUID, title, content string) uuid.UUID {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/posts", "", map[string]any{
		"title":    title,
		"content":  content,
		"tags":     []string{"go"},
		"authorId": authorID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	decodeBody(t, w, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

// wordsOfLen builds body text with exactly n whitespace-separated words.
func wordsOfLen(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", n))
}

// backdatePost shifts a post's creation time so ordering tests do not race
// the clock.
func backdatePost(t *testing.T, d database.Database, id uuid.UUID, by time.Duration) {
	t.Helper()

	post, err := d.PostRepo().FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, post)
	post.CreatedAt = post.CreatedAt.Add(-by)
	require.NoError(t, d.PostRepo().Update(post))
}
