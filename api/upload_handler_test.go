package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitImageURL(t *testing.T) {
	d, router := newTestEnv(t)
	user := createTestUser(t, d, "Ada")

	w := doJSON(t, router, http.MethodPost, "/upload", user.ID.String(), map[string]string{
		"imageUrl": "https://images.example.com/cover.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "https://images.example.com/cover.png", body["url"])
}

func TestSubmitImageURLRejectsBadInput(t *testing.T) {
	d, router := newTestEnv(t)
	user := createTestUser(t, d, "Ada")

	tests := []struct {
		name     string
		imageURL string
	}{
		{"empty", ""},
		{"not a url", "not a url"},
		{"wrong scheme", "ftp://example.com/file.png"},
		{"missing host", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/upload", user.ID.String(), map[string]string{"imageUrl": tt.imageURL})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitImageURLRequiresSession(t *testing.T) {
	_, router := newTestEnv(t)

	w := doJSON(t, router, http.MethodPost, "/upload", "", map[string]string{
		"imageUrl": "https://images.example.com/cover.png",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
