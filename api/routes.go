package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Reads and registration are public;
// everything that mutates requires a session, enforced by the auth
// middleware before any handler runs.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/register", handlers.authHandler.register())
		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Post("/posts", handlers.postHandler.createPost())
		r.Get("/posts/{postID}", handlers.postHandler.getPost())
		r.Get("/posts/{postID}/comments", handlers.commentHandler.getComments())
	})

	// Session-gated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Put("/posts/{postID}", handlers.postHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.postHandler.deletePost())
		r.Post("/posts/{postID}/like", handlers.interactionHandler.toggleLike())
		r.Post("/posts/{postID}/bookmark", handlers.interactionHandler.toggleBookmark())
		r.Post("/posts/{postID}/comments", handlers.commentHandler.createComment())
		r.Post("/upload", handlers.uploadHandler.submitImageURL())
	})
}
