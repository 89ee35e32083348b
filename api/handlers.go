package api

import (
	"github.com/inkwell-platform/inkwell-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		authHandler:        newAuthHandler(database.UserRepo()),
		postHandler:        newPostHandler(database.PostRepo(), database.UserRepo(), database.CommentRepo(), database.LikeRepo(), database.BookmarkRepo()),
		commentHandler:     newCommentHandler(database.CommentRepo(), database.PostRepo()),
		interactionHandler: newInteractionHandler(database.PostRepo(), database.LikeRepo(), database.BookmarkRepo()),
		uploadHandler:      newUploadHandler(),
	}
}
