package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo     *UserRepo
	postRepo     *PostRepo
	commentRepo  *CommentRepo
	likeRepo     *LikeRepo
	bookmarkRepo *BookmarkRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:     NewUserRepo(db),
		postRepo:     NewPostRepo(db),
		commentRepo:  NewCommentRepo(db),
		likeRepo:     NewLikeRepo(db),
		bookmarkRepo: NewBookmarkRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) BookmarkRepo() *BookmarkRepo {
	return d.bookmarkRepo
}
