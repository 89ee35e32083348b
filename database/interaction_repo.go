package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-platform/inkwell-backend/models"
)

// LikeRepo and BookmarkRepo both satisfy services.InteractionStore so the
// toggle algorithm is shared between the two interaction kinds.

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// Find returns the ID of the like for (post, author) if one exists.
func (r *LikeRepo) Find(postID, authorID uuid.UUID) (uuid.UUID, bool, error) {
	var like models.Like
	err := r.db.First(&like, "post_id = ? AND author_id = ?", postID, authorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return like.ID, true, nil
}

// Add inserts a like for (post, author). The composite unique index rejects
// a concurrent duplicate insert.
func (r *LikeRepo) Add(postID, authorID uuid.UUID) error {
	return r.db.Create(&models.Like{PostID: postID, AuthorID: authorID}).Error
}

// Remove deletes a like by its ID.
func (r *LikeRepo) Remove(id uuid.UUID) error {
	return r.db.Delete(&models.Like{}, "id = ?", id).Error
}

// CountByPost returns the number of likes on a post.
func (r *LikeRepo) CountByPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

type BookmarkRepo struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) *BookmarkRepo {
	return &BookmarkRepo{db}
}

// Find returns the ID of the bookmark for (post, author) if one exists.
func (r *BookmarkRepo) Find(postID, authorID uuid.UUID) (uuid.UUID, bool, error) {
	var bookmark models.Bookmark
	err := r.db.First(&bookmark, "post_id = ? AND author_id = ?", postID, authorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return bookmark.ID, true, nil
}

// Add inserts a bookmark for (post, author). The composite unique index
// rejects a concurrent duplicate insert.
func (r *BookmarkRepo) Add(postID, authorID uuid.UUID) error {
	return r.db.Create(&models.Bookmark{PostID: postID, AuthorID: authorID}).Error
}

// Remove deletes a bookmark by its ID.
func (r *BookmarkRepo) Remove(id uuid.UUID) error {
	return r.db.Delete(&models.Bookmark{}, "id = ?", id).Error
}

// CountByPost returns the number of bookmarks on a post.
func (r *BookmarkRepo) CountByPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
