package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-platform/inkwell-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByPost returns all comments on a post newest-first with their authors
// preloaded.
func (r *CommentRepo) FindByPost(postID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by its ID with its author preloaded, or nil
// when no such comment exists.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// CountByPost returns the number of comments on a post.
func (r *CommentRepo) CountByPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
