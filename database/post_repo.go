package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-platform/inkwell-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts newest-first with their author and interaction
// rows preloaded. Counts are derived from the preloaded relations at read
// time; nothing is cached.
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.
		Preload("Author").
		Preload("Likes").
		Preload("Comments").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID with the author preloaded, or nil when
// no such post exists.
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post in the database
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post and its dependent comments, likes, and bookmarks in
// a single transaction so no orphan rows survive the post.
func (r *PostRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}
