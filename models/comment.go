package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is immutable once created; there is no edit or delete endpoint.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
