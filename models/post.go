package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post is a published article. Slug and ReadingTime are derived from Title
// and Content on write; they are never accepted from the client directly.
type Post struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"type:text;not null;index"`
	Content     string                      `json:"content" db:"content" gorm:"type:text;not null"`
	CoverImage  *string                     `json:"coverImage,omitempty" db:"cover_image" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	ReadingTime int                         `json:"readingTime" db:"reading_time" gorm:"not null;default:1"`
	AuthorID    uuid.UUID                   `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index"`
	Author      User                        `json:"-" gorm:"foreignKey:AuthorID;references:ID"`
	CreatedAt   time.Time                   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time                   `json:"updatedAt" db:"updated_at"`
	Comments    []Comment                   `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Likes       []Like                      `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Bookmarks   []Bookmark                  `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
