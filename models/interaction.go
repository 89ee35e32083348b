package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like and Bookmark are the two interaction kinds. At most one row exists
// per (post, author) pair; the composite unique index backstops concurrent
// toggles that both observe "absent".

type Like struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_author"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type Bookmark struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_post_author"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_post_author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
