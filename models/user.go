package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered author. The password hash is never serialized.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	Avatar    *string   `json:"avatar,omitempty" db:"avatar" gorm:"type:text"`
	Bio       *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
