package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns accounts, journals and the related entities. Every query is
// scoped to exactly one user.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
