package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionGroup bundles one or more journals into a single user-visible
// transaction. Groups are always returned whole: when any journal of a group
// matches a query, every journal of that group comes back with it.
type TransactionGroup struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     *string        `gorm:"type:varchar(1024)" json:"title,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Journals []TransactionJournal `gorm:"foreignKey:TransactionGroupID" json:"transactions"`
}

func (g *TransactionGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (g *TransactionGroup) TableName() string { return "transaction_groups" }
