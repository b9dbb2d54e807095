package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccountTypeAsset     = "asset"
	AccountTypeExpense   = "expense"
	AccountTypeRevenue   = "revenue"
	AccountTypeLiability = "liability"
	AccountTypeCash      = "cash"
)

var ErrInvalidAccountType = errors.New("invalid account type")

// Account is one side of a journal leg: asset and cash accounts belong to the
// user, expense and revenue accounts model the outside world.
type Account struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	AccountType string         `gorm:"type:varchar(30);not null;index" json:"account_type"`
	IBAN        *string        `gorm:"type:varchar(36)" json:"iban,omitempty"`
	Active      bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if a.Name == "" {
		return errors.New("account name is required")
	}
	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeAsset, AccountTypeExpense, AccountTypeRevenue, AccountTypeLiability, AccountTypeCash:
		return true
	default:
		return false
	}
}
