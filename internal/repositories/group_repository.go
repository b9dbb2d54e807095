package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ledgerquery/internal/models"
)

var (
	ErrGroupNotFound = errors.New("transaction group not found")
)

// groupRepository implements GroupRepositoryInterface
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new transaction group repository
func NewGroupRepository(db *gorm.DB) GroupRepositoryInterface {
	return &groupRepository{
		db: db,
	}
}

// Create stores a group and its journals in one transaction. Journal order
// inside the group follows the slice order.
func (r *groupRepository) Create(group *models.TransactionGroup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		journals := group.Journals
		group.Journals = nil
		if err := tx.Create(group).Error; err != nil {
			return fmt.Errorf("failed to create transaction group: %w", err)
		}
		for i := range journals {
			journals[i].TransactionGroupID = group.ID
			journals[i].UserID = group.UserID
			journals[i].JournalOrder = i
			if err := journals[i].Validate(); err != nil {
				return fmt.Errorf("invalid journal: %w", err)
			}
			if err := tx.Create(&journals[i]).Error; err != nil {
				return fmt.Errorf("failed to create journal: %w", err)
			}
		}
		group.Journals = journals
		return nil
	})
}

// GetByID retrieves a group with its journals in split order.
func (r *groupRepository) GetByID(userID, groupID uuid.UUID) (*models.TransactionGroup, error) {
	var group models.TransactionGroup
	err := r.db.
		Where("id = ? AND user_id = ?", groupID, userID).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get transaction group: %w", err)
	}

	err = r.db.
		Where("transaction_group_id = ?", group.ID).
		Order("journal_order ASC, id").
		Find(&group.Journals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get group journals: %w", err)
	}
	return &group, nil
}

// ListForUser retrieves groups for a user with pagination, newest first.
func (r *groupRepository) ListForUser(userID uuid.UUID, offset, limit int) ([]models.TransactionGroup, int64, error) {
	var groups []models.TransactionGroup
	var total int64

	if err := r.db.Model(&models.TransactionGroup{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transaction groups: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transaction groups: %w", err)
	}

	return groups, total, nil
}

// Delete soft-deletes a group and all of its journals.
func (r *groupRepository) Delete(userID, groupID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND user_id = ?", groupID, userID).
			Delete(&models.TransactionGroup{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete transaction group: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}
		if err := tx.
			Where("transaction_group_id = ?", groupID).
			Delete(&models.TransactionJournal{}).Error; err != nil {
			return fmt.Errorf("failed to delete group journals: %w", err)
		}
		return nil
	})
}
