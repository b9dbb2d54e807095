package repositories

import (
	"github.com/google/uuid"

	"ledgerquery/internal/models"
)

// GroupRepositoryInterface defines storage operations on transaction groups.
// A group and its journals are always written and removed together.
type GroupRepositoryInterface interface {
	Create(group *models.TransactionGroup) error
	GetByID(userID, groupID uuid.UUID) (*models.TransactionGroup, error)
	ListForUser(userID uuid.UUID, offset, limit int) ([]models.TransactionGroup, int64, error)
	Delete(userID, groupID uuid.UUID) error
}
