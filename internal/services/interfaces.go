package services

import (
	"context"
	"time"

	"ledgerquery/internal/dto"
	"ledgerquery/internal/models"
)

// TransactionSearchServiceInterface defines the contract for transaction
// group searches.
type TransactionSearchServiceInterface interface {
	SearchGroups(ctx context.Context, user *models.User, req dto.SearchRequest) (*dto.SearchResponse, error)
}

// ExportServiceInterface defines the contract for flat journal exports.
type ExportServiceInterface interface {
	ExportJournals(ctx context.Context, user *models.User, req dto.SearchRequest) ([]dto.JournalExport, error)
}

// MetricsRecorderInterface defines the contract for recording query metrics.
type MetricsRecorderInterface interface {
	RecordSearch(status string, duration time.Duration, groups int)
	RecordExport(status string, journals int)
}

// SeederInterface defines the contract for demo data generation.
type SeederInterface interface {
	Seed(ctx context.Context, user *models.User, groups int) error
}
