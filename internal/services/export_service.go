package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"ledgerquery/internal/dto"
	"ledgerquery/internal/models"
	"ledgerquery/internal/validation"
)

// ExportService flattens matching transaction groups into export rows with
// the account, budget, category and notes columns already resolved.
type ExportService struct {
	db        *gorm.DB
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	log       zerolog.Logger
}

func NewExportService(db *gorm.DB, v *validation.Validator, metrics MetricsRecorderInterface, log zerolog.Logger) ExportServiceInterface {
	return &ExportService{
		db:        db,
		validator: v,
		metrics:   metrics,
		log:       log,
	}
}

func (s *ExportService) ExportJournals(ctx context.Context, user *models.User, req dto.SearchRequest) ([]dto.JournalExport, error) {
	if fieldErrors := s.validator.Struct(req); fieldErrors != nil {
		s.metrics.RecordExport("invalid", 0)
		return nil, fmt.Errorf("invalid export request: %v", fieldErrors)
	}

	// Exports always resolve the flat columns, whatever the request asked.
	c := buildCollector(s.db, user, req).
		WithLogger(s.log).
		WithAccountInformation().
		WithBudgetInformation().
		WithCategoryInformation().
		WithNotes()

	groups, err := c.GetGroups(ctx)
	if err != nil {
		s.metrics.RecordExport("error", 0)
		return nil, fmt.Errorf("failed to export journals: %w", err)
	}

	var rows []dto.JournalExport
	for gi := range groups {
		group := &groups[gi]
		for ji := range group.Journals {
			journal := &group.Journals[ji]
			row := dto.JournalExport{
				GroupID:         group.ID,
				GroupTitle:      group.Title,
				JournalID:       journal.ID,
				TransactionType: journal.TransactionType,
				Description:     journal.Description,
				Date:            journal.Date,
				Amount:          journal.Amount,
			}
			if journal.SourceAccountInfo != nil {
				row.SourceAccount = journal.SourceAccountInfo.Name
			}
			if journal.DestinationAccountInfo != nil {
				row.DestAccount = journal.DestinationAccountInfo.Name
			}
			if journal.BudgetInfo != nil {
				row.Budget = journal.BudgetInfo.Name
			}
			if journal.CategoryInfo != nil {
				row.Category = journal.CategoryInfo.Name
			}
			if journal.NoteText != nil {
				row.Notes = *journal.NoteText
			}
			rows = append(rows, row)
		}
	}

	s.metrics.RecordExport("success", len(rows))
	s.log.Info().Int("journals", len(rows)).Msg("exported journals")
	return rows, nil
}
