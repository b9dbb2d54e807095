package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ledgerquery/internal/collector"
	"ledgerquery/internal/dto"
	apperrors "ledgerquery/internal/errors"
	"ledgerquery/internal/models"
	"ledgerquery/internal/validation"
)

const dateLayout = "2006-01-02"

// TransactionSearchService validates search requests, translates them into
// collector predicates and runs the query.
type TransactionSearchService struct {
	db        *gorm.DB
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	log       zerolog.Logger
}

func NewTransactionSearchService(db *gorm.DB, v *validation.Validator, metrics MetricsRecorderInterface, log zerolog.Logger) TransactionSearchServiceInterface {
	return &TransactionSearchService{
		db:        db,
		validator: v,
		metrics:   metrics,
		log:       log,
	}
}

func (s *TransactionSearchService) SearchGroups(ctx context.Context, user *models.User, req dto.SearchRequest) (*dto.SearchResponse, error) {
	start := time.Now()

	if fieldErrors := s.validator.Struct(req); fieldErrors != nil {
		traceID := uuid.NewString()
		resp := apperrors.NewValidationError(fieldErrors, traceID)
		s.metrics.RecordSearch("invalid", time.Since(start), 0)
		s.log.Warn().Str("trace_id", traceID).Msg("rejected invalid search request")
		return nil, fmt.Errorf("invalid search request: %s", resp.String())
	}

	c := buildCollector(s.db, user, req).WithLogger(s.log)
	page, err := c.GetPaginatedGroups(ctx)
	if err != nil {
		s.metrics.RecordSearch("error", time.Since(start), 0)
		return nil, fmt.Errorf("failed to search transaction groups: %w", err)
	}

	groups := make([]dto.GroupResponse, 0, len(page.Groups))
	for i := range page.Groups {
		groups = append(groups, dto.ToGroupResponse(&page.Groups[i]))
	}

	s.metrics.RecordSearch("success", time.Since(start), len(groups))
	return &dto.SearchResponse{
		Groups:     groups,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// buildCollector translates a validated request into collector predicates.
// Validation has already happened, so parse failures on dates and amounts
// cannot occur here.
func buildCollector(db *gorm.DB, user *models.User, req dto.SearchRequest) *collector.GroupCollector {
	c := collector.New(db).SetUser(user)

	if req.Page > 0 {
		c.SetPage(req.Page)
	}
	if req.PageSize > 0 {
		c.SetPageSize(req.PageSize)
	}

	if req.Start != "" && req.End != "" {
		startDate, _ := time.Parse(dateLayout, req.Start)
		endDate, _ := time.Parse(dateLayout, req.End)
		c.SetRange(startDate, endDate)
	} else if req.Start != "" {
		startDate, _ := time.Parse(dateLayout, req.Start)
		c.SetAfter(startDate)
	} else if req.End != "" {
		endDate, _ := time.Parse(dateLayout, req.End)
		c.SetBefore(endDate)
	}

	if len(req.Types) > 0 {
		c.SetTypes(req.Types)
	}
	if len(req.AccountIDs) > 0 {
		c.SetAccounts(req.AccountIDs)
	}
	if len(req.SourceAccountIDs) > 0 {
		c.SetSourceAccounts(req.SourceAccountIDs)
	}
	if len(req.DestinationAccountIDs) > 0 {
		c.SetDestinationAccounts(req.DestinationAccountIDs)
	}
	if len(req.ExcludedAccountIDs) > 0 {
		c.ExcludeAccounts(req.ExcludedAccountIDs)
	}
	if len(req.BudgetIDs) > 0 {
		c.SetBudgets(req.BudgetIDs)
	}
	if len(req.CategoryIDs) > 0 {
		c.SetCategories(req.CategoryIDs)
	}
	if len(req.BillIDs) > 0 {
		c.SetBills(req.BillIDs)
	}
	if len(req.TagIDs) > 0 {
		c.SetTags(req.TagIDs)
	}
	if req.CurrencyID != nil {
		c.SetCurrency(&models.TransactionCurrency{ID: *req.CurrencyID})
	}

	if req.DescriptionContains != "" {
		c.DescriptionContains(req.DescriptionContains)
	}
	if len(req.SearchWords) > 0 {
		c.SetSearchWords(req.SearchWords)
	}
	if req.NotesContain != "" {
		c.NotesContain(req.NotesContain)
	}
	if req.ExternalID != "" {
		c.SetExternalID(req.ExternalID)
	}

	if req.AmountExact != "" {
		amount, _ := decimal.NewFromString(req.AmountExact)
		c.AmountIs(amount)
	}
	if req.AmountMin != "" {
		amount, _ := decimal.NewFromString(req.AmountMin)
		c.AmountMore(amount)
	}
	if req.AmountMax != "" {
		amount, _ := decimal.NewFromString(req.AmountMax)
		c.AmountLess(amount)
	}

	if req.HasAttachments != nil {
		if *req.HasAttachments {
			c.HasAttachments()
		} else {
			c.HasNoAttachments()
		}
	}
	if req.HasBudget != nil {
		if *req.HasBudget {
			c.WithBudget()
		} else {
			c.WithoutBudget()
		}
	}
	if req.HasCategory != nil {
		if *req.HasCategory {
			c.WithCategory()
		} else {
			c.WithoutCategory()
		}
	}
	if req.Reconciled != nil {
		if *req.Reconciled {
			c.IsReconciled()
		} else {
			c.IsNotReconciled()
		}
	}

	if req.IncludeAccounts {
		c.WithAccountInformation()
	}
	if req.IncludeBudgets {
		c.WithBudgetInformation()
	}
	if req.IncludeCategories {
		c.WithCategoryInformation()
	}
	if req.IncludeBills {
		c.WithBillInformation()
	}
	if req.IncludeTags {
		c.WithTagInformation()
	}
	if req.IncludeAttachments {
		c.WithAttachmentInformation()
	}
	if req.IncludeNotes {
		c.WithNotes()
	}

	return c
}
