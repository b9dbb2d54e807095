package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerquery/internal/models"
)

// SearchRequest is the external shape of a transaction group search. The
// search service translates it into collector predicates after validation.
type SearchRequest struct {
	Page     int `json:"page" validate:"omitempty,min=1"`
	PageSize int `json:"page_size" validate:"omitempty,min=1,max=500"`

	// Date window on the transaction date, both ends inclusive.
	Start string `json:"start" validate:"omitempty,date_string"`
	End   string `json:"end" validate:"omitempty,date_string"`

	Types []string `json:"types" validate:"omitempty,dive,transaction_type"`

	AccountIDs            []uuid.UUID `json:"account_ids" validate:"omitempty"`
	SourceAccountIDs      []uuid.UUID `json:"source_account_ids" validate:"omitempty"`
	DestinationAccountIDs []uuid.UUID `json:"destination_account_ids" validate:"omitempty"`
	ExcludedAccountIDs    []uuid.UUID `json:"excluded_account_ids" validate:"omitempty"`

	BudgetIDs   []uuid.UUID `json:"budget_ids" validate:"omitempty"`
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"omitempty"`
	BillIDs     []uuid.UUID `json:"bill_ids" validate:"omitempty"`
	TagIDs      []uuid.UUID `json:"tag_ids" validate:"omitempty"`
	CurrencyID  *uuid.UUID  `json:"currency_id" validate:"omitempty"`

	DescriptionContains string   `json:"description_contains" validate:"omitempty,max=1024"`
	SearchWords         []string `json:"search_words" validate:"omitempty,dive,max=255"`
	NotesContain        string   `json:"notes_contain" validate:"omitempty,max=1024"`
	ExternalID          string   `json:"external_id" validate:"omitempty,max=255"`

	AmountExact string `json:"amount_exact" validate:"omitempty,amount_string"`
	AmountMin   string `json:"amount_min" validate:"omitempty,amount_string"`
	AmountMax   string `json:"amount_max" validate:"omitempty,amount_string"`

	HasAttachments *bool `json:"has_attachments" validate:"omitempty"`
	HasBudget      *bool `json:"has_budget" validate:"omitempty"`
	HasCategory    *bool `json:"has_category" validate:"omitempty"`
	Reconciled     *bool `json:"reconciled" validate:"omitempty"`

	IncludeAccounts    bool `json:"include_accounts"`
	IncludeBudgets     bool `json:"include_budgets"`
	IncludeCategories  bool `json:"include_categories"`
	IncludeBills       bool `json:"include_bills"`
	IncludeTags        bool `json:"include_tags"`
	IncludeAttachments bool `json:"include_attachments"`
	IncludeNotes       bool `json:"include_notes"`
}

// JournalResponse is one transaction leg of a group in an API response.
type JournalResponse struct {
	ID                 uuid.UUID               `json:"id"`
	TransactionType    string                  `json:"transaction_type"`
	Description        string                  `json:"description"`
	Date               time.Time               `json:"date"`
	Amount             decimal.Decimal         `json:"amount"`
	ForeignAmount      *decimal.Decimal        `json:"foreign_amount,omitempty"`
	SourceAccount      *models.AccountInfo     `json:"source_account,omitempty"`
	DestinationAccount *models.AccountInfo     `json:"destination_account,omitempty"`
	Budget             *models.EntityInfo      `json:"budget,omitempty"`
	Category           *models.EntityInfo      `json:"category,omitempty"`
	Bill               *models.EntityInfo      `json:"bill,omitempty"`
	Tags               []models.EntityInfo     `json:"tags,omitempty"`
	Attachments        []models.AttachmentInfo `json:"attachments,omitempty"`
	Notes              *string                 `json:"notes,omitempty"`
	Reconciled         bool                    `json:"reconciled"`
}

// GroupResponse is one whole transaction group in an API response.
type GroupResponse struct {
	ID           uuid.UUID         `json:"id"`
	Title        *string           `json:"title,omitempty"`
	Transactions []JournalResponse `json:"transactions"`
}

// SearchResponse is one page of matching groups.
type SearchResponse struct {
	Groups     []GroupResponse `json:"groups"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// JournalExport is one flat row of an export: the journal plus the group it
// belongs to, without nested structures.
type JournalExport struct {
	GroupID         uuid.UUID       `json:"group_id"`
	GroupTitle      *string         `json:"group_title,omitempty"`
	JournalID       uuid.UUID       `json:"journal_id"`
	TransactionType string          `json:"transaction_type"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	SourceAccount   string          `json:"source_account"`
	DestAccount     string          `json:"destination_account"`
	Budget          string          `json:"budget"`
	Category        string          `json:"category"`
	Notes           string          `json:"notes"`
}

// ToJournalResponse converts a journal model with its enrichment projections.
func ToJournalResponse(j *models.TransactionJournal) JournalResponse {
	return JournalResponse{
		ID:                 j.ID,
		TransactionType:    j.TransactionType,
		Description:        j.Description,
		Date:               j.Date,
		Amount:             j.Amount,
		ForeignAmount:      j.ForeignAmount,
		SourceAccount:      j.SourceAccountInfo,
		DestinationAccount: j.DestinationAccountInfo,
		Budget:             j.BudgetInfo,
		Category:           j.CategoryInfo,
		Bill:               j.BillInfo,
		Tags:               j.TagInfo,
		Attachments:        j.AttachmentInfo,
		Notes:              j.NoteText,
		Reconciled:         j.Reconciled,
	}
}

// ToGroupResponse converts a transaction group model.
func ToGroupResponse(g *models.TransactionGroup) GroupResponse {
	transactions := make([]JournalResponse, 0, len(g.Journals))
	for i := range g.Journals {
		transactions = append(transactions, ToJournalResponse(&g.Journals[i]))
	}
	return GroupResponse{
		ID:           g.ID,
		Title:        g.Title,
		Transactions: transactions,
	}
}
