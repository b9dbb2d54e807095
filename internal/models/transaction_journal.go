package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types. Every journal carries exactly one.
const (
	TransactionTypeWithdrawal     = "withdrawal"
	TransactionTypeDeposit        = "deposit"
	TransactionTypeTransfer       = "transfer"
	TransactionTypeOpeningBalance = "opening balance"
	TransactionTypeReconciliation = "reconciliation"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingAccounts        = errors.New("transaction requires source and destination accounts")
)

// TransactionJournal is one leg of a transaction group: a single dated
// movement between a source and a destination account. A group holds one or
// more journals; split transactions hold several, ordered by JournalOrder.
type TransactionJournal struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TransactionGroupID   uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_group_id"`
	TransactionType      string    `gorm:"type:varchar(50);not null;index" json:"transaction_type"`
	Description          string    `gorm:"type:varchar(1024);not null" json:"description"`
	Date                 time.Time `gorm:"not null;index" json:"date"`
	JournalOrder         int       `gorm:"not null;default:0" json:"journal_order"`

	Amount            decimal.Decimal  `gorm:"type:decimal(32,12);not null" json:"amount"`
	CurrencyID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"currency_id"`
	ForeignAmount     *decimal.Decimal `gorm:"type:decimal(32,12)" json:"foreign_amount,omitempty"`
	ForeignCurrencyID *uuid.UUID       `gorm:"type:uuid;index" json:"foreign_currency_id,omitempty"`

	SourceAccountID      uuid.UUID `gorm:"type:uuid;not null;index" json:"source_account_id"`
	DestinationAccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"destination_account_id"`

	BudgetID     *uuid.UUID `gorm:"type:uuid;index" json:"budget_id,omitempty"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	BillID       *uuid.UUID `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	RecurrenceID *uuid.UUID `gorm:"type:uuid;index" json:"recurrence_id,omitempty"`

	ExternalID        *string `gorm:"type:varchar(255)" json:"external_id,omitempty"`
	ExternalURL       *string `gorm:"type:varchar(1024)" json:"external_url,omitempty"`
	InternalReference *string `gorm:"type:varchar(255)" json:"internal_reference,omitempty"`
	Reconciled        bool    `gorm:"not null;default:false" json:"reconciled"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Tags        []Tag         `gorm:"many2many:journal_tags" json:"-"`
	Attachments []Attachment  `gorm:"foreignKey:TransactionJournalID" json:"-"`
	Note        *Note         `gorm:"foreignKey:TransactionJournalID" json:"-"`
	Meta        []JournalMeta `gorm:"foreignKey:TransactionJournalID" json:"-"`

	// Enrichment projections, filled on demand by the collector when the
	// matching enrichment flag is set. Never persisted.
	SourceAccountInfo      *AccountInfo     `gorm:"-" json:"source_account,omitempty"`
	DestinationAccountInfo *AccountInfo     `gorm:"-" json:"destination_account,omitempty"`
	BudgetInfo             *EntityInfo      `gorm:"-" json:"budget,omitempty"`
	CategoryInfo           *EntityInfo      `gorm:"-" json:"category,omitempty"`
	BillInfo               *EntityInfo      `gorm:"-" json:"bill,omitempty"`
	TagInfo                []EntityInfo     `gorm:"-" json:"tags,omitempty"`
	AttachmentInfo         []AttachmentInfo `gorm:"-" json:"attachments,omitempty"`
	NoteText               *string          `gorm:"-" json:"notes,omitempty"`
}

func (j *TransactionJournal) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Validate checks the journal's own invariants before persistence.
func (j *TransactionJournal) Validate() error {
	switch j.TransactionType {
	case TransactionTypeWithdrawal, TransactionTypeDeposit, TransactionTypeTransfer,
		TransactionTypeOpeningBalance, TransactionTypeReconciliation:
	default:
		return ErrInvalidTransactionType
	}
	if j.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if j.SourceAccountID == uuid.Nil || j.DestinationAccountID == uuid.Nil {
		return ErrMissingAccounts
	}
	return nil
}

func (j *TransactionJournal) TableName() string { return "transaction_journals" }
