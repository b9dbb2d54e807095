package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is a spending envelope journals can be booked against.
type Budget struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Budget) TableName() string { return "budgets" }

// Category labels journals for reporting.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Category) TableName() string { return "categories" }

// Bill is a recurring expected expense journals can be linked to.
type Bill struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Bill) TableName() string { return "bills" }

// Tag is a free-form label; journals and tags are many to many.
type Tag struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Tag       string         `gorm:"type:varchar(255);not null" json:"tag"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Tag) TableName() string { return "tags" }

// TransactionCurrency is a currency journals are denominated in.
type TransactionCurrency struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code          string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"code"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Symbol        string    `gorm:"type:varchar(10);not null" json:"symbol"`
	DecimalPlaces int       `gorm:"not null;default:2" json:"decimal_places"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (c *TransactionCurrency) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *TransactionCurrency) TableName() string { return "transaction_currencies" }

// Attachment is a file linked to a journal.
type Attachment struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TransactionJournalID uuid.UUID      `gorm:"type:uuid;not null;index" json:"transaction_journal_id"`
	Filename             string         `gorm:"type:varchar(255);not null" json:"filename"`
	Title                *string        `gorm:"type:varchar(255)" json:"title,omitempty"`
	Notes                *string        `gorm:"type:text" json:"notes,omitempty"`
	Size                 int64          `gorm:"not null;default:0" json:"size"`
	CreatedAt            time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a *Attachment) TableName() string { return "attachments" }

// Note is the free-text note on a journal; at most one per journal.
type Note struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TransactionJournalID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_journal_id"`
	Text                 string         `gorm:"type:text;not null" json:"text"`
	CreatedAt            time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (n *Note) TableName() string { return "notes" }

// JournalMeta is a named metadata value on a journal. Date-bearing fields
// (due_date, interest_date, ...) fill Date; text fields (sepa_ct_id) fill Value.
type JournalMeta struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TransactionJournalID uuid.UUID  `gorm:"type:uuid;not null;index:idx_journal_meta_name" json:"transaction_journal_id"`
	Name                 string     `gorm:"type:varchar(100);not null;index:idx_journal_meta_name" json:"name"`
	Date                 *time.Time `json:"date,omitempty"`
	Value                *string    `gorm:"type:text" json:"value,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`
}

func (m *JournalMeta) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *JournalMeta) TableName() string { return "journal_meta" }
