package collector

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ledgerquery/internal/models"
)

// Enrichment attaches related-entity projections to the fetched journals.
// Each requested flag costs one batched lookup over all journals; nothing is
// loaded implicitly, so a collector without flags fetches journal rows only.

func (c *GroupCollector) enrichJournals(ctx context.Context, journals []models.TransactionJournal) error {
	if !c.enrich.any() || len(journals) == 0 {
		return nil
	}

	journalIDs := make([]uuid.UUID, len(journals))
	for i := range journals {
		journalIDs[i] = journals[i].ID
	}

	if c.enrich.accounts {
		if err := c.attachAccounts(ctx, journals); err != nil {
			return err
		}
	}
	if c.enrich.budget {
		infos, err := c.entityInfos(ctx, &models.Budget{}, collectIDs(journals, func(j *models.TransactionJournal) *uuid.UUID { return j.BudgetID }))
		if err != nil {
			return fmt.Errorf("failed to enrich budgets: %w", err)
		}
		for i := range journals {
			if id := journals[i].BudgetID; id != nil {
				if info, ok := infos[*id]; ok {
					journals[i].BudgetInfo = &info
				}
			}
		}
	}
	if c.enrich.category {
		infos, err := c.entityInfos(ctx, &models.Category{}, collectIDs(journals, func(j *models.TransactionJournal) *uuid.UUID { return j.CategoryID }))
		if err != nil {
			return fmt.Errorf("failed to enrich categories: %w", err)
		}
		for i := range journals {
			if id := journals[i].CategoryID; id != nil {
				if info, ok := infos[*id]; ok {
					journals[i].CategoryInfo = &info
				}
			}
		}
	}
	if c.enrich.bill {
		infos, err := c.entityInfos(ctx, &models.Bill{}, collectIDs(journals, func(j *models.TransactionJournal) *uuid.UUID { return j.BillID }))
		if err != nil {
			return fmt.Errorf("failed to enrich bills: %w", err)
		}
		for i := range journals {
			if id := journals[i].BillID; id != nil {
				if info, ok := infos[*id]; ok {
					journals[i].BillInfo = &info
				}
			}
		}
	}
	if c.enrich.tags {
		if err := c.attachTags(ctx, journals, journalIDs); err != nil {
			return err
		}
	}
	if c.enrich.attachments {
		if err := c.attachAttachments(ctx, journals, journalIDs); err != nil {
			return err
		}
	}
	if c.enrich.notes {
		if err := c.attachNotes(ctx, journals, journalIDs); err != nil {
			return err
		}
	}
	return nil
}

func collectIDs(journals []models.TransactionJournal, pick func(*models.TransactionJournal) *uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for i := range journals {
		if id := pick(&journals[i]); id != nil {
			if _, ok := seen[*id]; !ok {
				seen[*id] = struct{}{}
				out = append(out, *id)
			}
		}
	}
	return out
}

// entityInfos fetches the id and name of the referenced rows of one related
// table. Budgets, categories and bills all project the same way.
func (c *GroupCollector) entityInfos(ctx context.Context, model interface{}, ids []uuid.UUID) (map[uuid.UUID]models.EntityInfo, error) {
	infos := make(map[uuid.UUID]models.EntityInfo, len(ids))
	if len(ids) == 0 {
		return infos, nil
	}
	var rows []models.EntityInfo
	err := c.db.WithContext(ctx).
		Model(model).
		Select("id, name").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		infos[row.ID] = row
	}
	return infos, nil
}

func (c *GroupCollector) attachAccounts(ctx context.Context, journals []models.TransactionJournal) error {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for i := range journals {
		for _, id := range []uuid.UUID{journals[i].SourceAccountID, journals[i].DestinationAccountID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	var accounts []models.Account
	err := c.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&accounts).Error
	if err != nil {
		return fmt.Errorf("failed to enrich accounts: %w", err)
	}
	infos := make(map[uuid.UUID]models.AccountInfo, len(accounts))
	for _, account := range accounts {
		infos[account.ID] = models.AccountInfo{ID: account.ID, Name: account.Name, Type: account.AccountType}
	}
	for i := range journals {
		if info, ok := infos[journals[i].SourceAccountID]; ok {
			journals[i].SourceAccountInfo = &info
		}
		if info, ok := infos[journals[i].DestinationAccountID]; ok {
			journals[i].DestinationAccountInfo = &info
		}
	}
	return nil
}

func (c *GroupCollector) attachTags(ctx context.Context, journals []models.TransactionJournal, journalIDs []uuid.UUID) error {
	var rows []struct {
		TransactionJournalID uuid.UUID
		ID                   uuid.UUID
		Tag                  string
	}
	err := c.db.WithContext(ctx).
		Table("journal_tags").
		Select("journal_tags.transaction_journal_id, tags.id, tags.tag").
		Joins("JOIN tags ON tags.id = journal_tags.tag_id AND tags.deleted_at IS NULL").
		Where("journal_tags.transaction_journal_id IN ?", journalIDs).
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to enrich tags: %w", err)
	}
	byJournal := make(map[uuid.UUID][]models.EntityInfo)
	for _, row := range rows {
		byJournal[row.TransactionJournalID] = append(byJournal[row.TransactionJournalID], models.EntityInfo{ID: row.ID, Name: row.Tag})
	}
	for i := range journals {
		journals[i].TagInfo = byJournal[journals[i].ID]
	}
	return nil
}

func (c *GroupCollector) attachAttachments(ctx context.Context, journals []models.TransactionJournal, journalIDs []uuid.UUID) error {
	var attachments []models.Attachment
	err := c.db.WithContext(ctx).
		Where("transaction_journal_id IN ?", journalIDs).
		Find(&attachments).Error
	if err != nil {
		return fmt.Errorf("failed to enrich attachments: %w", err)
	}
	byJournal := make(map[uuid.UUID][]models.AttachmentInfo)
	for _, a := range attachments {
		byJournal[a.TransactionJournalID] = append(byJournal[a.TransactionJournalID], models.AttachmentInfo{ID: a.ID, Filename: a.Filename, Title: a.Title})
	}
	for i := range journals {
		journals[i].AttachmentInfo = byJournal[journals[i].ID]
	}
	return nil
}

func (c *GroupCollector) attachNotes(ctx context.Context, journals []models.TransactionJournal, journalIDs []uuid.UUID) error {
	var notes []models.Note
	err := c.db.WithContext(ctx).
		Where("transaction_journal_id IN ?", journalIDs).
		Find(&notes).Error
	if err != nil {
		return fmt.Errorf("failed to enrich notes: %w", err)
	}
	byJournal := make(map[uuid.UUID]string, len(notes))
	for _, note := range notes {
		byJournal[note.TransactionJournalID] = note.Text
	}
	for i := range journals {
		if text, ok := byJournal[journals[i].ID]; ok {
			journals[i].NoteText = &text
		}
	}
	return nil
}
