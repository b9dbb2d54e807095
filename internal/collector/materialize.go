package collector

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"ledgerquery/internal/models"
)

// PaginatedGroups is one page of collected groups plus paging metadata.
type PaginatedGroups struct {
	Groups     []models.TransactionGroup `json:"groups"`
	Total      int                       `json:"total"`
	TotalPages int                       `json:"total_pages"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
}

// run executes the two-phase query. Phase one resolves the distinct ids of
// groups with at least one matching journal; phase two fetches every journal
// of those groups, so groups always come back whole even when only one leg of
// a split matched. Results are folded into groups ordered by their newest
// journal, with journals inside a group in split order.
func (c *GroupCollector) run(ctx context.Context) ([]models.TransactionGroup, error) {
	if c.user == nil {
		return nil, ErrNoUser
	}
	if c.nothing {
		return []models.TransactionGroup{}, nil
	}

	var groupIDs []uuid.UUID
	if err := c.compileMatch(ctx).Pluck("transaction_journals.transaction_group_id", &groupIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve matching groups: %w", err)
	}
	if len(groupIDs) == 0 {
		return []models.TransactionGroup{}, nil
	}

	// This order determines group order only; legs are re-sorted per group
	// while folding.
	var journals []models.TransactionJournal
	err := c.db.WithContext(ctx).
		Where("transaction_group_id IN ?", groupIDs).
		Where("user_id = ?", c.user.ID).
		Order("date DESC, created_at DESC, journal_order ASC, id").
		Find(&journals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group journals: %w", err)
	}

	if err := c.enrichJournals(ctx, journals); err != nil {
		return nil, err
	}

	groups, err := c.foldGroups(ctx, groupIDs, journals)
	if err != nil {
		return nil, err
	}
	if c.limit > 0 && len(groups) > c.limit {
		groups = groups[:c.limit]
	}

	c.log.Debug().
		Int("groups", len(groups)).
		Int("journals", len(journals)).
		Msg("collected transaction groups")
	return groups, nil
}

// foldGroups reassembles the flat journal rows into whole groups, keeping the
// first-appearance order of the sorted journals. Legs inside each group are
// sorted by journal order so splits always come back in split order, whatever
// the fetch order was.
func (c *GroupCollector) foldGroups(ctx context.Context, groupIDs []uuid.UUID, journals []models.TransactionJournal) ([]models.TransactionGroup, error) {
	var rows []models.TransactionGroup
	err := c.db.WithContext(ctx).
		Where("id IN ?", groupIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction groups: %w", err)
	}
	byID := make(map[uuid.UUID]models.TransactionGroup, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	groups := make([]models.TransactionGroup, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for _, journal := range journals {
		pos, ok := index[journal.TransactionGroupID]
		if !ok {
			row, found := byID[journal.TransactionGroupID]
			if !found {
				// The group row was deleted from under its journals.
				continue
			}
			row.Journals = nil
			pos = len(groups)
			index[journal.TransactionGroupID] = pos
			groups = append(groups, row)
		}
		groups[pos].Journals = append(groups[pos].Journals, journal)
	}

	for i := range groups {
		legs := groups[i].Journals
		sort.Slice(legs, func(a, b int) bool {
			if legs[a].JournalOrder != legs[b].JournalOrder {
				return legs[a].JournalOrder < legs[b].JournalOrder
			}
			return legs[a].ID.String() < legs[b].ID.String()
		})
	}
	return groups, nil
}

// GetGroups runs the query and returns every matching group.
func (c *GroupCollector) GetGroups(ctx context.Context) ([]models.TransactionGroup, error) {
	return c.run(ctx)
}

// GetPaginatedGroups runs the query and returns the requested page of groups.
// Pages are 1-indexed; a page past the last one is empty, not an error.
func (c *GroupCollector) GetPaginatedGroups(ctx context.Context) (*PaginatedGroups, error) {
	if c.page < 1 {
		return nil, ErrInvalidPage
	}
	if c.pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	groups, err := c.run(ctx)
	if err != nil {
		return nil, err
	}

	total := len(groups)
	totalPages := (total + c.pageSize - 1) / c.pageSize

	start := (c.page - 1) * c.pageSize
	end := start + c.pageSize
	switch {
	case start >= total:
		groups = []models.TransactionGroup{}
	case end > total:
		groups = groups[start:total]
	default:
		groups = groups[start:end]
	}

	return &PaginatedGroups{
		Groups:     groups,
		Total:      total,
		TotalPages: totalPages,
		Page:       c.page,
		PageSize:   c.pageSize,
	}, nil
}

// GetExtractedJournals runs the query and returns the journals of every
// matching group as a flat slice, preserving group order.
func (c *GroupCollector) GetExtractedJournals(ctx context.Context) ([]models.TransactionJournal, error) {
	groups, err := c.run(ctx)
	if err != nil {
		return nil, err
	}
	var journals []models.TransactionJournal
	for _, group := range groups {
		journals = append(journals, group.Journals...)
	}
	return journals, nil
}
