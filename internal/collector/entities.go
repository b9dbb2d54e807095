package collector

import (
	"github.com/google/uuid"

	"ledgerquery/internal/models"
)

// Budget predicates. SetBudget and SetBudgets share one registry slot: the
// later call wins, they never merge.

// SetBudget limits the search to a single budget.
func (c *GroupCollector) SetBudget(budget *models.Budget) *GroupCollector {
	c.requireIDs(setBudgets, []uuid.UUID{budget.ID})
	return c
}

// SetBudgets limits the search to a set of budgets. Replaces any earlier
// budget constraint.
func (c *GroupCollector) SetBudgets(budgetIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setBudgets, budgetIDs)
	return c
}

// ExcludeBudget excludes a single budget.
func (c *GroupCollector) ExcludeBudget(budget *models.Budget) *GroupCollector {
	c.excludeIDs(setNotBudgets, []uuid.UUID{budget.ID})
	return c
}

// ExcludeBudgets excludes a set of budgets. Replaces any earlier budget
// exclusion.
func (c *GroupCollector) ExcludeBudgets(budgetIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotBudgets, budgetIDs)
	return c
}

// WithBudget limits results to journals booked against any budget.
func (c *GroupCollector) WithBudget() *GroupCollector {
	c.setPresence(presHasBudget)
	return c
}

// WithoutBudget limits results to journals without a budget.
func (c *GroupCollector) WithoutBudget() *GroupCollector {
	c.setPresence(presNoBudget)
	return c
}

// Category predicates, same shape as budgets.

func (c *GroupCollector) SetCategory(category *models.Category) *GroupCollector {
	c.requireIDs(setCategories, []uuid.UUID{category.ID})
	return c
}

func (c *GroupCollector) SetCategories(categoryIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setCategories, categoryIDs)
	return c
}

func (c *GroupCollector) ExcludeCategory(category *models.Category) *GroupCollector {
	c.excludeIDs(setNotCategories, []uuid.UUID{category.ID})
	return c
}

func (c *GroupCollector) ExcludeCategories(categoryIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotCategories, categoryIDs)
	return c
}

func (c *GroupCollector) WithCategory() *GroupCollector {
	c.setPresence(presHasCategory)
	return c
}

func (c *GroupCollector) WithoutCategory() *GroupCollector {
	c.setPresence(presNoCategory)
	return c
}

// Bill predicates.

func (c *GroupCollector) SetBill(bill *models.Bill) *GroupCollector {
	c.requireIDs(setBills, []uuid.UUID{bill.ID})
	return c
}

func (c *GroupCollector) SetBills(billIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setBills, billIDs)
	return c
}

func (c *GroupCollector) ExcludeBill(bill *models.Bill) *GroupCollector {
	c.excludeIDs(setNotBills, []uuid.UUID{bill.ID})
	return c
}

func (c *GroupCollector) ExcludeBills(billIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotBills, billIDs)
	return c
}

func (c *GroupCollector) WithBill() *GroupCollector {
	c.setPresence(presHasBill)
	return c
}

func (c *GroupCollector) WithoutBill() *GroupCollector {
	c.setPresence(presNoBill)
	return c
}

// Tag predicates.

// SetTag limits results to journals carrying this tag.
func (c *GroupCollector) SetTag(tag *models.Tag) *GroupCollector {
	c.requireIDs(setTags, []uuid.UUID{tag.ID})
	return c
}

// SetTags limits results to journals carrying at least one of the tags.
func (c *GroupCollector) SetTags(tagIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setTags, tagIDs)
	return c
}

// SetWithoutSpecificTags excludes journals carrying any of the tags.
func (c *GroupCollector) SetWithoutSpecificTags(tagIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotTags, tagIDs)
	return c
}

// HasAnyTag limits results to journals carrying at least one tag.
func (c *GroupCollector) HasAnyTag() *GroupCollector {
	c.setPresence(presAnyTags)
	return c
}

// WithoutTags limits results to journals carrying no tags at all.
func (c *GroupCollector) WithoutTags() *GroupCollector {
	c.setPresence(presNoTags)
	return c
}

// Currency predicates. SetCurrency matches on either the normal or the
// foreign currency of the journal; SetForeignCurrency on the foreign one only.

func (c *GroupCollector) SetCurrency(currency *models.TransactionCurrency) *GroupCollector {
	c.requireIDs(setCurrencies, []uuid.UUID{currency.ID})
	return c
}

func (c *GroupCollector) ExcludeCurrency(currency *models.TransactionCurrency) *GroupCollector {
	c.excludeIDs(setNotCurrencies, []uuid.UUID{currency.ID})
	return c
}

func (c *GroupCollector) SetForeignCurrency(currency *models.TransactionCurrency) *GroupCollector {
	c.requireIDs(setForeignCurrencies, []uuid.UUID{currency.ID})
	return c
}

func (c *GroupCollector) ExcludeForeignCurrency(currency *models.TransactionCurrency) *GroupCollector {
	c.excludeIDs(setNotForeignCurrencies, []uuid.UUID{currency.ID})
	return c
}

// Transaction type predicates.

// SetTypes limits the included transaction types. A later call replaces the
// earlier set.
func (c *GroupCollector) SetTypes(types []string) *GroupCollector {
	if len(types) == 0 {
		c.nothing = true
		return c
	}
	c.types = normalizeStrings(types)
	return c
}

// ExcludeTypes excludes the given transaction types.
func (c *GroupCollector) ExcludeTypes(types []string) *GroupCollector {
	c.excludeTypes = normalizeStrings(types)
	return c
}

// Id predicates.

// SetIds limits the result to a set of specific transaction groups.
func (c *GroupCollector) SetIds(groupIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setGroupIDs, groupIDs)
	return c
}

// ExcludeIds excludes a set of specific transaction groups.
func (c *GroupCollector) ExcludeIds(groupIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotGroupIDs, groupIDs)
	return c
}

// SetTransactionGroup limits the search to one specific transaction group.
func (c *GroupCollector) SetTransactionGroup(group *models.TransactionGroup) *GroupCollector {
	c.requireIDs(setGroupIDs, []uuid.UUID{group.ID})
	return c
}

// SetJournalIds limits the result to a set of specific journals.
func (c *GroupCollector) SetJournalIds(journalIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setJournalIDs, journalIDs)
	return c
}

// ExcludeJournalIds excludes a set of specific journals.
func (c *GroupCollector) ExcludeJournalIds(journalIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotJournalIDs, journalIDs)
	return c
}

// SetRecurrenceId limits results to journals created by this recurrence.
func (c *GroupCollector) SetRecurrenceId(recurrenceID uuid.UUID) *GroupCollector {
	c.requireIDs(setRecurrences, []uuid.UUID{recurrenceID})
	return c
}

// ExcludeRecurrenceId excludes journals created by this recurrence.
func (c *GroupCollector) ExcludeRecurrenceId(recurrenceID uuid.UUID) *GroupCollector {
	c.excludeIDs(setNotRecurrences, []uuid.UUID{recurrenceID})
	return c
}

// Presence predicates.

// HasAttachments limits results to journals with at least one attachment.
func (c *GroupCollector) HasAttachments() *GroupCollector {
	c.setPresence(presHasAttachments)
	return c
}

// HasNoAttachments limits results to journals without attachments.
func (c *GroupCollector) HasNoAttachments() *GroupCollector {
	c.setPresence(presNoAttachments)
	return c
}

// WithAnyNotes limits results to journals that have notes, whatever the text.
func (c *GroupCollector) WithAnyNotes() *GroupCollector {
	c.setPresence(presAnyNotes)
	return c
}

// WithoutNotes limits results to journals without notes.
func (c *GroupCollector) WithoutNotes() *GroupCollector {
	c.setPresence(presNoNotes)
	return c
}

// WithExternalID limits results to journals with any external id.
func (c *GroupCollector) WithExternalID() *GroupCollector {
	c.setPresence(presAnyExternalID)
	return c
}

// WithoutExternalID limits results to journals without an external id.
func (c *GroupCollector) WithoutExternalID() *GroupCollector {
	c.setPresence(presNoExternalID)
	return c
}

// WithExternalURL limits results to journals with any external URL.
func (c *GroupCollector) WithExternalURL() *GroupCollector {
	c.setPresence(presAnyExternalURL)
	return c
}

// WithoutExternalURL limits results to journals without an external URL.
func (c *GroupCollector) WithoutExternalURL() *GroupCollector {
	c.setPresence(presNoExternalURL)
	return c
}

// IsReconciled limits results to reconciled journals.
func (c *GroupCollector) IsReconciled() *GroupCollector {
	c.setPresence(presReconciled)
	return c
}

// IsNotReconciled limits results to journals that are not reconciled.
func (c *GroupCollector) IsNotReconciled() *GroupCollector {
	c.setPresence(presNotReconciled)
	return c
}
