package collector

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"ledgerquery/internal/models"
)

// The compiler turns the accumulated predicate registries into one query that
// selects the distinct group ids of matching journals. Joins are computed by
// a sweep over all registered predicates first, so each related table joins
// at most once no matter how many predicates reference it, and clauses are
// emitted in a fixed order so any permutation of the same predicate calls
// compiles to the identical statement.

type joinKind int

const (
	joinGroups joinKind = iota
	joinTags
	joinAttachments
	joinNotes
)

func metaAlias(name string) string {
	return "meta_" + name
}

// compileMatch builds the phase-one query: distinct transaction_group_id of
// every journal satisfying all predicates, scoped to the collector's user.
func (c *GroupCollector) compileMatch(ctx context.Context) *gorm.DB {
	q := c.db.WithContext(ctx).
		Model(&models.TransactionJournal{}).
		Distinct("transaction_journals.transaction_group_id").
		Where("transaction_journals.user_id = ?", c.user.ID)

	q = c.applyJoins(q)
	q = c.applyIDSets(q)
	q = c.applyTypes(q)
	q = c.applyStringFilters(q)
	q = c.applyAmountFilters(q)
	q = c.applyDateFilters(q)
	q = c.applyRangeFilters(q)
	q = c.applyPresence(q)
	q = c.applyMeta(q)
	return q
}

// requiredJoins sweeps every registry and reports which related tables the
// plan needs. Meta joins are keyed per field name; each name joins once even
// when several predicates address it.
func (c *GroupCollector) requiredJoins() (map[joinKind]struct{}, []string) {
	joins := make(map[joinKind]struct{})
	metaNames := make(map[string]struct{})

	if c.existsOnly {
		joins[joinGroups] = struct{}{}
	}
	if _, ok := c.idSets[setTags]; ok {
		joins[joinTags] = struct{}{}
	}
	for f := range c.stringFilters {
		switch f.field {
		case fieldNotes:
			joins[joinNotes] = struct{}{}
		case fieldAttachmentName, fieldAttachmentNotes:
			joins[joinAttachments] = struct{}{}
		}
	}
	for flag := range c.presence {
		switch flag {
		case presAnyTags:
			joins[joinTags] = struct{}{}
		case presHasAttachments, presNoAttachments:
			joins[joinAttachments] = struct{}{}
		case presAnyNotes, presNoNotes:
			joins[joinNotes] = struct{}{}
		}
	}
	for f := range c.dateFilters {
		if f.target == targetMeta {
			metaNames[string(f.meta)] = struct{}{}
		}
	}
	for f := range c.rangeFilters {
		if f.target == targetMeta {
			metaNames[string(f.meta)] = struct{}{}
		}
	}
	for field := range c.metaPresence {
		metaNames[string(field)] = struct{}{}
	}
	for name := range c.metaText {
		metaNames[name] = struct{}{}
	}

	names := make([]string, 0, len(metaNames))
	for name := range metaNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return joins, names
}

func (c *GroupCollector) applyJoins(q *gorm.DB) *gorm.DB {
	joins, metaNames := c.requiredJoins()

	if _, ok := joins[joinGroups]; ok {
		q = q.Joins("JOIN transaction_groups ON transaction_groups.id = transaction_journals.transaction_group_id AND transaction_groups.deleted_at IS NULL")
	}
	if _, ok := joins[joinTags]; ok {
		q = q.Joins("LEFT JOIN journal_tags ON journal_tags.transaction_journal_id = transaction_journals.id").
			Joins("LEFT JOIN tags ON tags.id = journal_tags.tag_id AND tags.deleted_at IS NULL")
	}
	if _, ok := joins[joinAttachments]; ok {
		q = q.Joins("LEFT JOIN attachments ON attachments.transaction_journal_id = transaction_journals.id AND attachments.deleted_at IS NULL")
	}
	if _, ok := joins[joinNotes]; ok {
		q = q.Joins("LEFT JOIN notes ON notes.transaction_journal_id = transaction_journals.id AND notes.deleted_at IS NULL")
	}
	for _, name := range metaNames {
		alias := metaAlias(name)
		q = q.Joins(fmt.Sprintf(
			"LEFT JOIN journal_meta AS %s ON %s.transaction_journal_id = transaction_journals.id AND %s.name = '%s'",
			alias, alias, alias, name,
		))
	}
	return q
}

func (c *GroupCollector) applyIDSets(q *gorm.DB) *gorm.DB {
	for field := idSetField(0); field < idSetFieldCount; field++ {
		ids, ok := c.idSets[field]
		if !ok {
			continue
		}
		switch field {
		case setAccountsEither:
			q = q.Where("(transaction_journals.source_account_id IN ? OR transaction_journals.destination_account_id IN ?)", ids, ids)
		case setAccountsSource:
			q = q.Where("transaction_journals.source_account_id IN ?", ids)
		case setAccountsDestination:
			q = q.Where("transaction_journals.destination_account_id IN ?", ids)
		case setAccountsBoth:
			q = q.Where("transaction_journals.source_account_id IN ? AND transaction_journals.destination_account_id IN ?", ids, ids)
		case setAccountsXor:
			q = q.Where(
				"((transaction_journals.source_account_id IN ? AND transaction_journals.destination_account_id NOT IN ?) OR (transaction_journals.source_account_id NOT IN ? AND transaction_journals.destination_account_id IN ?))",
				ids, ids, ids, ids,
			)
		case setAccountsNotEither:
			q = q.Where("transaction_journals.source_account_id NOT IN ? AND transaction_journals.destination_account_id NOT IN ?", ids, ids)
		case setAccountsNotSource:
			q = q.Where("transaction_journals.source_account_id NOT IN ?", ids)
		case setAccountsNotDestination:
			q = q.Where("transaction_journals.destination_account_id NOT IN ?", ids)
		case setBudgets:
			q = q.Where("transaction_journals.budget_id IN ?", ids)
		case setNotBudgets:
			q = q.Where("(transaction_journals.budget_id NOT IN ? OR transaction_journals.budget_id IS NULL)", ids)
		case setCategories:
			q = q.Where("transaction_journals.category_id IN ?", ids)
		case setNotCategories:
			q = q.Where("(transaction_journals.category_id NOT IN ? OR transaction_journals.category_id IS NULL)", ids)
		case setBills:
			q = q.Where("transaction_journals.bill_id IN ?", ids)
		case setNotBills:
			q = q.Where("(transaction_journals.bill_id NOT IN ? OR transaction_journals.bill_id IS NULL)", ids)
		case setTags:
			q = q.Where("tags.id IN ?", ids)
		case setNotTags:
			q = q.Where("transaction_journals.id NOT IN (SELECT journal_tags.transaction_journal_id FROM journal_tags WHERE journal_tags.tag_id IN ?)", ids)
		case setCurrencies:
			q = q.Where("(transaction_journals.currency_id IN ? OR transaction_journals.foreign_currency_id IN ?)", ids, ids)
		case setNotCurrencies:
			q = q.Where("(transaction_journals.currency_id NOT IN ? AND (transaction_journals.foreign_currency_id NOT IN ? OR transaction_journals.foreign_currency_id IS NULL))", ids, ids)
		case setForeignCurrencies:
			q = q.Where("transaction_journals.foreign_currency_id IN ?", ids)
		case setNotForeignCurrencies:
			q = q.Where("(transaction_journals.foreign_currency_id NOT IN ? OR transaction_journals.foreign_currency_id IS NULL)", ids)
		case setGroupIDs:
			q = q.Where("transaction_journals.transaction_group_id IN ?", ids)
		case setNotGroupIDs:
			q = q.Where("transaction_journals.transaction_group_id NOT IN ?", ids)
		case setJournalIDs:
			q = q.Where("transaction_journals.id IN ?", ids)
		case setNotJournalIDs:
			q = q.Where("transaction_journals.id NOT IN ?", ids)
		case setRecurrences:
			q = q.Where("transaction_journals.recurrence_id IN ?", ids)
		case setNotRecurrences:
			q = q.Where("(transaction_journals.recurrence_id NOT IN ? OR transaction_journals.recurrence_id IS NULL)", ids)
		}
	}
	return q
}

func (c *GroupCollector) applyTypes(q *gorm.DB) *gorm.DB {
	if len(c.types) > 0 {
		q = q.Where("transaction_journals.transaction_type IN ?", c.types)
	}
	if len(c.excludeTypes) > 0 {
		q = q.Where("transaction_journals.transaction_type NOT IN ?", c.excludeTypes)
	}
	return q
}

func stringColumn(field stringField) (col string, nullable bool) {
	switch field {
	case fieldDescription:
		return "transaction_journals.description", false
	case fieldNotes:
		return "notes.text", true
	case fieldExternalID:
		return "transaction_journals.external_id", true
	case fieldExternalURL:
		return "transaction_journals.external_url", true
	case fieldInternalReference:
		return "transaction_journals.internal_reference", true
	case fieldAttachmentName:
		return "attachments.filename", true
	default:
		return "attachments.notes", true
	}
}

// stringClause compiles one string predicate. Matching is case insensitive.
// Negated predicates on nullable columns must match rows where the value is
// absent: a journal without notes satisfies "notes do not contain X".
func stringClause(f stringFilter) (string, []interface{}) {
	col, nullable := stringColumn(f.field)
	value := strings.ToLower(f.value)

	var expr string
	switch f.op {
	case opExact:
		if f.negate {
			expr = "LOWER(" + col + ") <> ?"
		} else {
			expr = "LOWER(" + col + ") = ?"
		}
	default:
		switch f.op {
		case opStarts:
			value += "%"
		case opEnds:
			value = "%" + value
		case opContains:
			value = "%" + value + "%"
		}
		if f.negate {
			expr = "LOWER(" + col + ") NOT LIKE ?"
		} else {
			expr = "LOWER(" + col + ") LIKE ?"
		}
	}

	if f.negate && nullable {
		expr = "(" + expr + " OR " + col + " IS NULL)"
	}
	return expr, []interface{}{value}
}

func (c *GroupCollector) applyStringFilters(q *gorm.DB) *gorm.DB {
	filters := make([]stringFilter, 0, len(c.stringFilters))
	for f := range c.stringFilters {
		filters = append(filters, f)
	}
	sort.Slice(filters, func(i, j int) bool {
		a, b := filters[i], filters[j]
		if a.field != b.field {
			return a.field < b.field
		}
		if a.op != b.op {
			return a.op < b.op
		}
		if a.value != b.value {
			return a.value < b.value
		}
		return !a.negate && b.negate
	})
	for _, f := range filters {
		expr, args := stringClause(f)
		q = q.Where(expr, args...)
	}
	return q
}

func (c *GroupCollector) applyAmountFilters(q *gorm.DB) *gorm.DB {
	filters := make([]amountFilter, 0, len(c.amountFilters))
	for f := range c.amountFilters {
		filters = append(filters, f)
	}
	sort.Slice(filters, func(i, j int) bool {
		a, b := filters[i], filters[j]
		if a.field != b.field {
			return a.field < b.field
		}
		if a.op != b.op {
			return a.op < b.op
		}
		return a.value < b.value
	})
	for _, f := range filters {
		col := "transaction_journals.amount"
		nullable := false
		if f.field == amountForeign {
			col = "transaction_journals.foreign_amount"
			nullable = true
		}
		switch f.op {
		case cmpEqual:
			q = q.Where(col+" = ?", f.value)
		case cmpNotEqual:
			if nullable {
				q = q.Where("("+col+" <> ? OR "+col+" IS NULL)", f.value)
			} else {
				q = q.Where(col+" <> ?", f.value)
			}
		case cmpLess:
			q = q.Where(col+" < ?", f.value)
		case cmpMore:
			q = q.Where(col+" > ?", f.value)
		}
	}
	return q
}

func dateColumn(target dateTarget, meta MetaDateField) string {
	switch target {
	case targetTransactionDate:
		return "transaction_journals.date"
	case targetCreatedAt:
		return "transaction_journals.created_at"
	case targetUpdatedAt:
		return "transaction_journals.updated_at"
	default:
		return metaAlias(string(meta)) + ".date"
	}
}

// castDate renders a timestamp column as a calendar date, per dialect.
func (c *GroupCollector) castDate(col string) string {
	if c.db.Dialector.Name() == "sqlite" {
		return "DATE(" + col + ")"
	}
	return "CAST(" + col + " AS DATE)"
}

// datePart extracts the day, month or year component, per dialect.
func (c *GroupCollector) datePart(col string, gran granularity) string {
	if c.db.Dialector.Name() == "sqlite" {
		part := "'%d'"
		switch gran {
		case granMonth:
			part = "'%m'"
		case granYear:
			part = "'%Y'"
		}
		return "CAST(STRFTIME(" + part + ", " + col + ") AS INTEGER)"
	}
	part := "DAY"
	switch gran {
	case granMonth:
		part = "MONTH"
	case granYear:
		part = "YEAR"
	}
	return "EXTRACT(" + part + " FROM " + col + ")"
}

func (c *GroupCollector) applyDateFilters(q *gorm.DB) *gorm.DB {
	filters := make([]dateFilter, 0, len(c.dateFilters))
	for f := range c.dateFilters {
		filters = append(filters, f)
	}
	sort.Slice(filters, func(i, j int) bool {
		a, b := filters[i], filters[j]
		if a.target != b.target {
			return a.target < b.target
		}
		if a.meta != b.meta {
			return a.meta < b.meta
		}
		if a.gran != b.gran {
			return a.gran < b.gran
		}
		if a.op != b.op {
			return a.op < b.op
		}
		return a.value < b.value
	})
	for _, f := range filters {
		col := dateColumn(f.target, f.meta)

		var expr string
		var arg interface{}
		if f.gran == granExact {
			expr = c.castDate(col)
			arg = f.value
		} else {
			expr = c.datePart(col, f.gran)
			arg, _ = strconv.Atoi(f.value)
		}

		// Before and after are inclusive on dates, unlike the strict
		// amount comparisons.
		switch f.op {
		case cmpEqual:
			q = q.Where(expr+" = ?", arg)
		case cmpNotEqual:
			q = q.Where(expr+" <> ?", arg)
		case cmpLess:
			q = q.Where(expr+" <= ?", arg)
		case cmpMore:
			q = q.Where(expr+" >= ?", arg)
		}
	}
	return q
}

func (c *GroupCollector) applyRangeFilters(q *gorm.DB) *gorm.DB {
	filters := make([]rangeFilter, 0, len(c.rangeFilters))
	for f := range c.rangeFilters {
		filters = append(filters, f)
	}
	sort.Slice(filters, func(i, j int) bool {
		a, b := filters[i], filters[j]
		if a.target != b.target {
			return a.target < b.target
		}
		if a.meta != b.meta {
			return a.meta < b.meta
		}
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end < b.end
		}
		return !a.exclude && b.exclude
	})
	for _, f := range filters {
		col := dateColumn(f.target, f.meta)
		expr := c.castDate(col)
		if f.exclude {
			if f.target == targetMeta {
				// A journal without the meta field is outside any range.
				q = q.Where("("+expr+" < ? OR "+expr+" > ? OR "+col+" IS NULL)", f.start, f.end)
			} else {
				q = q.Where("("+expr+" < ? OR "+expr+" > ?)", f.start, f.end)
			}
			continue
		}
		q = q.Where(expr+" >= ? AND "+expr+" <= ?", f.start, f.end)
	}
	return q
}

func (c *GroupCollector) applyPresence(q *gorm.DB) *gorm.DB {
	for flag := presenceFlag(0); flag < presenceFlagCount; flag++ {
		if _, ok := c.presence[flag]; !ok {
			continue
		}
		switch flag {
		case presHasAttachments:
			q = q.Where("attachments.id IS NOT NULL")
		case presNoAttachments:
			q = q.Where("attachments.id IS NULL")
		case presAnyTags:
			q = q.Where("tags.id IS NOT NULL")
		case presNoTags:
			q = q.Where("transaction_journals.id NOT IN (SELECT journal_tags.transaction_journal_id FROM journal_tags)")
		case presAnyNotes:
			q = q.Where("notes.id IS NOT NULL")
		case presNoNotes:
			q = q.Where("notes.id IS NULL")
		case presAnyExternalID:
			q = q.Where("(transaction_journals.external_id IS NOT NULL AND transaction_journals.external_id <> '')")
		case presNoExternalID:
			q = q.Where("(transaction_journals.external_id IS NULL OR transaction_journals.external_id = '')")
		case presAnyExternalURL:
			q = q.Where("(transaction_journals.external_url IS NOT NULL AND transaction_journals.external_url <> '')")
		case presNoExternalURL:
			q = q.Where("(transaction_journals.external_url IS NULL OR transaction_journals.external_url = '')")
		case presReconciled:
			q = q.Where("transaction_journals.reconciled = ?", true)
		case presNotReconciled:
			q = q.Where("transaction_journals.reconciled = ?", false)
		case presHasBudget:
			q = q.Where("transaction_journals.budget_id IS NOT NULL")
		case presNoBudget:
			q = q.Where("transaction_journals.budget_id IS NULL")
		case presHasCategory:
			q = q.Where("transaction_journals.category_id IS NOT NULL")
		case presNoCategory:
			q = q.Where("transaction_journals.category_id IS NULL")
		case presHasBill:
			q = q.Where("transaction_journals.bill_id IS NOT NULL")
		case presNoBill:
			q = q.Where("transaction_journals.bill_id IS NULL")
		}
	}
	return q
}

func (c *GroupCollector) applyMeta(q *gorm.DB) *gorm.DB {
	fields := make([]string, 0, len(c.metaPresence))
	for field := range c.metaPresence {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	for _, field := range fields {
		q = q.Where(metaAlias(field) + ".date IS NOT NULL")
	}

	names := make([]string, 0, len(c.metaText))
	for name := range c.metaText {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		q = q.Where("LOWER("+metaAlias(name)+".value) = ?", strings.ToLower(c.metaText[name]))
	}
	return q
}
