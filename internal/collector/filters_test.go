package collector

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerquery/internal/models"
)

func (s *CollectorSuite) TestDescriptionContainsIsCaseInsensitive() {
	s.seedJournal(journalSpec{description: "Coffee at the CORNER"})
	s.seedJournal(journalSpec{description: "Rent payment", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().DescriptionContains("corner").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"Coffee at the CORNER"}, descriptions(groups))
}

func (s *CollectorSuite) TestDescriptionExactAndNegation() {
	s.seedJournal(journalSpec{description: "Rent"})
	s.seedJournal(journalSpec{description: "Rent deposit", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().DescriptionIs("rent").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"Rent"}, descriptions(groups))

	groups, err = s.collector().DescriptionIsNot("rent").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"Rent deposit"}, descriptions(groups))
}

func (s *CollectorSuite) TestDescriptionStartsAndEnds() {
	s.seedJournal(journalSpec{description: "Monthly rent March"})
	s.seedJournal(journalSpec{description: "March groceries", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().DescriptionStarts("monthly").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"Monthly rent March"}, descriptions(groups))

	groups, err = s.collector().DescriptionEnds("groceries").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"March groceries"}, descriptions(groups))
}

func (s *CollectorSuite) TestSearchWordsRequireEveryWord() {
	s.seedJournal(journalSpec{description: "Monthly rent for the apartment"})
	s.seedJournal(journalSpec{description: "Monthly groceries", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetSearchWords([]string{"monthly", "rent"}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"Monthly rent for the apartment"}, descriptions(groups))
}

func (s *CollectorSuite) TestRepeatedIdenticalPredicateIsIdempotent() {
	s.seedJournal(journalSpec{description: "Coffee"})

	groups, err := s.collector().
		DescriptionContains("coffee").
		DescriptionContains("coffee").
		GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 1)
}

func (s *CollectorSuite) TestAmountComparisonsAreStrict() {
	s.seedJournal(journalSpec{description: "hundred", amount: "100"})

	groups, err := s.collector().AmountLess(decimal.NewFromInt(100)).GetGroups(context.Background())
	s.NoError(err)
	s.Empty(groups)

	groups, err = s.collector().AmountLess(decimal.RequireFromString("100.01")).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 1)

	groups, err = s.collector().AmountMore(decimal.NewFromInt(100)).GetGroups(context.Background())
	s.NoError(err)
	s.Empty(groups)

	groups, err = s.collector().AmountMore(decimal.RequireFromString("99.99")).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 1)
}

func (s *CollectorSuite) TestAmountIsMatchesExactDecimal() {
	s.seedJournal(journalSpec{description: "exact", amount: "12.34"})
	s.seedJournal(journalSpec{description: "close", amount: "12.35", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().AmountIs(decimal.RequireFromString("12.34")).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"exact"}, descriptions(groups))
}

func (s *CollectorSuite) TestDateRangeIsInclusiveOnBothEnds() {
	s.seedJournal(journalSpec{description: "on start", date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "inside", date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "on end", date: time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "outside", date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)})

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	groups, err := s.collector().SetRange(start, end).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"on end", "inside", "on start"}, descriptions(groups))
}

func (s *CollectorSuite) TestExcludeRangeKeepsTheRest() {
	s.seedJournal(journalSpec{description: "before", date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "inside", date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "after", date: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)})

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	groups, err := s.collector().ExcludeRange(start, end).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"after", "before"}, descriptions(groups))
}

func (s *CollectorSuite) TestBeforeAndAfterIncludeTheBoundary() {
	s.seedJournal(journalSpec{description: "on boundary", date: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "later", date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)})

	boundary := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	groups, err := s.collector().SetBefore(boundary).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"on boundary"}, descriptions(groups))

	groups, err = s.collector().SetAfter(boundary).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)
}

func (s *CollectorSuite) TestDayMonthYearGranularity() {
	s.seedJournal(journalSpec{description: "mid march", date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "mid june", date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "first of march", date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().DayIs(15).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)

	groups, err = s.collector().MonthIs(3).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)

	groups, err = s.collector().YearIs(2023).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"mid june"}, descriptions(groups))

	groups, err = s.collector().DayIs(15).MonthIs(3).YearIs(2024).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"mid march"}, descriptions(groups))
}

func (s *CollectorSuite) TestSourceAndDestinationAccounts() {
	s.seedJournal(journalSpec{description: "from checking"})
	s.seedJournal(journalSpec{description: "from savings", source: s.savings, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetSourceAccounts([]uuid.UUID{s.savings.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"from savings"}, descriptions(groups))

	groups, err = s.collector().SetDestinationAccounts([]uuid.UUID{s.groceries.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)
}

func (s *CollectorSuite) TestEitherSideAccountMatch() {
	s.seedJournal(journalSpec{description: "spend", source: s.checking, destination: s.groceries})
	s.seedJournal(journalSpec{description: "income", txType: models.TransactionTypeDeposit, source: s.employer, destination: s.checking, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "unrelated", source: s.savings, destination: s.groceries, date: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetAccounts([]uuid.UUID{s.checking.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)
}

func (s *CollectorSuite) TestXorAccountsSkipInternalTransfers() {
	s.seedJournal(journalSpec{description: "internal move", txType: models.TransactionTypeTransfer, source: s.checking, destination: s.savings})
	s.seedJournal(journalSpec{description: "spend", source: s.checking, destination: s.groceries, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	assets := []uuid.UUID{s.checking.ID, s.savings.ID}
	groups, err := s.collector().SetXorAccounts(assets).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"spend"}, descriptions(groups))
}

func (s *CollectorSuite) TestExcludeAccounts() {
	s.seedJournal(journalSpec{description: "spend"})
	s.seedJournal(journalSpec{description: "from savings", source: s.savings, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().ExcludeAccounts([]uuid.UUID{s.savings.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"spend"}, descriptions(groups))
}

func (s *CollectorSuite) TestBudgetFilterAndNullHandling() {
	food := s.seedBudget("Food")
	bills := s.seedBudget("Bills")
	s.seedJournal(journalSpec{description: "with food budget", budget: food})
	s.seedJournal(journalSpec{description: "with bills budget", budget: bills, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "no budget", date: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetBudgets([]uuid.UUID{food.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"with food budget"}, descriptions(groups))

	// Excluding a budget must keep journals that have no budget at all.
	groups, err = s.collector().ExcludeBudgets([]uuid.UUID{food.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"no budget", "with bills budget"}, descriptions(groups))

	groups, err = s.collector().WithoutBudget().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"no budget"}, descriptions(groups))

	groups, err = s.collector().WithBudget().GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)
}

func (s *CollectorSuite) TestSetBudgetsReplacesEarlierSet() {
	food := s.seedBudget("Food")
	bills := s.seedBudget("Bills")
	s.seedJournal(journalSpec{description: "food", budget: food})
	s.seedJournal(journalSpec{description: "bills", budget: bills, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().
		SetBudgets([]uuid.UUID{food.ID}).
		SetBudgets([]uuid.UUID{bills.ID}).
		GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"bills"}, descriptions(groups))
}

func (s *CollectorSuite) TestCategoryFilter() {
	going := s.seedCategory("Going out")
	s.seedJournal(journalSpec{description: "beers", category: going})
	s.seedJournal(journalSpec{description: "rent", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetCategory(going).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"beers"}, descriptions(groups))

	groups, err = s.collector().WithoutCategory().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"rent"}, descriptions(groups))
}

func (s *CollectorSuite) TestBillFilter() {
	electricity := s.seedBill("Electricity")
	s.seedJournal(journalSpec{description: "power bill", bill: electricity})
	s.seedJournal(journalSpec{description: "groceries", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetBill(electricity).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"power bill"}, descriptions(groups))

	// Excluding a bill keeps journals with no bill attached.
	groups, err = s.collector().ExcludeBill(electricity).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"groceries"}, descriptions(groups))

	groups, err = s.collector().WithoutBill().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"groceries"}, descriptions(groups))
}

func (s *CollectorSuite) TestTagFilters() {
	holiday := s.seedTag("holiday")
	work := s.seedTag("work")
	s.seedJournal(journalSpec{description: "flight", tags: []*models.Tag{holiday}})
	s.seedJournal(journalSpec{description: "laptop", tags: []*models.Tag{work}, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "untagged", date: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetTag(holiday).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"flight"}, descriptions(groups))

	groups, err = s.collector().SetTags([]uuid.UUID{holiday.ID, work.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)

	groups, err = s.collector().SetWithoutSpecificTags([]uuid.UUID{holiday.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"untagged", "laptop"}, descriptions(groups))

	groups, err = s.collector().HasAnyTag().GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)

	groups, err = s.collector().WithoutTags().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"untagged"}, descriptions(groups))
}

func (s *CollectorSuite) TestNotesFilters() {
	s.seedJournal(journalSpec{description: "with note", note: "Paid in CASH"})
	s.seedJournal(journalSpec{description: "no note", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().NotesContain("cash").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"with note"}, descriptions(groups))

	// A journal without notes satisfies the negated predicate.
	groups, err = s.collector().NotesDoNotContain("cash").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"no note"}, descriptions(groups))

	groups, err = s.collector().WithAnyNotes().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"with note"}, descriptions(groups))

	groups, err = s.collector().WithoutNotes().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"no note"}, descriptions(groups))
}

func (s *CollectorSuite) TestAttachmentFilters() {
	s.seedJournal(journalSpec{description: "with receipt", attachment: "receipt-2024.pdf"})
	s.seedJournal(journalSpec{description: "bare", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().HasAttachments().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"with receipt"}, descriptions(groups))

	groups, err = s.collector().HasNoAttachments().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"bare"}, descriptions(groups))

	groups, err = s.collector().AttachmentNameContains("receipt").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"with receipt"}, descriptions(groups))
}

func (s *CollectorSuite) TestExternalIDFilters() {
	s.seedJournal(journalSpec{description: "imported", externalID: "bank-123"})
	s.seedJournal(journalSpec{description: "manual", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetExternalID("bank-123").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"imported"}, descriptions(groups))

	groups, err = s.collector().WithExternalID().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"imported"}, descriptions(groups))

	groups, err = s.collector().WithoutExternalID().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"manual"}, descriptions(groups))
}

func (s *CollectorSuite) TestTypeFilters() {
	s.seedJournal(journalSpec{description: "spend"})
	s.seedJournal(journalSpec{description: "income", txType: models.TransactionTypeDeposit, source: s.employer, destination: s.checking, date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetTypes([]string{models.TransactionTypeDeposit}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"income"}, descriptions(groups))

	groups, err = s.collector().ExcludeTypes([]string{models.TransactionTypeDeposit}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"spend"}, descriptions(groups))

	groups, err = s.collector().SetTypes(nil).GetGroups(context.Background())
	s.NoError(err)
	s.Empty(groups)
}

func (s *CollectorSuite) TestReconciledFilters() {
	s.seedJournal(journalSpec{description: "reconciled", reconciled: true})
	s.seedJournal(journalSpec{description: "open", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().IsReconciled().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"reconciled"}, descriptions(groups))

	groups, err = s.collector().IsNotReconciled().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"open"}, descriptions(groups))
}

func (s *CollectorSuite) TestMetaDateFilters() {
	due := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	s.seedJournal(journalSpec{description: "invoice", metaDates: map[string]time.Time{"due_date": due}})
	s.seedJournal(journalSpec{description: "plain", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	groups, err := s.collector().SetMetaDateRange(start, end, MetaDueDate).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"invoice"}, descriptions(groups))

	groups, err = s.collector().WithMetaDate(MetaDueDate).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"invoice"}, descriptions(groups))

	// A journal without the meta field counts as outside any excluded range.
	groups, err = s.collector().ExcludeMetaDateRange(start, end, MetaDueDate).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"plain"}, descriptions(groups))

	groups, err = s.collector().MetaMonthIs(5, MetaDueDate).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"invoice"}, descriptions(groups))
}

func (s *CollectorSuite) TestSepaCTFilter() {
	s.seedJournal(journalSpec{description: "sepa transfer", metaValues: map[string]string{"sepa_ct_id": "CT-42"}})
	s.seedJournal(journalSpec{description: "other", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetSepaCT("ct-42").GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"sepa transfer"}, descriptions(groups))
}

func (s *CollectorSuite) TestCurrencyMatchesEitherSide() {
	usd := &models.TransactionCurrency{Code: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2}
	s.Require().NoError(s.db.Create(usd).Error)

	s.seedJournal(journalSpec{description: "euro spend"})
	foreign := s.seedJournal(journalSpec{description: "usd foreign", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})
	foreignAmount := decimal.RequireFromString("11.50")
	err := s.db.Model(&models.TransactionJournal{}).
		Where("id = ?", foreign.ID).
		Updates(map[string]interface{}{"foreign_amount": foreignAmount, "foreign_currency_id": usd.ID}).Error
	s.Require().NoError(err)

	groups, err := s.collector().SetCurrency(usd).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"usd foreign"}, descriptions(groups))

	groups, err = s.collector().SetForeignCurrency(usd).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"usd foreign"}, descriptions(groups))

	groups, err = s.collector().ExcludeCurrency(usd).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"euro spend"}, descriptions(groups))

	groups, err = s.collector().SetCurrency(s.currency).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)
}

func (s *CollectorSuite) TestJournalIDFilters() {
	first := s.seedJournal(journalSpec{description: "first"})
	s.seedJournal(journalSpec{description: "second", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetJournalIds([]uuid.UUID{first.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"first"}, descriptions(groups))

	groups, err = s.collector().ExcludeJournalIds([]uuid.UUID{first.ID}).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"second"}, descriptions(groups))
}

func (s *CollectorSuite) TestRecurrenceFilters() {
	recurrenceID := uuid.New()
	recurring := s.seedJournal(journalSpec{description: "subscription"})
	err := s.db.Model(&models.TransactionJournal{}).
		Where("id = ?", recurring.ID).
		Update("recurrence_id", recurrenceID).Error
	s.Require().NoError(err)
	s.seedJournal(journalSpec{description: "one-off", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().SetRecurrenceId(recurrenceID).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"subscription"}, descriptions(groups))

	// Journals without a recurrence survive the exclusion.
	groups, err = s.collector().ExcludeRecurrenceId(recurrenceID).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"one-off"}, descriptions(groups))
}

func (s *CollectorSuite) TestObjectDateFilters() {
	journal := s.seedJournal(journalSpec{description: "old row"})
	created := time.Date(2023, 7, 1, 10, 0, 0, 0, time.UTC)
	err := s.db.Model(&models.TransactionJournal{}).
		Where("id = ?", journal.ID).
		Update("created_at", created).Error
	s.Require().NoError(err)
	s.seedJournal(journalSpec{description: "fresh row", date: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().ObjectYearIs(2023, ObjectCreatedAt).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"old row"}, descriptions(groups))

	groups, err = s.collector().SetObjectBefore(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), ObjectCreatedAt).GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"old row"}, descriptions(groups))
}
