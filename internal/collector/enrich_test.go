package collector

import (
	"context"

	"ledgerquery/internal/models"
)

func (s *CollectorSuite) TestNoEnrichmentByDefault() {
	food := s.seedBudget("Food")
	s.seedJournal(journalSpec{description: "plain", budget: food, note: "remember this"})

	groups, err := s.collector().GetGroups(context.Background())
	s.Require().NoError(err)
	s.Require().Len(groups, 1)

	journal := groups[0].Journals[0]
	s.Nil(journal.SourceAccountInfo)
	s.Nil(journal.DestinationAccountInfo)
	s.Nil(journal.BudgetInfo)
	s.Nil(journal.NoteText)
	s.Empty(journal.TagInfo)
}

func (s *CollectorSuite) TestAccountEnrichment() {
	s.seedJournal(journalSpec{description: "spend"})

	groups, err := s.collector().WithAccountInformation().GetGroups(context.Background())
	s.Require().NoError(err)
	s.Require().Len(groups, 1)

	journal := groups[0].Journals[0]
	s.Require().NotNil(journal.SourceAccountInfo)
	s.Equal(s.checking.Name, journal.SourceAccountInfo.Name)
	s.Equal(models.AccountTypeAsset, journal.SourceAccountInfo.Type)
	s.Require().NotNil(journal.DestinationAccountInfo)
	s.Equal(s.groceries.Name, journal.DestinationAccountInfo.Name)
}

func (s *CollectorSuite) TestEntityEnrichment() {
	food := s.seedBudget("Food")
	going := s.seedCategory("Going out")
	power := s.seedBill("Electricity")
	s.seedJournal(journalSpec{description: "loaded", budget: food, category: going, bill: power})
	s.seedJournal(journalSpec{description: "bare", groupTitle: "second"})

	groups, err := s.collector().
		WithBudgetInformation().
		WithCategoryInformation().
		WithBillInformation().
		GetGroups(context.Background())
	s.Require().NoError(err)
	s.Require().Len(groups, 2)

	var loaded, bare *models.TransactionJournal
	for i := range groups {
		j := &groups[i].Journals[0]
		if j.Description == "loaded" {
			loaded = j
		} else {
			bare = j
		}
	}
	s.Require().NotNil(loaded)
	s.Require().NotNil(loaded.BudgetInfo)
	s.Equal("Food", loaded.BudgetInfo.Name)
	s.Require().NotNil(loaded.CategoryInfo)
	s.Equal("Going out", loaded.CategoryInfo.Name)
	s.Require().NotNil(loaded.BillInfo)
	s.Equal("Electricity", loaded.BillInfo.Name)

	s.Require().NotNil(bare)
	s.Nil(bare.BudgetInfo)
	s.Nil(bare.CategoryInfo)
	s.Nil(bare.BillInfo)
}

func (s *CollectorSuite) TestTagAndNoteEnrichment() {
	holiday := s.seedTag("holiday")
	work := s.seedTag("work")
	s.seedJournal(journalSpec{
		description: "tagged",
		tags:        []*models.Tag{holiday, work},
		note:        "booked via agency",
	})

	groups, err := s.collector().WithTagInformation().WithNotes().GetGroups(context.Background())
	s.Require().NoError(err)
	s.Require().Len(groups, 1)

	journal := groups[0].Journals[0]
	s.Len(journal.TagInfo, 2)
	names := make([]string, 0, len(journal.TagInfo))
	for _, tag := range journal.TagInfo {
		names = append(names, tag.Name)
	}
	s.ElementsMatch([]string{"holiday", "work"}, names)
	s.Require().NotNil(journal.NoteText)
	s.Equal("booked via agency", *journal.NoteText)
}

func (s *CollectorSuite) TestAttachmentEnrichment() {
	s.seedJournal(journalSpec{description: "with receipt", attachment: "receipt.pdf"})

	groups, err := s.collector().WithAttachmentInformation().GetGroups(context.Background())
	s.Require().NoError(err)
	s.Require().Len(groups, 1)

	journal := groups[0].Journals[0]
	s.Require().Len(journal.AttachmentInfo, 1)
	s.Equal("receipt.pdf", journal.AttachmentInfo[0].Filename)
}

func (s *CollectorSuite) TestEnrichmentDoesNotChangeMatching() {
	s.seedJournal(journalSpec{description: "only one"})

	plain, err := s.collector().GetGroups(context.Background())
	s.Require().NoError(err)
	enriched, err := s.collector().WithAccountInformation().WithNotes().GetGroups(context.Background())
	s.Require().NoError(err)
	s.Equal(len(plain), len(enriched))
	s.Equal(descriptions(plain), descriptions(enriched))
}
