package collector

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"ledgerquery/internal/database"
	"ledgerquery/internal/models"
)

// CollectorSuite defines the shared fixture for collector tests: one user
// with a small chart of accounts, plus helpers to seed journals.
type CollectorSuite struct {
	suite.Suite
	db       *database.DB
	user     *models.User
	currency *models.TransactionCurrency

	checking  *models.Account
	savings   *models.Account
	groceries *models.Account
	employer  *models.Account
}

func (s *CollectorSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.user = database.CreateTestUser(s.T(), s.db, "test@example.com")
	s.currency = database.CreateTestCurrency(s.T(), s.db, "EUR")

	s.checking = database.CreateTestAccount(s.T(), s.db, s.user, "Checking", models.AccountTypeAsset)
	s.savings = database.CreateTestAccount(s.T(), s.db, s.user, "Savings", models.AccountTypeAsset)
	s.groceries = database.CreateTestAccount(s.T(), s.db, s.user, "Groceries Inc", models.AccountTypeExpense)
	s.employer = database.CreateTestAccount(s.T(), s.db, s.user, "Employer", models.AccountTypeRevenue)
}

func (s *CollectorSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCollectorSuite(t *testing.T) {
	suite.Run(t, new(CollectorSuite))
}

func (s *CollectorSuite) collector() *GroupCollector {
	return New(s.db.DB).SetUser(s.user)
}

// journalSpec describes one journal to seed. Zero values fall back to a
// plain withdrawal from checking to the groceries account.
type journalSpec struct {
	user        *models.User
	group       *models.TransactionGroup
	groupTitle  string
	description string
	amount      string
	date        time.Time
	txType      string
	source      *models.Account
	destination *models.Account
	order       int

	budget     *models.Budget
	category   *models.Category
	bill       *models.Bill
	tags       []*models.Tag
	note       string
	attachment string
	externalID string
	reconciled bool

	metaDates  map[string]time.Time
	metaValues map[string]string
}

func (s *CollectorSuite) seedJournal(spec journalSpec) *models.TransactionJournal {
	user := spec.user
	if user == nil {
		user = s.user
	}
	group := spec.group
	if group == nil {
		group = &models.TransactionGroup{UserID: user.ID}
		if spec.groupTitle != "" {
			title := spec.groupTitle
			group.Title = &title
		}
		s.Require().NoError(s.db.Create(group).Error)
	}
	if spec.description == "" {
		spec.description = "Weekly shopping"
	}
	if spec.amount == "" {
		spec.amount = "10"
	}
	if spec.date.IsZero() {
		spec.date = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	if spec.txType == "" {
		spec.txType = models.TransactionTypeWithdrawal
	}
	if spec.source == nil {
		spec.source = s.checking
	}
	if spec.destination == nil {
		spec.destination = s.groceries
	}

	amount, err := decimal.NewFromString(spec.amount)
	s.Require().NoError(err)

	journal := &models.TransactionJournal{
		UserID:               user.ID,
		TransactionGroupID:   group.ID,
		TransactionType:      spec.txType,
		Description:          spec.description,
		Date:                 spec.date,
		JournalOrder:         spec.order,
		Amount:               amount,
		CurrencyID:           s.currency.ID,
		SourceAccountID:      spec.source.ID,
		DestinationAccountID: spec.destination.ID,
		Reconciled:           spec.reconciled,
	}
	if spec.budget != nil {
		journal.BudgetID = &spec.budget.ID
	}
	if spec.category != nil {
		journal.CategoryID = &spec.category.ID
	}
	if spec.bill != nil {
		journal.BillID = &spec.bill.ID
	}
	if spec.externalID != "" {
		externalID := spec.externalID
		journal.ExternalID = &externalID
	}
	s.Require().NoError(s.db.Create(journal).Error)

	for _, tag := range spec.tags {
		err := s.db.Exec(
			"INSERT INTO journal_tags (transaction_journal_id, tag_id) VALUES (?, ?)",
			journal.ID, tag.ID,
		).Error
		s.Require().NoError(err)
	}
	if spec.note != "" {
		note := &models.Note{TransactionJournalID: journal.ID, Text: spec.note}
		s.Require().NoError(s.db.Create(note).Error)
	}
	if spec.attachment != "" {
		attachment := &models.Attachment{TransactionJournalID: journal.ID, Filename: spec.attachment}
		s.Require().NoError(s.db.Create(attachment).Error)
	}
	for name, date := range spec.metaDates {
		d := date
		meta := &models.JournalMeta{TransactionJournalID: journal.ID, Name: name, Date: &d}
		s.Require().NoError(s.db.Create(meta).Error)
	}
	for name, value := range spec.metaValues {
		v := value
		meta := &models.JournalMeta{TransactionJournalID: journal.ID, Name: name, Value: &v}
		s.Require().NoError(s.db.Create(meta).Error)
	}

	return journal
}

func (s *CollectorSuite) seedBudget(name string) *models.Budget {
	budget := &models.Budget{UserID: s.user.ID, Name: name, Active: true}
	s.Require().NoError(s.db.Create(budget).Error)
	return budget
}

func (s *CollectorSuite) seedCategory(name string) *models.Category {
	category := &models.Category{UserID: s.user.ID, Name: name}
	s.Require().NoError(s.db.Create(category).Error)
	return category
}

func (s *CollectorSuite) seedBill(name string) *models.Bill {
	bill := &models.Bill{UserID: s.user.ID, Name: name, Active: true}
	s.Require().NoError(s.db.Create(bill).Error)
	return bill
}

func (s *CollectorSuite) seedTag(name string) *models.Tag {
	tag := &models.Tag{UserID: s.user.ID, Tag: name}
	s.Require().NoError(s.db.Create(tag).Error)
	return tag
}

// descriptions flattens the returned groups into the descriptions of every
// journal, in order.
func descriptions(groups []models.TransactionGroup) []string {
	var out []string
	for _, group := range groups {
		for _, journal := range group.Journals {
			out = append(out, journal.Description)
		}
	}
	return out
}

func (s *CollectorSuite) TestTerminalWithoutUserFails() {
	_, err := New(s.db.DB).GetGroups(context.Background())
	s.ErrorIs(err, ErrNoUser)
}

func (s *CollectorSuite) TestFindNothing() {
	s.seedJournal(journalSpec{})

	groups, err := s.collector().FindNothing().GetGroups(context.Background())
	s.NoError(err)
	s.Empty(groups)
}

func (s *CollectorSuite) TestEmptyRequiredSetMatchesNothing() {
	s.seedJournal(journalSpec{})

	groups, err := s.collector().SetBudgets(nil).GetGroups(context.Background())
	s.NoError(err)
	s.Empty(groups)
}

func (s *CollectorSuite) TestEmptyExclusionSetIsDropped() {
	s.seedJournal(journalSpec{})

	groups, err := s.collector().ExcludeBudgets(nil).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 1)
}

func (s *CollectorSuite) TestWholeGroupReturnedWhenOneLegMatches() {
	group := &models.TransactionGroup{UserID: s.user.ID}
	s.Require().NoError(s.db.Create(group).Error)
	s.seedJournal(journalSpec{group: group, description: "Groceries half", amount: "40", order: 0})
	s.seedJournal(journalSpec{group: group, description: "Household half", amount: "60", order: 1, destination: s.savings})

	groups, err := s.collector().DescriptionContains("groceries").GetGroups(context.Background())
	s.NoError(err)
	s.Require().Len(groups, 1)
	s.Len(groups[0].Journals, 2)
	s.Equal([]string{"Groceries half", "Household half"}, descriptions(groups))
}

func (s *CollectorSuite) TestGroupsOrderedNewestFirst() {
	s.seedJournal(journalSpec{description: "older", date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "newest", date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)})
	s.seedJournal(journalSpec{description: "middle", date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)})

	groups, err := s.collector().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"newest", "middle", "older"}, descriptions(groups))
}

func (s *CollectorSuite) TestJournalsInsideGroupFollowSplitOrder() {
	group := &models.TransactionGroup{UserID: s.user.ID}
	s.Require().NoError(s.db.Create(group).Error)
	s.seedJournal(journalSpec{group: group, description: "second leg", order: 1})
	s.seedJournal(journalSpec{group: group, description: "first leg", order: 0})

	groups, err := s.collector().GetGroups(context.Background())
	s.NoError(err)
	s.Require().Len(groups, 1)
	s.Equal([]string{"first leg", "second leg"}, descriptions(groups))
}

func (s *CollectorSuite) TestSplitOrderIgnoresRowCreationTime() {
	group := &models.TransactionGroup{UserID: s.user.ID}
	s.Require().NoError(s.db.Create(group).Error)
	first := s.seedJournal(journalSpec{group: group, description: "first leg", order: 0})
	second := s.seedJournal(journalSpec{group: group, description: "second leg", order: 1, destination: s.savings})

	// Make the first leg the older row so recency ordering would reverse
	// the legs.
	err := s.db.Model(&models.TransactionJournal{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)).Error
	s.Require().NoError(err)
	err = s.db.Model(&models.TransactionJournal{}).
		Where("id = ?", second.ID).
		Update("created_at", time.Date(2024, 3, 15, 12, 0, 5, 0, time.UTC)).Error
	s.Require().NoError(err)

	groups, err := s.collector().GetGroups(context.Background())
	s.NoError(err)
	s.Require().Len(groups, 1)
	s.Equal([]string{"first leg", "second leg"}, descriptions(groups))
}

func (s *CollectorSuite) TestQueriesAreScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.seedJournal(journalSpec{description: "mine"})
	s.seedJournal(journalSpec{user: other, description: "theirs"})

	groups, err := s.collector().GetGroups(context.Background())
	s.NoError(err)
	s.Equal([]string{"mine"}, descriptions(groups))
}

func (s *CollectorSuite) TestSetLimitCapsGroups() {
	for i := 0; i < 5; i++ {
		s.seedJournal(journalSpec{date: time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC)})
	}

	groups, err := s.collector().SetLimit(2).GetGroups(context.Background())
	s.NoError(err)
	s.Len(groups, 2)
}

func (s *CollectorSuite) TestExistsSkipsDeletedGroups() {
	kept := s.seedJournal(journalSpec{description: "kept"})
	dropped := s.seedJournal(journalSpec{description: "dropped", date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)})
	err := s.db.Where("id = ?", dropped.TransactionGroupID).Delete(&models.TransactionGroup{}).Error
	s.Require().NoError(err)

	groups, err := s.collector().Exists().GetGroups(context.Background())
	s.NoError(err)
	s.Require().Len(groups, 1)
	s.Equal(kept.TransactionGroupID, groups[0].ID)
}

func (s *CollectorSuite) TestGetExtractedJournalsFlattens() {
	group := &models.TransactionGroup{UserID: s.user.ID}
	s.Require().NoError(s.db.Create(group).Error)
	s.seedJournal(journalSpec{group: group, description: "split a", order: 0})
	s.seedJournal(journalSpec{group: group, description: "split b", order: 1})
	s.seedJournal(journalSpec{description: "single", date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)})

	journals, err := s.collector().GetExtractedJournals(context.Background())
	s.NoError(err)
	s.Len(journals, 3)
	s.Equal("single", journals[0].Description)
}

func (s *CollectorSuite) TestIncludeAndExcludeSameGroupMatchesNothing() {
	journal := s.seedJournal(journalSpec{})
	ids := []uuid.UUID{journal.TransactionGroupID}

	groups, err := s.collector().SetIds(ids).ExcludeIds(ids).GetGroups(context.Background())
	s.NoError(err)
	s.Empty(groups)
}
