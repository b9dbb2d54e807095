package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ledgerquery/internal/models"
	"ledgerquery/internal/repositories"
)

// Seeder generates a plausible transaction history for a user: a handful of
// accounts, budgets, categories and tags, then the requested number of
// transaction groups spread over the past year. Intended for demos and load
// tests, never for production data.
type Seeder struct {
	db   *gorm.DB
	fake *gofakeit.Faker
	log  zerolog.Logger
}

func NewSeeder(db *gorm.DB, log zerolog.Logger) SeederInterface {
	return &Seeder{
		db:   db,
		fake: gofakeit.New(0),
		log:  log,
	}
}

func (s *Seeder) Seed(ctx context.Context, user *models.User, groups int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currency := &models.TransactionCurrency{
			Code:          s.fake.CurrencyShort(),
			Name:          s.fake.CurrencyLong(),
			Symbol:        "$",
			DecimalPlaces: 2,
		}
		if err := tx.Create(currency).Error; err != nil {
			return fmt.Errorf("failed to seed currency: %w", err)
		}

		checking := &models.Account{UserID: user.ID, Name: "Checking account", AccountType: models.AccountTypeAsset, Active: true}
		savings := &models.Account{UserID: user.ID, Name: "Savings account", AccountType: models.AccountTypeAsset, Active: true}
		if err := tx.Create(checking).Error; err != nil {
			return fmt.Errorf("failed to seed account: %w", err)
		}
		if err := tx.Create(savings).Error; err != nil {
			return fmt.Errorf("failed to seed account: %w", err)
		}

		var expenses []*models.Account
		for i := 0; i < 8; i++ {
			account := &models.Account{
				UserID:      user.ID,
				Name:        s.fake.Company(),
				AccountType: models.AccountTypeExpense,
				Active:      true,
			}
			if err := tx.Create(account).Error; err != nil {
				return fmt.Errorf("failed to seed account: %w", err)
			}
			expenses = append(expenses, account)
		}

		var budgets []*models.Budget
		for _, name := range []string{"Groceries", "Going out", "Bills"} {
			budget := &models.Budget{UserID: user.ID, Name: name, Active: true}
			if err := tx.Create(budget).Error; err != nil {
				return fmt.Errorf("failed to seed budget: %w", err)
			}
			budgets = append(budgets, budget)
		}

		var categories []*models.Category
		for i := 0; i < 5; i++ {
			category := &models.Category{UserID: user.ID, Name: s.fake.ProductCategory()}
			if err := tx.Create(category).Error; err != nil {
				return fmt.Errorf("failed to seed category: %w", err)
			}
			categories = append(categories, category)
		}

		var tags []*models.Tag
		for i := 0; i < 6; i++ {
			tag := &models.Tag{UserID: user.ID, Tag: s.fake.HackerAdjective()}
			if err := tx.Create(tag).Error; err != nil {
				return fmt.Errorf("failed to seed tag: %w", err)
			}
			tags = append(tags, tag)
		}

		repo := repositories.NewGroupRepository(tx)
		now := time.Now()
		for i := 0; i < groups; i++ {
			date := now.AddDate(0, 0, -s.fake.Number(0, 365))
			legs := 1
			if s.fake.Number(0, 9) == 0 {
				legs = 2
			}

			group := &models.TransactionGroup{UserID: user.ID}
			for leg := 0; leg < legs; leg++ {
				amount := decimal.NewFromFloat(s.fake.Price(1, 500)).Round(2)
				journal := models.TransactionJournal{
					TransactionType:      models.TransactionTypeWithdrawal,
					Description:          s.fake.ProductName(),
					Date:                 date,
					Amount:               amount,
					CurrencyID:           currency.ID,
					SourceAccountID:      checking.ID,
					DestinationAccountID: expenses[s.fake.Number(0, len(expenses)-1)].ID,
				}
				if s.fake.Bool() {
					budget := budgets[s.fake.Number(0, len(budgets)-1)]
					journal.BudgetID = &budget.ID
				}
				if s.fake.Bool() {
					category := categories[s.fake.Number(0, len(categories)-1)]
					journal.CategoryID = &category.ID
				}
				group.Journals = append(group.Journals, journal)
			}
			if err := repo.Create(group); err != nil {
				return fmt.Errorf("failed to seed group: %w", err)
			}

			for ji := range group.Journals {
				if s.fake.Number(0, 3) != 0 {
					continue
				}
				tag := tags[s.fake.Number(0, len(tags)-1)]
				if err := tx.Exec(
					"INSERT INTO journal_tags (transaction_journal_id, tag_id) VALUES (?, ?)",
					group.Journals[ji].ID, tag.ID,
				).Error; err != nil {
					return fmt.Errorf("failed to seed journal tag: %w", err)
				}
			}
		}

		s.log.Info().Int("groups", groups).Msg("seeded transaction history")
		return nil
	})
}
