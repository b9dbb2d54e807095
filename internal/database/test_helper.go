package database

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ledgerquery/internal/config"
	"ledgerquery/internal/models"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func CreateTestAccount(t *testing.T, db *DB, user *models.User, name, accountType string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:      user.ID,
		Name:        name,
		AccountType: accountType,
		Active:      true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

func CreateTestCurrency(t *testing.T, db *DB, code string) *models.TransactionCurrency {
	t.Helper()

	currency := &models.TransactionCurrency{
		Code:          code,
		Name:          code,
		Symbol:        code,
		DecimalPlaces: 2,
	}
	if err := db.Create(currency).Error; err != nil {
		t.Fatalf("failed to create test currency: %v", err)
	}
	return currency
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"journal_tags",
		"journal_meta",
		"attachments",
		"notes",
		"transaction_journals",
		"transaction_groups",
		"tags",
		"bills",
		"categories",
		"budgets",
		"transaction_currencies",
		"accounts",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
