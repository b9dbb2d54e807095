package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ledgerquery/internal/config"
	"ledgerquery/internal/models"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.TransactionCurrency{},
		&models.Budget{},
		&models.Category{},
		&models.Bill{},
		&models.Tag{},
		&models.TransactionGroup{},
		&models.TransactionJournal{},
		&models.JournalMeta{},
		&models.Attachment{},
		&models.Note{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_journals_user_date ON transaction_journals(user_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_journals_group ON transaction_journals(transaction_group_id)",
		"CREATE INDEX IF NOT EXISTS idx_journals_type ON transaction_journals(transaction_type)",
		"CREATE INDEX IF NOT EXISTS idx_journals_source_account ON transaction_journals(source_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_journals_destination_account ON transaction_journals(destination_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_journals_budget ON transaction_journals(budget_id) WHERE budget_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_journals_category ON transaction_journals(category_id) WHERE category_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_journals_bill ON transaction_journals(bill_id) WHERE bill_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_journals_recurrence ON transaction_journals(recurrence_id) WHERE recurrence_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_journals_description_lower ON transaction_journals(LOWER(description))",
		"CREATE INDEX IF NOT EXISTS idx_journals_deleted_at ON transaction_journals(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_groups_user ON transaction_groups(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_groups_deleted_at ON transaction_groups(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_meta_journal_name ON journal_meta(transaction_journal_id, name)",
		"CREATE INDEX IF NOT EXISTS idx_attachments_journal ON attachments(transaction_journal_id)",
		"CREATE INDEX IF NOT EXISTS idx_notes_journal ON notes(transaction_journal_id)",
		"CREATE INDEX IF NOT EXISTS idx_tags_user ON tags(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_type ON accounts(account_type)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
