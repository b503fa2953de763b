package database

import (
	"github.com/wordnest/api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens (or creates) the local SQLite database file.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the words table and the indexes backing the three
// list orders (alphabetical, high-frequency, print queue).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Word{}); err != nil {
		return err
	}

	db.Exec("CREATE INDEX IF NOT EXISTS idx_words_selection_count ON words(selection_count DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_words_print_count ON words(print_count ASC)")

	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
