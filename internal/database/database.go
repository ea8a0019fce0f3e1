package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/booklist/internal/entities"
)

// ErrStorageUnavailable wraps every failure to open, migrate or seed the store.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Options tunes how the store is opened.
type Options struct {
	// LogSQL enables gorm's statement logging.
	LogSQL bool
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the SQLite store at dbPath, makes sure the
// books table exists and seeds it when it is empty. It is meant to be called
// once per process; the returned handle is shared by all consumers.
func NewDatabase(dbPath string, opts Options) (*Database, error) {
	if err := ensureParentDir(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	logLevel := logger.Silent
	if opts.LogSQL {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to database: %v", ErrStorageUnavailable, err)
	}

	database := &Database{DB: db}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		database.Close()
		return nil, fmt.Errorf("%w: failed to migrate database: %v", ErrStorageUnavailable, err)
	}

	seeded, err := database.seedBooks(context.Background())
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("%w: failed to seed books: %v", ErrStorageUnavailable, err)
	}
	if seeded > 0 {
		log.Printf("Seeded %d books", seeded)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the underlying connection is still usable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// seedBooks inserts the default titles when the books table is empty and
// reports how many rows were written.
func (d *Database) seedBooks(ctx context.Context) (int, error) {
	var count int64
	if err := d.DB.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	books := make([]entities.Book, 0, len(DefaultTitles))
	for _, title := range DefaultTitles {
		books = append(books, entities.Book{Title: title})
	}

	// One row per statement keeps ids in declared order.
	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range books {
			if err := tx.Create(&books[i]).Error; err != nil {
				return fmt.Errorf("failed to create book %q: %w", books[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(books), nil
}

func ensureParentDir(dbPath string) error {
	if dbPath == "" || dbPath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return nil
}
