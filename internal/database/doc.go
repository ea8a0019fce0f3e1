// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations, seeding
//	├── seed.go          # Default titles written into an empty store
//	└── books/           # Book list, insert and search statements
//
// # Usage
//
//	db, err := database.NewDatabase("./booklist.db", database.Options{})
//	if errors.Is(err, database.ErrStorageUnavailable) {
//		// fatal at startup
//	}
//	repo := books.NewRepository(db.DB)
//	all, err := repo.ListAll(ctx)
//
// NewDatabase is called once by the entrypoint and the resulting handle is
// passed to every consumer.
package database
