// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: insert, list and search rows (internal/services/interfaces.go)
//   - DatabasePinger: store health for /health (internal/http/stores.go)
//
// ## Service Interfaces
//
//   - BookService: the list/add/search boundary used by controllers (internal/http/stores.go)
//   - BookSearcher: a single search, wrapped by SearchSession (internal/services/interfaces.go)
//   - BookLister: the snapshot the export scheduler writes (internal/scheduler/export_sync.go)
//
// # Adding a New Export Format
//
//  1. Add a Format constant and its renderer in internal/exporters/
//
//     const FormatCSV Format = "csv"
//
//     func GenerateCSV(books []entities.RankedBook, generatedAt time.Time) ([]byte, error)
//
//  2. Teach ParseFormat, Extension, ContentType and Export about it
//
//  3. Add a golden file under internal/exporters/testdata/golden/
//
// # Adding a New Presentation Surface
//
// Every surface goes through services.BookService so validation, ranking and
// the empty-query rule stay in one place:
//
//	service := services.NewBookService(books.NewRepository(db.DB))
//	list, err := service.ListAll(ctx)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
