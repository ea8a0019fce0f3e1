package config

// Default paths and schedules
const (
	// DefaultDatabasePath is the default path for the book list database
	DefaultDatabasePath = "./booklist.db"

	// DefaultExportSchedule runs the periodic export hourly at :00
	DefaultExportSchedule = "0 * * * *"
)
