package database

// DefaultTitles are inserted, in this order, into an empty store.
var DefaultTitles = []string{
	"To Kill a Mockingbird",
	"1984",
	"Pride and Prejudice",
	"The Great Gatsby",
	"Moby-Dick",
	"The Catcher in the Rye",
	"The Lord of the Rings",
	"The Hobbit",
	"Harry Potter and the Sorcerer's Stone",
	"The Da Vinci Code",
}
