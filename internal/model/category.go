package model

// Category represents a row in the `categories` table.  Names are
// truncated to 25 characters on import to fit the column.
type Category struct {
	ID   uint64 // categories.id
	Name string // categories.name
}
