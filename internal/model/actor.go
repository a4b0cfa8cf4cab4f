package model

// Actor represents a row in the `actors` table.  Actor identifiers come
// from the dataset and are deduplicated across the whole import; the
// first occurrence of an id wins.
type Actor struct {
	ID        uint64 // actors.id
	FirstName string // actors.first_name
	LastName  string // actors.last_name
}

// FullName joins the name parts the way they were split on import.
func (a Actor) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.FirstName + " " + a.LastName
}
