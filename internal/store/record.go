package store

import "time"

const (
	CategoryCats = "cats"
	CategoryDogs = "dogs"
)

// Categories lists every category a generated record can carry.
var Categories = []string{CategoryCats, CategoryDogs}

// Record is a single pet entry persisted in the data file.
type Record struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}
