package models

// Category is an entry in the global category catalog. It is not
// user-scoped; budgeted categories copy its name rather than its ID.
type Category struct {
	Base
	Name string `gorm:"size:50;not null" json:"name"`
}
