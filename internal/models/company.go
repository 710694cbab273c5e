package models

// Company mirrors a row of the companies table.
type Company struct {
	Code        string  `db:"code"`
	Name        string  `db:"name"`
	Description *string `db:"description"` // Nullable
}
