package model

// Expense is a persisted spending record. ID is assigned by storage on
// insert; Created is a "2006-01-02 15:04:05" string in the configured
// timezone, stamped at persist time. Rows are never mutated afterwards.
type Expense struct {
	ID       int64
	Amount   int64
	Category string
	Comment  string
	FromUser string
	Created  string
}

// Category is seeded once at database initialization. MonthlyLimit of 0
// means no limit configured.
type Category struct {
	Name         string
	MonthlyLimit int64
}

// Draft is an in-progress expense waiting for its category.
type Draft struct {
	Amount   int64
	Comment  string
	FromUser string
}
