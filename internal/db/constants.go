package db

// SQL fragments and formats shared across queries
const (
	// sqlTimeFilterClause restricts runs to a datetime window
	sqlTimeFilterClause = "WHERE created_at >= datetime('now', ?)"

	// timeLayout matches SQLite's datetime() output so comparisons work
	timeLayout = "2006-01-02 15:04:05"
)
