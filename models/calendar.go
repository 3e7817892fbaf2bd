package models

// CalendarDay is one selectable cell of the month grid.
type CalendarDay struct {
	Date    string `json:"date"` // "YYYY-MM-DD"
	Day     int    `json:"day"`  // day of month, 1-31
	InMonth bool   `json:"inMonth"`
	Past    bool   `json:"past"`
	Today   bool   `json:"today"`
}

// CalendarWeek is a full calendar row, columns indexed 0=Sunday..6=Saturday.
type CalendarWeek [7]CalendarDay

// MonthGrid is the rendered month: every week has all seven columns filled,
// with leading/trailing cells spilling into the adjacent months.
type MonthGrid struct {
	Year  int            `json:"year"`
	Month int            `json:"month"` // 1-12
	Weeks []CalendarWeek `json:"weeks"`
}
