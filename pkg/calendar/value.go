package calendar

// Value is implemented by Date and Timestamp.
type Value interface {
	Year() int
	Month() int
	Day() int
	// String returns the canonical string form accepted by the matching Parse function.
	String() string
	// Stamp returns seconds since the unix epoch.
	Stamp() int64
}

// Compare orders two values by their stamps. It returns -1, 0 or +1.
func Compare(a, b Value) int {
	switch sa, sb := a.Stamp(), b.Stamp(); {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// ValidDate reports whether year, month and day form a real calendar date.
func ValidDate(year, month, day int) bool {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysIn(year, month)
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
