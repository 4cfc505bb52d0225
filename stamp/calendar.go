package stamp

// daysInMonth holds the longest possible length of each month.
// February is listed with its leap-year length; the year is checked
// separately once it is known.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// fitsMonth reports whether day can occur in month in some year.
func fitsMonth(day, month int) bool {
	return day <= daysInMonth[month-1]
}

// fitsYear rejects February 29 in common years.
func fitsYear(day, month, year int) bool {
	if day == 29 && month == 2 {
		return IsLeap(year)
	}
	return true
}

func inScope(i, min, max int) bool {
	return i >= min && i <= max
}
