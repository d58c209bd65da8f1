package addressbook

import "time"

const day = 24 * time.Hour

// civil drops the clock and location of t, keeping its calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// anniversary returns the birthday of born in year. 29 February is observed
// on 28 February in common years.
func anniversary(born time.Time, year int) time.Time {
	m, d := born.Month(), born.Day()
	if m == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysUntilAnniversary counts whole days from today to the first anniversary
// of born strictly after today.
func daysUntilAnniversary(born, today time.Time) int {
	today = civil(today)

	next := anniversary(born, today.Year())
	if !next.After(today) {
		next = anniversary(born, today.Year()+1)
	}
	return int(next.Sub(today) / day)
}
