package calendar

import "time"

// Date is a logical calendar day without time-of-day. All dates are
// UTC-normalized; Time returns midnight UTC of the day.
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

// Month identifies one calendar month.
type Month struct {
	Month time.Month
	Year  int
}

func FromTime(t time.Time) Date {
	t = t.UTC()
	return Date{Day: t.Day(), Month: t.Month(), Year: t.Year()}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the ISO weekday number, Monday=1..Sunday=7.
func (d Date) Weekday() int {
	wd := int(d.Time().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func (d Date) In(m Month) bool {
	return d.Month == m.Month && d.Year == m.Year
}

func MonthOf(d Date) Month {
	return Month{Month: d.Month, Year: d.Year}
}

func (m Month) First() Date {
	return Date{Day: 1, Month: m.Month, Year: m.Year}
}

// LastDay returns the number of days in the month, accounting for leap years.
func (m Month) LastDay() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Month: time.January, Year: m.Year + 1}
	}
	return Month{Month: m.Month + 1, Year: m.Year}
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Month: time.December, Year: m.Year - 1}
	}
	return Month{Month: m.Month - 1, Year: m.Year}
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}
