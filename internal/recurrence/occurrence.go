package recurrence

import (
	"sort"
	"time"

	"github.com/whenmeet/availability-backend/internal/calendar"
)

const week = 7 * 24 * time.Hour

// Expand computes every day of month on which the rule fires, given the
// instant the rule was created. Week alignment is always computed relative to
// the creation instant, so the interval pattern keeps a stable phase no
// matter which month is requested. A month strictly before the creation month
// yields no occurrences.
func Expand(rule *Rule, created time.Time, month calendar.Month) ([]int, error) {
	if rule.Freq != FreqWeekly {
		return nil, &UnsupportedFrequencyError{Freq: rule.Freq}
	}

	created = created.UTC()
	createdMonth := calendar.MonthOf(calendar.FromTime(created))

	var anchor time.Time
	switch {
	case month.Before(createdMonth):
		return nil, nil
	case month == createdMonth:
		anchor = created
	default:
		anchor = month.First().Time()
	}

	seen := map[int]struct{}{}
	for _, code := range rule.ByDay {
		first := nextWeekday(anchor, weekdayNumbers[code])
		first = alignToInterval(first, created, rule.Interval)

		// The weekday shift or the interval alignment may have crossed the
		// month boundary; the loop condition drops such occurrences.
		for t := first; calendar.FromTime(t).In(month); t = t.AddDate(0, 0, rule.Interval*7) {
			seen[t.Day()] = struct{}{}
		}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)

	return days, nil
}

// nextWeekday returns the first instant at or after t whose ISO weekday is
// weekday. When t already falls on that weekday, t itself is returned.
func nextWeekday(t time.Time, weekday int) time.Time {
	current := int(t.Weekday())
	if current == 0 {
		current = 7
	}

	return t.AddDate(0, 0, (weekday-current+7)%7)
}

// alignToInterval advances t by whole weeks until its distance from the
// creation instant is an exact multiple of interval weeks. The distance is a
// raw duration diff, so the creation time-of-day participates in the
// calculation. See DESIGN.md for why this is kept instant-based.
func alignToInterval(t time.Time, created time.Time, interval int) time.Time {
	weeks := int(t.Sub(created) / week)
	if rem := weeks % interval; rem != 0 {
		return t.AddDate(0, 0, (interval-rem)*7)
	}

	return t
}
