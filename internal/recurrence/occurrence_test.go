package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenmeet/availability-backend/internal/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandEveryWeek(t *testing.T) {
	// created on Monday 2024-01-01, fires every Monday and Wednesday
	rule := &Rule{Freq: FreqWeekly, Interval: 1, ByDay: []string{"MO", "WE"}}

	days, err := Expand(rule, date(2024, time.January, 1), calendar.Month{Month: time.January, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 8, 10, 15, 17, 22, 24, 29, 31}, days)
}

func TestExpandBiweekly(t *testing.T) {
	// created on Tuesday 2024-01-02, every second Tuesday
	rule := &Rule{Freq: FreqWeekly, Interval: 2, ByDay: []string{"TU"}}
	created := date(2024, time.January, 2)

	jan, err := Expand(rule, created, calendar.Month{Month: time.January, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 16, 30}, jan)

	feb, err := Expand(rule, created, calendar.Month{Month: time.February, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, []int{13, 27}, feb)
}

func TestExpandKeepsPhaseAcrossMonths(t *testing.T) {
	// consecutive months stay exactly interval weeks apart at the boundary
	rule := &Rule{Freq: FreqWeekly, Interval: 3, ByDay: []string{"FR"}}
	created := date(2024, time.January, 5) // a Friday

	var all []time.Time
	month := calendar.Month{Month: time.January, Year: 2024}
	for i := 0; i < 4; i++ {
		days, err := Expand(rule, created, month)
		require.NoError(t, err)
		for _, d := range days {
			all = append(all, date(month.Year, month.Month, d))
		}
		month = month.Next()
	}

	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, 21*24*time.Hour, all[i].Sub(all[i-1]))
	}
}

func TestExpandMonthBeforeCreation(t *testing.T) {
	rule := &Rule{Freq: FreqWeekly, Interval: 1, ByDay: []string{"MO"}}

	days, err := Expand(rule, date(2024, time.March, 15), calendar.Month{Month: time.February, Year: 2024})
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestExpandCreationMonthStartsAtCreation(t *testing.T) {
	// created mid-month: earlier weekdays of the same month never fire
	rule := &Rule{Freq: FreqWeekly, Interval: 1, ByDay: []string{"MO"}}

	days, err := Expand(rule, date(2024, time.January, 17), calendar.Month{Month: time.January, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, []int{22, 29}, days)
}

func TestExpandDaysWithinMonth(t *testing.T) {
	rule := &Rule{Freq: FreqWeekly, Interval: 1, ByDay: []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}}
	created := date(2023, time.June, 10)

	for _, month := range []calendar.Month{
		{Month: time.June, Year: 2023},
		{Month: time.July, Year: 2023},
		{Month: time.February, Year: 2024},
	} {
		days, err := Expand(rule, created, month)
		require.NoError(t, err)
		for _, d := range days {
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, month.LastDay())
		}
	}
}

func TestExpandAlignmentUsesCreationInstant(t *testing.T) {
	// The weeks-since-creation diff is taken from the literal creation
	// instant, so time-of-day shifts the interval phase near week
	// boundaries. Locked here on purpose.
	rule := &Rule{Freq: FreqWeekly, Interval: 2, ByDay: []string{"MO"}}
	feb := calendar.Month{Month: time.February, Year: 2024}

	midnight, err := Expand(rule, date(2024, time.January, 1), feb)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 26}, midnight)

	noon, err := Expand(rule, date(2024, time.January, 1).Add(12*time.Hour), feb)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 19}, noon)
}

func TestExpandUnsupportedFrequency(t *testing.T) {
	rule := &Rule{Freq: "DAILY", Interval: 1, ByDay: []string{"MO"}}

	_, err := Expand(rule, date(2024, time.January, 1), calendar.Month{Month: time.January, Year: 2024})

	freqErr := &UnsupportedFrequencyError{}
	require.ErrorAs(t, err, &freqErr)
	assert.Equal(t, "DAILY", freqErr.Freq)
}
