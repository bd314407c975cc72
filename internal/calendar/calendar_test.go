package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastDay(t *testing.T) {
	assert.Equal(t, 31, Month{Month: time.January, Year: 2024}.LastDay())
	assert.Equal(t, 29, Month{Month: time.February, Year: 2024}.LastDay())
	assert.Equal(t, 28, Month{Month: time.February, Year: 2023}.LastDay())
	assert.Equal(t, 28, Month{Month: time.February, Year: 1900}.LastDay())
	assert.Equal(t, 29, Month{Month: time.February, Year: 2000}.LastDay())
	assert.Equal(t, 30, Month{Month: time.April, Year: 2024}.LastDay())
}

func TestWeekday(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday
	assert.Equal(t, 1, Date{Day: 1, Month: time.January, Year: 2024}.Weekday())
	assert.Equal(t, 7, Date{Day: 7, Month: time.January, Year: 2024}.Weekday())
}

func TestMonthGrid(t *testing.T) {
	t.Run("month starting on Monday", func(t *testing.T) {
		grid := MonthGrid(Month{Month: time.January, Year: 2024})

		require.Len(t, grid, 35)
		assert.Equal(t, Date{Day: 1, Month: time.January, Year: 2024}, grid[0])
		assert.Equal(t, Date{Day: 4, Month: time.February, Year: 2024}, grid[len(grid)-1])
	})

	t.Run("month starting on Sunday", func(t *testing.T) {
		// May 2022 starts on a Sunday, so six leading April days
		grid := MonthGrid(Month{Month: time.May, Year: 2022})

		require.Len(t, grid, 42)
		assert.Equal(t, Date{Day: 25, Month: time.April, Year: 2022}, grid[0])
		assert.Equal(t, Date{Day: 1, Month: time.May, Year: 2022}, grid[6])
		assert.Equal(t, Date{Day: 5, Month: time.June, Year: 2022}, grid[len(grid)-1])
	})

	t.Run("grid is Monday-first and week-aligned", func(t *testing.T) {
		for _, m := range []Month{
			{Month: time.February, Year: 2024},
			{Month: time.December, Year: 2023},
			{Month: time.June, Year: 2025},
		} {
			grid := MonthGrid(m)

			assert.Zero(t, len(grid)%7)
			assert.Equal(t, 1, grid[0].Weekday())
			assert.Equal(t, 7, grid[len(grid)-1].Weekday())
		}
	})
}

func TestChunk(t *testing.T) {
	grid := MonthGrid(Month{Month: time.January, Year: 2024})

	weeks := Chunk(grid, 7)
	require.Len(t, weeks, 5)
	for _, week := range weeks {
		assert.Len(t, week, 7)
	}
	assert.Equal(t, grid[7], weeks[1][0])

	assert.Nil(t, Chunk(nil, 7))
	assert.Nil(t, Chunk(grid, 0))
}

func TestMonthNavigation(t *testing.T) {
	assert.Equal(t,
		Month{Month: time.January, Year: 2025},
		Month{Month: time.December, Year: 2024}.Next(),
	)
	assert.Equal(t,
		Month{Month: time.December, Year: 2023},
		Month{Month: time.January, Year: 2024}.Prev(),
	)
	assert.Equal(t,
		Month{Month: time.March, Year: 2024},
		Month{Month: time.February, Year: 2024}.Next(),
	)
}

func TestMonthBefore(t *testing.T) {
	feb := Month{Month: time.February, Year: 2024}
	mar := Month{Month: time.March, Year: 2024}

	assert.True(t, feb.Before(mar))
	assert.False(t, mar.Before(feb))
	assert.False(t, feb.Before(feb))
	assert.True(t, Month{Month: time.December, Year: 2023}.Before(feb))
}
