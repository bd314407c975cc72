package calendar

// MonthGrid returns the full Monday-first week grid for a month: the month's
// days padded with the trailing days of the previous month and the leading
// days of the next one, so the result length is a multiple of 7. Padding days
// carry their own month and year so weekday alignment is always real.
func MonthGrid(m Month) []Date {
	first := m.First()
	lead := first.Weekday() - 1

	prev := m.Prev()
	prevLast := prev.LastDay()

	grid := make([]Date, 0, 42)
	for i := prevLast - lead + 1; i <= prevLast; i++ {
		grid = append(grid, Date{Day: i, Month: prev.Month, Year: prev.Year})
	}

	for i := 1; i <= m.LastDay(); i++ {
		grid = append(grid, Date{Day: i, Month: m.Month, Year: m.Year})
	}

	next := m.Next()
	for i := 1; len(grid)%7 != 0; i++ {
		grid = append(grid, Date{Day: i, Month: next.Month, Year: next.Year})
	}

	return grid
}

// Chunk splits days into groups of size, preserving order. The last group is
// shorter when len(days) is not a multiple of size.
func Chunk(days []Date, size int) [][]Date {
	if size <= 0 {
		return nil
	}

	chunks := make([][]Date, 0, (len(days)+size-1)/size)
	for size < len(days) {
		chunks = append(chunks, days[:size])
		days = days[size:]
	}
	if len(days) > 0 {
		chunks = append(chunks, days)
	}

	return chunks
}
