package availability

import (
	"sort"

	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/model"
)

// Source records where a merged choice came from.
type Source int

const (
	SourceRule Source = iota
	SourceManual
)

// Cell is one merged verdict: the choice plus its provenance. RuleID is set
// only for rule-derived cells.
type Cell struct {
	Choice model.Choice
	Source Source
	RuleID int64
}

// Merged is the month's full availability picture, day -> username -> cell.
type Merged struct {
	Month calendar.Month
	Days  map[int]map[string]Cell
}

// RuleOccurrences pairs a rule with the days of the target month it fires on.
// It is never persisted; the expansion is recomputed on every read.
type RuleOccurrences struct {
	Rule *model.Rule
	Days []int
}

// Merge folds rule-derived and manual choices into one per-day per-user map.
// Manual choices always win: a rule occurrence never overwrites a manual
// entry for the same day. The output depends only on the arguments, so it is
// safe to recompute on every fetch.
func Merge(ruled []RuleOccurrences, manual []*model.ManualChoice, users []*model.User, month calendar.Month) (*Merged, error) {
	lastDay := month.LastDay()

	usernames := make(map[int64]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	res := &Merged{
		Month: month,
		Days:  make(map[int]map[string]Cell, lastDay),
	}
	for day := 1; day <= lastDay; day++ {
		res.Days[day] = make(map[string]Cell, len(users))
	}

	hasManual := make(map[int64]map[int]struct{}, len(users))
	for _, c := range manual {
		if c.Day < 1 || c.Day > lastDay {
			return nil, &InvalidDateRangeError{Day: c.Day, Month: month}
		}

		days, ok := hasManual[c.UserID]
		if !ok {
			days = map[int]struct{}{}
			hasManual[c.UserID] = days
		}
		days[c.Day] = struct{}{}
	}

	for _, r := range ruled {
		username, ok := usernames[r.Rule.UserID]
		if !ok {
			continue
		}

		for _, day := range r.Days {
			if _, ok := hasManual[r.Rule.UserID][day]; ok {
				continue
			}
			res.Days[day][username] = Cell{
				Choice: r.Rule.Choice,
				Source: SourceRule,
				RuleID: r.Rule.ID,
			}
		}
	}

	// Manual application happens strictly after rule application so the
	// override precedence holds per day and user.
	for _, c := range manual {
		username, ok := usernames[c.UserID]
		if !ok {
			continue
		}

		res.Days[c.Day][username] = Cell{
			Choice: c.Choice,
			Source: SourceManual,
		}
	}

	return res, nil
}

// User projects out one username's day -> choice column.
func (m *Merged) User(username string) model.MonthChoices {
	res := model.MonthChoices{}
	for day, cells := range m.Days {
		if cell, ok := cells[username]; ok {
			res[day] = cell.Choice
		}
	}

	return res
}

// Group flattens the merged cells into the day -> username -> choice shape.
func (m *Merged) Group() model.GroupChoices {
	res := make(model.GroupChoices, len(m.Days))
	for day, cells := range m.Days {
		choices := make(map[string]model.Choice, len(cells))
		for username, cell := range cells {
			choices[username] = cell.Choice
		}
		res[day] = choices
	}

	return res
}

// Lists splits one user's merged month into the three raw day lists, each
// sorted ascending.
func (m *Merged) Lists(username string) (available, maybe, unavailable []int) {
	for day, cells := range m.Days {
		cell, ok := cells[username]
		if !ok {
			continue
		}

		switch cell.Choice {
		case model.ChoiceAvailable:
			available = append(available, day)
		case model.ChoiceMaybeAvailable:
			maybe = append(maybe, day)
		case model.ChoiceUnavailable:
			unavailable = append(unavailable, day)
		}
	}

	sort.Ints(available)
	sort.Ints(maybe)
	sort.Ints(unavailable)

	return available, maybe, unavailable
}

// AllAvailable reports whether every one of total participants has a recorded
// choice for day and all of them are available. A day with no recorded
// choices is never fully available.
func (m *Merged) AllAvailable(day int, total int) bool {
	cells := m.Days[day]
	if total == 0 || len(cells) != total {
		return false
	}

	for _, cell := range cells {
		if cell.Choice != model.ChoiceAvailable {
			return false
		}
	}

	return true
}
