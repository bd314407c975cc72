package model

import (
	"time"

	"github.com/whenmeet/availability-backend/internal/calendar"
)

// Choice is one availability verdict for a single day.
type Choice int

const (
	ChoiceAvailable Choice = iota
	ChoiceMaybeAvailable
	ChoiceUnavailable
)

func (c Choice) Valid() bool {
	switch c {
	case ChoiceAvailable, ChoiceMaybeAvailable, ChoiceUnavailable:
		return true
	}
	return false
}

// MonthChoices is one user's day -> choice map for a month.
type MonthChoices map[int]Choice

// GroupChoices is the full day -> username -> choice map for a month.
type GroupChoices map[int]map[string]Choice

// ManualChoice is an availability value a user explicitly recorded for one
// specific day of a month. It overrides any rule-derived choice for that day.
type ManualChoice struct {
	EventID int64
	UserID  int64
	Year    int
	Month   time.Month
	Day     int
	Choice  Choice
}

type ChoicesFilter struct {
	EventID int64
	UserIDs []int64
	Month   calendar.Month
}
