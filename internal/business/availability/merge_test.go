package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/model"
	"go.uber.org/zap"
)

var testUsers = []*model.User{
	{ID: 1, UserCreate: model.UserCreate{Username: "alice"}},
	{ID: 2, UserCreate: model.UserCreate{Username: "bob"}},
}

func biweeklyRule(id, userID int64, choice model.Choice) *model.Rule {
	return &model.Rule{
		ID:        id,
		CreatedAt: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		RuleCreate: model.RuleCreate{
			EventID: 1,
			UserID:  userID,
			Name:    "every other tuesday",
			Choice:  choice,
			Rule:    "FREQ=WEEKLY;INTERVAL=2;BYDAY=TU",
		},
	}
}

func TestMergeManualOverridesRule(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}
	rule := biweeklyRule(7, 1, model.ChoiceAvailable)

	merged, err := Merge(
		[]RuleOccurrences{{Rule: rule, Days: []int{13, 27}}},
		[]*model.ManualChoice{
			{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 13, Choice: model.ChoiceUnavailable},
		},
		testUsers,
		feb,
	)
	require.NoError(t, err)

	// day 13 is a rule occurrence, but the manual choice wins
	assert.Equal(t, Cell{Choice: model.ChoiceUnavailable, Source: SourceManual}, merged.Days[13]["alice"])
	assert.Equal(t, Cell{Choice: model.ChoiceAvailable, Source: SourceRule, RuleID: 7}, merged.Days[27]["alice"])
}

func TestMergeDeterministic(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}
	ruled := []RuleOccurrences{{Rule: biweeklyRule(7, 1, model.ChoiceAvailable), Days: []int{13, 27}}}
	manual := []*model.ManualChoice{
		{EventID: 1, UserID: 2, Year: 2024, Month: time.February, Day: 13, Choice: model.ChoiceMaybeAvailable},
	}

	first, err := Merge(ruled, manual, testUsers, feb)
	require.NoError(t, err)
	second, err := Merge(ruled, manual, testUsers, feb)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMergeInvalidDay(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}

	_, err := Merge(nil, []*model.ManualChoice{
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 30, Choice: model.ChoiceAvailable},
	}, testUsers, feb)

	rangeErr := &InvalidDateRangeError{}
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 30, rangeErr.Day)
}

func TestMergeIgnoresUnknownUsers(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}

	merged, err := Merge(
		[]RuleOccurrences{{Rule: biweeklyRule(7, 99, model.ChoiceAvailable), Days: []int{13}}},
		[]*model.ManualChoice{
			{EventID: 1, UserID: 99, Year: 2024, Month: time.February, Day: 1, Choice: model.ChoiceAvailable},
		},
		testUsers,
		feb,
	)
	require.NoError(t, err)

	assert.Empty(t, merged.Days[13])
	assert.Empty(t, merged.Days[1])
}

func TestUserProjection(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}

	merged, err := Merge(
		[]RuleOccurrences{{Rule: biweeklyRule(7, 1, model.ChoiceAvailable), Days: []int{13, 27}}},
		[]*model.ManualChoice{
			{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 1, Choice: model.ChoiceMaybeAvailable},
			{EventID: 1, UserID: 2, Year: 2024, Month: time.February, Day: 1, Choice: model.ChoiceAvailable},
		},
		testUsers,
		feb,
	)
	require.NoError(t, err)

	assert.Equal(t, model.MonthChoices{
		1:  model.ChoiceMaybeAvailable,
		13: model.ChoiceAvailable,
		27: model.ChoiceAvailable,
	}, merged.User("alice"))

	assert.Equal(t, model.MonthChoices{1: model.ChoiceAvailable}, merged.User("bob"))
}

func TestLists(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}

	merged, err := Merge(nil, []*model.ManualChoice{
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 3, Choice: model.ChoiceUnavailable},
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 1, Choice: model.ChoiceAvailable},
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 2, Choice: model.ChoiceMaybeAvailable},
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 10, Choice: model.ChoiceAvailable},
	}, testUsers, feb)
	require.NoError(t, err)

	available, maybe, unavailable := merged.Lists("alice")
	assert.Equal(t, []int{1, 10}, available)
	assert.Equal(t, []int{2}, maybe)
	assert.Equal(t, []int{3}, unavailable)
}

func TestAllAvailable(t *testing.T) {
	feb := calendar.Month{Month: time.February, Year: 2024}

	merged, err := Merge(nil, []*model.ManualChoice{
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 5, Choice: model.ChoiceAvailable},
		{EventID: 1, UserID: 2, Year: 2024, Month: time.February, Day: 5, Choice: model.ChoiceAvailable},
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 6, Choice: model.ChoiceAvailable},
		{EventID: 1, UserID: 1, Year: 2024, Month: time.February, Day: 7, Choice: model.ChoiceAvailable},
		{EventID: 1, UserID: 2, Year: 2024, Month: time.February, Day: 7, Choice: model.ChoiceMaybeAvailable},
	}, testUsers, feb)
	require.NoError(t, err)

	assert.True(t, merged.AllAvailable(5, len(testUsers)))

	// one participant missing
	assert.False(t, merged.AllAvailable(6, len(testUsers)))

	// one participant only maybe available
	assert.False(t, merged.AllAvailable(7, len(testUsers)))

	// a day with no recorded choices is never fully available
	assert.False(t, merged.AllAvailable(8, len(testUsers)))
	assert.False(t, merged.AllAvailable(8, 0))
}

func TestExpandRulesSkipsBrokenRules(t *testing.T) {
	s := NewService(nil, zap.NewNop().Sugar(), nil, nil, nil, nil)
	feb := calendar.Month{Month: time.February, Year: 2024}

	malformed := biweeklyRule(1, 1, model.ChoiceAvailable)
	malformed.Rule = "FREQ=WEEKLY;BROKEN"

	daily := biweeklyRule(2, 1, model.ChoiceAvailable)
	daily.Rule = "FREQ=DAILY;INTERVAL=1;BYDAY=MO"

	good := biweeklyRule(3, 1, model.ChoiceAvailable)

	ruled := s.expandRules([]*model.Rule{malformed, daily, good}, feb)

	require.Len(t, ruled, 1)
	assert.Equal(t, int64(3), ruled[0].Rule.ID)
	assert.Equal(t, []int{13, 27}, ruled[0].Days)
}
