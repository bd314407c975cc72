package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whenmeet/availability-backend/internal/model"
)

func TestNextChoiceCycle(t *testing.T) {
	assert.Equal(t, model.ChoiceMaybeAvailable, NextChoice(model.ChoiceAvailable, true))
	assert.Equal(t, model.ChoiceUnavailable, NextChoice(model.ChoiceMaybeAvailable, true))
	assert.Equal(t, model.ChoiceAvailable, NextChoice(model.ChoiceUnavailable, true))

	// no prior choice starts the cycle at available
	assert.Equal(t, model.ChoiceAvailable, NextChoice(0, false))

	// three applications return to the start from any state
	for _, c := range []model.Choice{model.ChoiceAvailable, model.ChoiceMaybeAvailable, model.ChoiceUnavailable} {
		assert.Equal(t, c, NextChoice(NextChoice(NextChoice(c, true), true), true))
	}
}

func TestSelectDay(t *testing.T) {
	s := New("alice", model.MonthChoices{5: model.ChoiceAvailable}, model.GroupChoices{
		5: {"alice": model.ChoiceAvailable, "bob": model.ChoiceUnavailable},
	})

	require.NoError(t, s.SelectDay(5))

	assert.Equal(t, model.ChoiceMaybeAvailable, s.Own()[5])
	assert.Equal(t, model.ChoiceMaybeAvailable, s.All()[5]["alice"])
	assert.Equal(t, model.ChoiceUnavailable, s.All()[5]["bob"])
	assert.True(t, s.Dirty())

	// a day with no prior choice starts at available
	require.NoError(t, s.SelectDay(6))
	assert.Equal(t, model.ChoiceAvailable, s.Own()[6])
}

func TestSelectDayWithoutUsername(t *testing.T) {
	s := New("", nil, nil)

	err := s.SelectDay(1)

	assert.ErrorIs(t, err, ErrMissingUsername)
	assert.False(t, s.Dirty())
}

func TestSelectDayCopyOnWrite(t *testing.T) {
	s := New("alice", model.MonthChoices{5: model.ChoiceAvailable}, model.GroupChoices{
		5: {"alice": model.ChoiceAvailable},
	})

	ownBefore := s.Own()
	allBefore := s.All()

	require.NoError(t, s.SelectDay(5))

	// snapshots taken before the mutation are untouched
	assert.Equal(t, model.ChoiceAvailable, ownBefore[5])
	assert.Equal(t, model.ChoiceAvailable, allBefore[5]["alice"])
}

func TestResetRestoresBackup(t *testing.T) {
	s := New("alice", model.MonthChoices{5: model.ChoiceAvailable}, model.GroupChoices{
		5: {"alice": model.ChoiceAvailable},
	})

	require.NoError(t, s.SelectDay(5))
	require.NoError(t, s.SelectDay(9))
	require.True(t, s.Dirty())

	s.Reset()

	assert.False(t, s.Dirty())
	assert.Equal(t, model.MonthChoices{5: model.ChoiceAvailable}, s.Own())
	_, ok := s.Own()[9]
	assert.False(t, ok)
}

func TestCommitKeepsLiveState(t *testing.T) {
	s := New("alice", model.MonthChoices{}, model.GroupChoices{})

	require.NoError(t, s.SelectDay(3))
	s.Commit()

	assert.False(t, s.Dirty())

	// after a commit, reset returns to the committed state
	require.NoError(t, s.SelectDay(3))
	s.Reset()
	assert.Equal(t, model.ChoiceAvailable, s.Own()[3])
}
