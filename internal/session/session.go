// Package session implements the in-progress month-editing state machine: a
// live day->choice view on top of the last persisted backup, with the
// three-state toggle cycle applied on day selection.
package session

import (
	"errors"

	"github.com/whenmeet/availability-backend/internal/model"
)

// ErrMissingUsername is returned when a day selection is attempted without a
// bound identity. Anonymous sessions can view but never edit.
var ErrMissingUsername = errors.New("no username bound to session")

// Session holds one user's edit interaction with a month. The backup maps are
// the last-confirmed-persisted state; the live maps hold in-progress edits.
// Mutations are copy-on-write, so maps handed out before a mutation are never
// touched by it.
type Session struct {
	username string

	own       model.MonthChoices
	ownBackup model.MonthChoices
	all       model.GroupChoices
	allBackup model.GroupChoices

	dirty bool
}

// New creates a session seeded with the freshly fetched month data. Both the
// live and backup state start as copies of the arguments.
func New(username string, own model.MonthChoices, all model.GroupChoices) *Session {
	return &Session{
		username:  username,
		own:       cloneOwn(own),
		ownBackup: cloneOwn(own),
		all:       cloneAll(all),
		allBackup: cloneAll(all),
	}
}

// NextChoice advances the three-state toggle cycle. ok reports whether there
// is a prior choice; without one the cycle starts at available.
func NextChoice(current model.Choice, ok bool) model.Choice {
	if !ok {
		return model.ChoiceAvailable
	}

	switch current {
	case model.ChoiceAvailable:
		return model.ChoiceMaybeAvailable
	case model.ChoiceMaybeAvailable:
		return model.ChoiceUnavailable
	default:
		return model.ChoiceAvailable
	}
}

// SelectDay applies one toggle tap to day, updating both the own view and the
// all-users view in a single copy-on-write step and marking the session
// dirty.
func (s *Session) SelectDay(day int) error {
	if s.username == "" {
		return ErrMissingUsername
	}

	current, ok := s.own[day]
	next := NextChoice(current, ok)

	own := cloneOwn(s.own)
	own[day] = next

	all := cloneAll(s.all)
	dayChoices := make(map[string]model.Choice, len(all[day])+1)
	for u, c := range all[day] {
		dayChoices[u] = c
	}
	dayChoices[s.username] = next
	all[day] = dayChoices

	s.own = own
	s.all = all
	s.dirty = true

	return nil
}

// Own returns the live own-choices snapshot. Later mutations replace the map
// rather than changing it in place.
func (s *Session) Own() model.MonthChoices {
	return s.own
}

// All returns the live all-users snapshot.
func (s *Session) All() model.GroupChoices {
	return s.all
}

func (s *Session) Dirty() bool {
	return s.dirty
}

// Reset discards in-progress edits, restoring the live state from the
// backups.
func (s *Session) Reset() {
	s.own = cloneOwn(s.ownBackup)
	s.all = cloneAll(s.allBackup)
	s.dirty = false
}

// Commit records the live state as persisted. Call it only after the storage
// layer acknowledged the submission.
func (s *Session) Commit() {
	s.ownBackup = cloneOwn(s.own)
	s.allBackup = cloneAll(s.all)
	s.dirty = false
}

func cloneOwn(m model.MonthChoices) model.MonthChoices {
	res := make(model.MonthChoices, len(m))
	for d, c := range m {
		res[d] = c
	}

	return res
}

func cloneAll(m model.GroupChoices) model.GroupChoices {
	res := make(model.GroupChoices, len(m))
	for d, users := range m {
		dayChoices := make(map[string]model.Choice, len(users))
		for u, c := range users {
			dayChoices[u] = c
		}
		res[d] = dayChoices
	}

	return res
}
