package availability

import (
	"context"
	"fmt"

	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/recurrence"
	"go.uber.org/zap"
)

type Service struct {
	db     database.PGX
	logger *zap.SugaredLogger

	eventsRepository  eventsRepository
	usersRepository   usersRepository
	rulesRepository   rulesRepository
	choicesRepository choicesRepository
}

type eventsRepository interface {
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
}

type usersRepository interface {
	GetUsersByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.User, error)
}

type rulesRepository interface {
	GetRulesByEventID(ctx context.Context, q database.Queryable, eventID int64) ([]*model.Rule, error)
}

type choicesRepository interface {
	GetChoices(ctx context.Context, q database.Queryable, filter model.ChoicesFilter) ([]*model.ManualChoice, error)
	ReplaceChoices(ctx context.Context, q database.Queryable, eventID, userID int64, month calendar.Month, choices model.MonthChoices) error
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	events eventsRepository,
	users usersRepository,
	rules rulesRepository,
	choices choicesRepository,
) *Service {
	return &Service{
		db:                db,
		logger:            logger,
		eventsRepository:  events,
		usersRepository:   users,
		rulesRepository:   rules,
		choicesRepository: choices,
	}
}

// MonthView is the merged availability picture of one event's month together
// with the participants it covers.
type MonthView struct {
	Event  *model.Event
	Users  []*model.User
	Merged *Merged
}

// GetMonthView loads rules and manual choices for the event's month and
// re-derives the merged view. Nothing of the result is persisted; identical
// inputs produce identical output.
func (s *Service) GetMonthView(ctx context.Context, eventID int64, month calendar.Month) (*MonthView, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	users, err := s.usersRepository.GetUsersByIDs(ctx, s.db, event.UsersIDs)
	if err != nil {
		return nil, fmt.Errorf("usersRepository.GetUsersByIDs: %w", err)
	}

	rules, err := s.rulesRepository.GetRulesByEventID(ctx, s.db, eventID)
	if err != nil {
		return nil, fmt.Errorf("rulesRepository.GetRulesByEventID: %w", err)
	}

	choices, err := s.choicesRepository.GetChoices(ctx, s.db, model.ChoicesFilter{
		EventID: eventID,
		Month:   month,
	})
	if err != nil {
		return nil, fmt.Errorf("choicesRepository.GetChoices: %w", err)
	}

	merged, err := Merge(s.expandRules(rules, month), choices, users, month)
	if err != nil {
		return nil, fmt.Errorf("merge month: %w", err)
	}

	return &MonthView{
		Event:  event,
		Users:  users,
		Merged: merged,
	}, nil
}

// expandRules turns stored rules into their occurrence days for the month. A
// rule that fails to parse or expand is logged and excluded; one bad rule
// never aborts the whole month.
func (s *Service) expandRules(rules []*model.Rule, month calendar.Month) []RuleOccurrences {
	res := make([]RuleOccurrences, 0, len(rules))
	for _, r := range rules {
		parsed, err := recurrence.Parse(r.Rule)
		if err != nil {
			s.logger.Warnw("skipping rule", "rule_id", r.ID, "err", err)
			continue
		}

		days, err := recurrence.Expand(parsed, r.CreatedAt, month)
		if err != nil {
			s.logger.Warnw("skipping rule", "rule_id", r.ID, "err", err)
			continue
		}

		res = append(res, RuleOccurrences{Rule: r, Days: days})
	}

	return res
}

// SubmitChoices replaces the user's whole manual-choice set for the month.
// The payload is always the complete own-choices map, not a diff; concurrent
// submissions are last write wins.
func (s *Service) SubmitChoices(ctx context.Context, eventID, userID int64, month calendar.Month, choices model.MonthChoices) error {
	lastDay := month.LastDay()
	for day, c := range choices {
		if day < 1 || day > lastDay {
			return &InvalidDateRangeError{Day: day, Month: month}
		}
		if !c.Valid() {
			return fmt.Errorf("invalid choice %d for day %d", c, day)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.choicesRepository.ReplaceChoices(ctx, tx, eventID, userID, month, choices); err != nil {
		return fmt.Errorf("choicesRepository.ReplaceChoices: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
