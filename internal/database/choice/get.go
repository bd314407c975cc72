package choice

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

type choiceDTO struct {
	EventID int64
	UserID  int64
	Year    int
	Month   int
	Day     int
	Choice  int
}

func (*Repository) GetChoices(ctx context.Context, q database.Queryable, filter model.ChoicesFilter) ([]*model.ManualChoice, error) {
	qb := baseQuery.
		Where(sq.Eq{
			"event_id": filter.EventID,
			"year":     filter.Month.Year,
			"month":    int(filter.Month.Month),
		}).
		OrderBy("user_id", "day")

	if len(filter.UserIDs) != 0 {
		qb = qb.Where(sq.Eq{"user_id": filter.UserIDs})
	}

	var dtos []*choiceDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.ManualChoice, len(dtos))
	for i, d := range dtos {
		res[i] = &model.ManualChoice{
			EventID: d.EventID,
			UserID:  d.UserID,
			Year:    d.Year,
			Month:   time.Month(d.Month),
			Day:     d.Day,
			Choice:  model.Choice(d.Choice),
		}
	}

	return res, nil
}
