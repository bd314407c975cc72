package choice

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

// ReplaceChoices swaps the stored set for (event, user, month) with choices:
// delete then insert. Run it inside a transaction so concurrent readers see
// either the old or the new set, never a partial one.
func (*Repository) ReplaceChoices(ctx context.Context, q database.Queryable, eventID, userID int64, month calendar.Month, choices model.MonthChoices) error {
	del := database.PSQL.
		Delete(database.ChoicesTable).
		Where(sq.Eq{
			"event_id": eventID,
			"user_id":  userID,
			"year":     month.Year,
			"month":    int(month.Month),
		})

	if _, err := q.Exec(ctx, del); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if len(choices) == 0 {
		return nil
	}

	ins := database.PSQL.
		Insert(database.ChoicesTable).
		Columns("event_id", "user_id", "year", "month", "day", "choice")

	for day, c := range choices {
		ins = ins.Values(eventID, userID, month.Year, int(month.Month), day, int(c))
	}

	if _, err := q.Exec(ctx, ins); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
