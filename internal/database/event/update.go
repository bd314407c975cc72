package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"name":       event.Name,
			"event_time": event.Time,
		}).
		Where(sq.Eq{"id": event.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) RemoveUserFromEvent(ctx context.Context, q database.Queryable, eventID, userID int64) error {
	qb := database.PSQL.
		Delete(database.EventUsersTable).
		Where(sq.Eq{"event_id": eventID, "user_id": userID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
