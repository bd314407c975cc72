package event

import (
	"context"
	"fmt"

	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns("name", "event_time", "creator_id").
		Values(event.Name, event.Time, event.CreatorID).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) AddUserToEvent(ctx context.Context, q database.Queryable, eventID, userID int64) error {
	qb := database.PSQL.
		Insert(database.EventUsersTable).
		Columns("event_id", "user_id").
		Values(eventID, userID).
		Suffix("on conflict do nothing")

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
