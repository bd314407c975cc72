package event

import (
	"github.com/whenmeet/availability-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"e.id",
		"e.name",
		"e.event_time",
		"e.creator_id",
		"array_agg(eu.user_id) users_ids",
	).
	From(database.EventsTable + " e").
	Join(database.EventUsersTable + " eu on e.id = eu.event_id").
	GroupBy("e.id")
