package choice

import (
	"github.com/whenmeet/availability-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"event_id",
		"user_id",
		"year",
		"month",
		"day",
		"choice",
	).
	From(database.ChoicesTable)
