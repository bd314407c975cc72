package rule

import (
	"github.com/whenmeet/availability-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"event_id",
		"user_id",
		"name",
		"choice",
		"rule",
		"created_at",
	).
	From(database.RulesTable)
