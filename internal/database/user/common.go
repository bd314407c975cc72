package user

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
		"username",
		"color",
	).
	From(database.UsersTable)
