package database

import (
	sq "github.com/Masterminds/squirrel"
)

// PSQL is the statement builder every repository starts from.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	UsersTable      = "users"
	EventsTable     = "events"
	EventUsersTable = "events_users"
	RulesTable      = "recurrence_rules"
	ChoicesTable    = "availability_choices"
)
