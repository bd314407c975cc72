package rule

import (
	"context"
	"fmt"

	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

func (*Repository) CreateRule(ctx context.Context, q database.Queryable, rule *model.RuleCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.RulesTable).
		Columns("event_id", "user_id", "name", "choice", "rule").
		Values(
			rule.EventID,
			rule.UserID,
			rule.Name,
			int(rule.Choice),
			rule.Rule,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
