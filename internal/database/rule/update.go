package rule

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

// UpdateRule changes the mutable fields only; the creation timestamp keeps
// the interval phase stable and is never rewritten.
func (*Repository) UpdateRule(ctx context.Context, q database.Queryable, rule *model.Rule) error {
	qb := database.PSQL.
		Update(database.RulesTable).
		SetMap(map[string]interface{}{
			"name":   rule.Name,
			"choice": int(rule.Choice),
			"rule":   rule.Rule,
		}).
		Where(sq.Eq{"id": rule.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
