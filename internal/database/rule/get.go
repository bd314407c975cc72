package rule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
)

func (*Repository) GetRuleByID(ctx context.Context, q database.Queryable, id int64) (*model.Rule, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &ruleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRule(dto), nil
}

func (*Repository) GetRulesByEventID(ctx context.Context, q database.Queryable, eventID int64) ([]*model.Rule, error) {
	qb := baseQuery.
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("id")

	var dtos []*ruleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Rule, len(dtos))
	for i, d := range dtos {
		res[i] = mapToRule(d)
	}

	return res, nil
}
