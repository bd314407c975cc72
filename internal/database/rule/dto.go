package rule

import (
	"time"

	"github.com/whenmeet/availability-backend/internal/model"
)

type ruleDTO struct {
	ID        int64
	EventID   int64
	UserID    int64
	Name      string
	Choice    int
	Rule      string
	CreatedAt time.Time
}

func mapToRule(d *ruleDTO) *model.Rule {
	return &model.Rule{
		ID:        d.ID,
		CreatedAt: d.CreatedAt,
		RuleCreate: model.RuleCreate{
			EventID: d.EventID,
			UserID:  d.UserID,
			Name:    d.Name,
			Choice:  model.Choice(d.Choice),
			Rule:    d.Rule,
		},
	}
}
