package event

import (
	"time"

	"github.com/whenmeet/availability-backend/internal/model"
)

type eventDTO struct {
	ID        int64
	Name      string
	EventTime time.Time
	CreatorID int64
	UsersIDs  []int64 `db:"users_ids"`
}

func mapToEvent(d *eventDTO) *model.Event {
	return &model.Event{
		ID:       d.ID,
		UsersIDs: d.UsersIDs,
		EventCreate: model.EventCreate{
			Name:      d.Name,
			Time:      d.EventTime,
			CreatorID: d.CreatorID,
		},
	}
}
