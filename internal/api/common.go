package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/model"
)

const dateTimeFormat = time.RFC3339

type userResp struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Color    string `json:"color,omitempty"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:       user.ID,
		Username: user.Username,
		Color:    "#" + user.Color.ToHTML(),
	}, nil
}

type eventResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Time  string `json:"time"`
	Users int    `json:"user_count"`
}

func mapToEventResp(event *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:    event.ID,
		Name:  event.Name,
		Time:  event.Time.Format(dateTimeFormat),
		Users: len(event.UsersIDs),
	}, nil
}

type ruleResp struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Choice    model.Choice `json:"availability_choice"`
	Rule      string       `json:"rule"`
	StartDate string       `json:"start_date"`
	Username  string       `json:"username"`
}

// parseMonthQuery reads the ?month=&year= pair, months numbered 1..12.
func parseMonthQuery(r *http.Request) (calendar.Month, error) {
	v := r.URL.Query().Get("month")
	if v == "" {
		return calendar.Month{}, fmt.Errorf("month must be provided")
	}
	monthNum, err := strconv.Atoi(v)
	if err != nil || monthNum < 1 || monthNum > 12 {
		return calendar.Month{}, fmt.Errorf("invalid month %q", v)
	}

	v = r.URL.Query().Get("year")
	if v == "" {
		return calendar.Month{}, fmt.Errorf("year must be provided")
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return calendar.Month{}, fmt.Errorf("invalid year %q", v)
	}

	return calendar.Month{Month: time.Month(monthNum), Year: year}, nil
}
