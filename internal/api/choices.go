package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/pkg/validator"
)

// submitChoicesHandler replaces the caller's manual choices for one month.
// The payload always carries the complete day -> choice map.
func (a *Api) submitChoicesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	if !userInEvent(event, userID) {
		a.forbiddenResponse(w, r, "user is not an event participant")
		return
	}

	req := &struct {
		Choices map[string]model.Choice `json:"choices"`
		Date    struct {
			Month int `json:"month"`
			Year  int `json:"year"`
		} `json:"date"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.Date.Month >= 1 && req.Date.Month <= 12, "date.month", "month must be 1..12")
	v.Check(req.Date.Year != 0, "date.year", "year must be provided")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	choices := make(model.MonthChoices, len(req.Choices))
	for dayStr, c := range req.Choices {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid day %q", dayStr))
			return
		}
		choices[day] = c
	}

	month := calendar.Month{Month: time.Month(req.Date.Month), Year: req.Date.Year}

	if err := a.availability.SubmitChoices(r.Context(), event.ID, userID, month, choices); err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
