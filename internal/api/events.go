package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/pkg/validator"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Name string `json:"name"`
		Time string `json:"time"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	eventTime, timeErr := time.Parse(dateTimeFormat, req.Time)

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(timeErr == nil, "time", "time must be a valid timestamp")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	tx, err := a.db.BeginTx(r.Context(), nil)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}
	defer tx.Rollback(r.Context())

	id, err := a.events.CreateEvent(r.Context(), tx, &model.EventCreate{
		Name:      req.Name,
		Time:      eventTime,
		CreatorID: userID,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	if err := a.events.AddUserToEvent(r.Context(), tx, id, userID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("add creator to event: %w", err))
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, map[string]int64{"id": id}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getUserEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	events, err := a.events.GetUserEvents(r.Context(), a.db, userID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events by user id %v: %w", userID, err))
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventMonthHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	month, err := parseMonthQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	view, err := a.availability.GetMonthView(r.Context(), event.ID, month)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get month view: %w", err))
		return
	}

	type userChoicesResp struct {
		Available      []int  `json:"available"`
		MaybeAvailable []int  `json:"maybe_available"`
		Unavailable    []int  `json:"unavailable"`
		Color          string `json:"color"`
	}

	usersChoices := make(map[string]userChoicesResp, len(view.Users))
	for _, u := range view.Users {
		available, maybe, unavailable := view.Merged.Lists(u.Username)
		usersChoices[u.Username] = userChoicesResp{
			Available:      available,
			MaybeAvailable: maybe,
			Unavailable:    unavailable,
			Color:          "#" + u.Color.ToHTML(),
		}
	}

	var allAvailable []int
	for day := 1; day <= month.LastDay(); day++ {
		if view.Merged.AllAvailable(day, len(view.Users)) {
			allAvailable = append(allAvailable, day)
		}
	}

	resp := &struct {
		Name             string                     `json:"name"`
		Time             string                     `json:"time"`
		UsersChoices     map[string]userChoicesResp `json:"users_choices"`
		AllAvailableDays []int                      `json:"all_available_days"`
	}{
		Name:             view.Event.Name,
		Time:             view.Event.Time.Format(dateTimeFormat),
		UsersChoices:     usersChoices,
		AllAvailableDays: allAvailable,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
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

	if event.CreatorID != userID {
		a.forbiddenResponse(w, r, "only the event creator can update it")
		return
	}

	req := &struct {
		Name string `json:"name"`
		Time string `json:"time"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	eventTime, timeErr := time.Parse(dateTimeFormat, req.Time)

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(timeErr == nil, "time", "time must be a valid timestamp")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event.Name = req.Name
	event.Time = eventTime
	if err := a.events.UpdateEvent(r.Context(), a.db, event); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
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

	if event.CreatorID != userID {
		a.forbiddenResponse(w, r, "only the event creator can delete it")
		return
	}

	if err := a.events.DeleteEvent(r.Context(), a.db, event.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) joinEventHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := a.events.AddUserToEvent(r.Context(), a.db, event.ID, userID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("join event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) leaveEventHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := a.events.RemoveUserFromEvent(r.Context(), a.db, event.ID, userID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("leave event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
