package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/pkg/validator"
	"github.com/whenmeet/availability-backend/internal/recurrence"
)

func (a *Api) getRulesHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveEvent)
		return
	}

	rules, err := a.rules.GetRulesByEventID(r.Context(), a.db, event.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get rules: %w", err))
		return
	}

	users, err := a.users.GetUsersByIDs(r.Context(), a.db, event.UsersIDs)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get users: %w", err))
		return
	}

	usernames := make(map[int64]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	resp := make([]*ruleResp, len(rules))
	for i, rule := range rules {
		resp[i] = &ruleResp{
			ID:        rule.ID,
			Name:      rule.Name,
			Choice:    rule.Choice,
			Rule:      rule.Rule,
			StartDate: rule.CreatedAt.Format(dateTimeFormat),
			Username:  usernames[rule.UserID],
		}
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createRuleHandler(w http.ResponseWriter, r *http.Request) {
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
		Name   string       `json:"name"`
		Choice model.Choice `json:"availability_choice"`
		Rule   string       `json:"rule"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(req.Choice.Valid(), "availability_choice", "unknown availability choice")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := checkRule(req.Rule); err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	id, err := a.rules.CreateRule(r.Context(), a.db, &model.RuleCreate{
		EventID: event.ID,
		UserID:  userID,
		Name:    req.Name,
		Choice:  req.Choice,
		Rule:    req.Rule,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create rule: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, map[string]int64{"id": id}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateRuleHandler(w http.ResponseWriter, r *http.Request) {
	userID, rule, ok := a.ruleFromRequest(w, r)
	if !ok {
		return
	}

	if rule.UserID != userID {
		a.forbiddenResponse(w, r, "only the rule owner can update it")
		return
	}

	req := &struct {
		Name   string       `json:"name"`
		Choice model.Choice `json:"availability_choice"`
		Rule   string       `json:"rule"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(req.Choice.Valid(), "availability_choice", "unknown availability choice")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := checkRule(req.Rule); err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	rule.Name = req.Name
	rule.Choice = req.Choice
	rule.Rule = req.Rule
	if err := a.rules.UpdateRule(r.Context(), a.db, rule); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("update rule: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteRuleHandler(w http.ResponseWriter, r *http.Request) {
	userID, rule, ok := a.ruleFromRequest(w, r)
	if !ok {
		return
	}

	if rule.UserID != userID {
		a.forbiddenResponse(w, r, "only the rule owner can delete it")
		return
	}

	if err := a.rules.DeleteRule(r.Context(), a.db, rule.ID); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete rule: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) ruleFromRequest(w http.ResponseWriter, r *http.Request) (int64, *model.Rule, bool) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return 0, nil, false
	}

	ruleID, err := strconv.ParseInt(chi.URLParam(r, "ruleID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return 0, nil, false
	}

	rule, err := a.rules.GetRuleByID(r.Context(), a.db, ruleID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get rule: %w", err))
		}
		return 0, nil, false
	}

	return userID, rule, true
}

// checkRule parses the encoded rule and rejects frequencies the occurrence
// calculator cannot expand.
func checkRule(s string) error {
	parsed, err := recurrence.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Freq != recurrence.FreqWeekly {
		return &recurrence.UnsupportedFrequencyError{Freq: parsed.Freq}
	}

	return nil
}
