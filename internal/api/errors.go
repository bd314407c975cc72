package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/whenmeet/availability-backend/internal/business/availability"
	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/recurrence"
)

// Every failure path answers with {"error": <message>} so clients parse one
// shape regardless of status.

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	if err := a.writeJSON(w, status, map[string]interface{}{"error": message}, nil); err != nil {
		a.logger.Errorw("writing error response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.Errorw("request failed", "method", r.Method, "uri", r.URL.RequestURI(), "err", err)

	a.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("rejected request", "status", status, "reason", message)

	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	a.clientErrorResponse(w, r, http.StatusNotFound, "resource not found")
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("method %s not allowed for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errs)
}

func (a *Api) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusUnauthorized, err.Error())
}

func (a *Api) forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	a.clientErrorResponse(w, r, http.StatusForbidden, message)
}

// domainErrorResponse maps the availability domain errors onto statuses: a
// rule that violates the grammar or uses a frequency the calculator cannot
// expand is unprocessable input, a day outside the requested month is a bad
// request, a missing record is not found. Anything unrecognized is a server
// fault.
func (a *Api) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	malformedErr := &recurrence.MalformedRuleError{}
	freqErr := &recurrence.UnsupportedFrequencyError{}
	rangeErr := &availability.InvalidDateRangeError{}

	switch {
	case errors.As(err, &malformedErr):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, malformedErr.Error())
	case errors.As(err, &freqErr):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, freqErr.Error())
	case errors.As(err, &rangeErr):
		a.badRequestResponse(w, r, rangeErr)
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	default:
		a.serverErrorResponse(w, r, err)
	}
}
