package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/whenmeet/availability-backend/internal/business/availability"
	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/recurrence"
	"go.uber.org/zap"
)

func TestDomainErrorResponse(t *testing.T) {
	a := &Api{logger: zap.NewNop().Sugar()}

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{
			"malformed rule",
			&recurrence.MalformedRuleError{Segment: "FREQ"},
			http.StatusUnprocessableEntity,
		},
		{
			"unsupported frequency",
			&recurrence.UnsupportedFrequencyError{Freq: "DAILY"},
			http.StatusUnprocessableEntity,
		},
		{
			"day outside month",
			&availability.InvalidDateRangeError{Day: 30, Month: calendar.Month{Month: time.February, Year: 2024}},
			http.StatusBadRequest,
		},
		{
			"wrapped missing record",
			fmt.Errorf("load event: %w", model.ErrNoRecord),
			http.StatusNotFound,
		},
		{
			"unrecognized error",
			errors.New("connection reset"),
			http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", nil)

			a.domainErrorResponse(rec, req, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
