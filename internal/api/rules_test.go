package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/whenmeet/availability-backend/internal/recurrence"
)

func TestCheckRule(t *testing.T) {
	assert.NoError(t, checkRule("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH"))

	freqErr := &recurrence.UnsupportedFrequencyError{}
	assert.ErrorAs(t, checkRule("FREQ=DAILY;INTERVAL=1;BYDAY=MO"), &freqErr)

	malformedErr := &recurrence.MalformedRuleError{}
	assert.ErrorAs(t, checkRule("FREQ=WEEKLY;INTERVAL=0;BYDAY=MO"), &malformedErr)
	assert.ErrorAs(t, checkRule("FREQ=WEEKLY;BROKEN"), &malformedErr)
}
