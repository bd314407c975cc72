package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	fields, err := Decode("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"FREQ":     "WEEKLY",
		"INTERVAL": "2",
		"BYDAY":    "MO,TH",
	}, fields)
}

func TestDecodeMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"FREQ=WEEKLY;FOO",
		"FREQ=WEEKLY;INTERVAL=2=3",
		"FREQ",
	} {
		_, err := Decode(s)

		malformedErr := &MalformedRuleError{}
		assert.ErrorAs(t, err, &malformedErr, "decoding %q", s)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	encoded := Encode(Rule{Freq: FreqWeekly, Interval: 2, ByDay: []string{"MO", "TH"}})
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH", encoded)

	parsed, err := Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, Encode(*parsed))
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=FR", Encode(Rule{Freq: FreqWeekly, ByDay: []string{"FR"}}))
	assert.Equal(t, "BYDAY=SA,SU", Encode(Rule{ByDay: []string{"SA", "SU"}}))
}

func TestParse(t *testing.T) {
	rule, err := Parse("FREQ=WEEKLY;INTERVAL=3;BYDAY=MO,WE,FR")
	require.NoError(t, err)
	assert.Equal(t, &Rule{Freq: FreqWeekly, Interval: 3, ByDay: []string{"MO", "WE", "FR"}}, rule)

	// interval defaults to 1 when omitted
	rule, err = Parse("FREQ=WEEKLY;BYDAY=SU")
	require.NoError(t, err)
	assert.Equal(t, 1, rule.Interval)
}

func TestParseRejectsInvalidFields(t *testing.T) {
	// field violations carry the same error type as broken segments, so one
	// check at the api boundary covers the whole grammar
	for _, s := range []string{
		"FREQ=WEEKLY;INTERVAL=0;BYDAY=MO",
		"FREQ=WEEKLY;INTERVAL=x;BYDAY=MO",
		"FREQ=WEEKLY;INTERVAL=1;BYDAY=XX",
		"FREQ=WEEKLY;INTERVAL=1",
	} {
		_, err := Parse(s)

		malformedErr := &MalformedRuleError{}
		assert.ErrorAs(t, err, &malformedErr, "parsing %q", s)
	}
}
