package recurrence

import (
	"fmt"
	"strconv"
	"strings"
)

const FreqWeekly = "WEEKLY"

const (
	keyFreq     = "FREQ"
	keyInterval = "INTERVAL"
	keyByDay    = "BYDAY"
)

// weekdayNumbers maps the two-letter weekday codes to ISO numbers,
// Monday=1..Sunday=7.
var weekdayNumbers = map[string]int{
	"MO": 1,
	"TU": 2,
	"WE": 3,
	"TH": 4,
	"FR": 5,
	"SA": 6,
	"SU": 7,
}

// Rule is a decoded recurrence declaration. Only weekly frequency is
// supported; ByDay holds two-letter weekday codes and is never empty for a
// rule produced by Parse.
type Rule struct {
	Freq     string
	Interval int
	ByDay    []string
}

// Decode splits an encoded rule into its raw key=value pairs. Validation of
// the required subset happens at the call site.
func Decode(s string) (map[string]string, error) {
	res := map[string]string{}
	for _, segment := range strings.Split(s, ";") {
		kv := strings.Split(segment, "=")
		if len(kv) != 2 {
			return nil, &MalformedRuleError{Segment: segment}
		}
		res[kv[0]] = kv[1]
	}

	return res, nil
}

// Encode serializes a rule in FREQ, INTERVAL, BYDAY order, omitting empty
// fields. Parse(Encode(r)) round-trips for any rule Parse accepts.
func Encode(r Rule) string {
	var parts []string
	if r.Freq != "" {
		parts = append(parts, keyFreq+"="+r.Freq)
	}
	if r.Interval != 0 {
		parts = append(parts, keyInterval+"="+strconv.Itoa(r.Interval))
	}
	if len(r.ByDay) != 0 {
		parts = append(parts, keyByDay+"="+strings.Join(r.ByDay, ","))
	}

	return strings.Join(parts, ";")
}

// Parse decodes and validates a rule string into its structured form.
func Parse(s string) (*Rule, error) {
	fields, err := Decode(s)
	if err != nil {
		return nil, err
	}

	rule := &Rule{
		Freq:     fields[keyFreq],
		Interval: 1,
	}

	if v, ok := fields[keyInterval]; ok {
		interval, err := strconv.Atoi(v)
		if err != nil || interval < 1 {
			return nil, &MalformedRuleError{Reason: fmt.Sprintf("invalid interval %q", v)}
		}
		rule.Interval = interval
	}

	if v, ok := fields[keyByDay]; ok {
		for _, code := range strings.Split(v, ",") {
			if _, ok := weekdayNumbers[code]; !ok {
				return nil, &MalformedRuleError{Reason: fmt.Sprintf("unknown weekday code %q", code)}
			}
			rule.ByDay = append(rule.ByDay, code)
		}
	}

	if len(rule.ByDay) == 0 {
		return nil, &MalformedRuleError{Reason: "no BYDAY"}
	}

	return rule, nil
}
