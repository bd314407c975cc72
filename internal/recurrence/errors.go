package recurrence

import "fmt"

// MalformedRuleError reports a rule string that violates the grammar: a
// segment that does not split into exactly one key=value pair, or a field
// whose value is unusable.
type MalformedRuleError struct {
	Segment string
	Reason  string
}

func (e *MalformedRuleError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed rule: %s", e.Reason)
	}
	return fmt.Sprintf("malformed rule segment %q", e.Segment)
}

// UnsupportedFrequencyError reports a FREQ value other than WEEKLY. It is
// fatal for that rule's expansion only, never for a whole month computation.
type UnsupportedFrequencyError struct {
	Freq string
}

func (e *UnsupportedFrequencyError) Error() string {
	return fmt.Sprintf("unsupported frequency %q", e.Freq)
}
