package forms

import "strings"

// Op identifies a condition operator. Only equality exists today; the tagged
// form leaves room for more without reparsing strings at evaluation time.
type Op string

const OpEquals Op = "equals"

// Condition is a structured visibility predicate over a previously answered
// field. A zero Condition (empty Field) means "no condition".
type Condition struct {
	Field string `json:"field"`
	Op    Op     `json:"op"`
	Value string `json:"value"`
}

// IsZero reports whether no condition is set.
func (c Condition) IsZero() bool {
	return c.Field == ""
}

// Eval applies the condition to the current answers. Unrecognized operators
// evaluate to true so that a bad condition never hides a field.
func (c Condition) Eval(answers map[string]string) bool {
	if c.IsZero() {
		return true
	}
	switch c.Op {
	case OpEquals:
		return answers[c.Field] == c.Value
	default:
		return true
	}
}

// ParseCondition converts a legacy expression of the form
// "otherField === 'value'" into a Condition. Anything that does not match
// that shape returns the zero Condition and false; callers treat that as
// fail-open rather than an error.
func ParseCondition(expr string) (Condition, bool) {
	parts := strings.SplitN(expr, "===", 2)
	if len(parts) != 2 {
		return Condition{}, false
	}
	field := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if field == "" || len(value) < 2 {
		return Condition{}, false
	}
	if value[0] != '\'' || value[len(value)-1] != '\'' {
		return Condition{}, false
	}
	return Condition{
		Field: field,
		Op:    OpEquals,
		Value: value[1 : len(value)-1],
	}, true
}
