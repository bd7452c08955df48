// Package forms defines the intake form schema and the field validator
// driving the multi-step questionnaire UI.
package forms

import "regexp"

const defaultRequiredMessage = "This field is required"

// Validation carries the per-field rules. Messages are optional; required
// checks fall back to a generic message when unset.
type Validation struct {
	Required         bool      `json:"required,omitempty"`
	RequiredMessage  string    `json:"requiredMessage,omitempty"`
	RequiredIf       Condition `json:"requiredIf,omitempty"`
	Pattern          string    `json:"pattern,omitempty"`
	PatternMessage   string    `json:"patternMessage,omitempty"`
	MinLength        int       `json:"minLength,omitempty"`
	MinLengthMessage string    `json:"minLengthMessage,omitempty"`
}

// FieldDefinition is one input in the intake form.
type FieldDefinition struct {
	Key        string     `json:"key"`
	Question   string     `json:"question"`
	Type       string     `json:"type"`
	Options    []Choice   `json:"options,omitempty"`
	Validation Validation `json:"validation"`
}

// Choice is one selectable option for a select-type field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ShouldShow reports whether the field is visible given the answers so far.
// Fields without a condition are always visible, and a condition that cannot
// be evaluated fails open.
func ShouldShow(field FieldDefinition, answers map[string]string) bool {
	return field.Validation.RequiredIf.Eval(answers)
}

// Validate checks a candidate value against the field's rules and returns the
// first failure message, or "" when the value passes. Rules run in a fixed
// order: required, conditionally required, pattern, minimum length. Pattern
// and length checks only apply to non-empty values, and an invalid pattern is
// skipped rather than reported as a user error.
func Validate(field FieldDefinition, value string, answers map[string]string) string {
	v := field.Validation

	if v.Required && value == "" {
		return requiredMessage(v.RequiredMessage)
	}
	if !v.RequiredIf.IsZero() && v.RequiredIf.Eval(answers) && value == "" {
		return requiredMessage(v.RequiredMessage)
	}
	if value == "" {
		return ""
	}
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err == nil && !re.MatchString(value) {
			if v.PatternMessage != "" {
				return v.PatternMessage
			}
			return "The value is not in the expected format"
		}
	}
	if v.MinLength > 0 && len(value) < v.MinLength {
		if v.MinLengthMessage != "" {
			return v.MinLengthMessage
		}
		return "The value is too short"
	}
	return ""
}

func requiredMessage(configured string) string {
	if configured != "" {
		return configured
	}
	return defaultRequiredMessage
}
