package forms

// fieldSeed is the authoring format for the intake form. Conditions are
// written as legacy "field === 'value'" expressions and compiled into tagged
// predicates at startup; a malformed expression leaves the field
// unconditional.
type fieldSeed struct {
	key            string
	question       string
	fieldType      string
	options        []Choice
	required       bool
	requiredIfExpr string
	pattern        string
	patternMessage string
	minLength      int
	minLengthMsg   string
}

var intakeSeeds = []fieldSeed{
	{
		key:          "full_name",
		question:     "What is your full legal name?",
		fieldType:    "text",
		required:     true,
		minLength:    2,
		minLengthMsg: "Please enter your name as it appears on your documents",
	},
	{
		key:            "email",
		question:       "What email address should we use to reach you?",
		fieldType:      "text",
		required:       true,
		pattern:        `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
		patternMessage: "Please enter a valid email address",
	},
	{
		key:       "current_status",
		question:  "What is your current immigration status?",
		fieldType: "select",
		required:  true,
		options: []Choice{
			{Value: "citizen", Label: "US citizen"},
			{Value: "green_card", Label: "Permanent resident (green card)"},
			{Value: "h1b_visa", Label: "H-1B work visa"},
			{Value: "l1_visa", Label: "L-1 transfer visa"},
			{Value: "student_visa", Label: "Student visa (F-1/J-1)"},
			{Value: "tourist", Label: "Visitor (B-1/B-2 or ESTA)"},
			{Value: "none", Label: "No current US status"},
		},
	},
	{
		key:            "visa_expiration",
		question:       "When does your current visa expire?",
		fieldType:      "text",
		requiredIfExpr: "current_status === 'h1b_visa'",
		pattern:        `^\d{4}-\d{2}-\d{2}$`,
		patternMessage: "Please use the YYYY-MM-DD format",
	},
	{
		key:       "relationship",
		question:  "What is your relationship to a US citizen or resident?",
		fieldType: "select",
		required:  true,
		options: []Choice{
			{Value: "none", Label: "None"},
			{Value: "engaged", Label: "Engaged to a US citizen"},
			{Value: "married_to_citizen", Label: "Married to a US citizen"},
			{Value: "married_to_resident", Label: "Married to a permanent resident"},
		},
	},
	{
		key:            "marriage_date",
		question:       "When did you get married?",
		fieldType:      "text",
		requiredIfExpr: "relationship === 'married_to_citizen'",
		pattern:        `^\d{4}-\d{2}-\d{2}$`,
		patternMessage: "Please use the YYYY-MM-DD format",
	},
	{
		key:       "time_in_country",
		question:  "How long have you lived in the United States?",
		fieldType: "select",
		required:  true,
		options: []Choice{
			{Value: "less_than_1", Label: "Less than a year"},
			{Value: "1_to_3", Label: "1 to 3 years"},
			{Value: "3_to_5", Label: "3 to 5 years"},
			{Value: "5_plus", Label: "More than 5 years"},
			{Value: "since_birth", Label: "Since birth"},
		},
	},
	{
		key:       "goal",
		question:  "What is your primary goal?",
		fieldType: "select",
		required:  true,
		options: []Choice{
			{Value: "citizenship", Label: "Become a US citizen"},
			{Value: "green_card", Label: "Get a green card"},
			{Value: "work", Label: "Work in the United States"},
			{Value: "family", Label: "Join or sponsor family"},
			{Value: "visit", Label: "Extend a visit"},
		},
	},
	{
		key:          "notes",
		question:     "Anything else we should know about your situation?",
		fieldType:    "textarea",
		minLength:    10,
		minLengthMsg: "Please add a little more detail (at least 10 characters)",
	},
}

var intakeFields = compileSeeds(intakeSeeds)

func compileSeeds(seeds []fieldSeed) []FieldDefinition {
	out := make([]FieldDefinition, 0, len(seeds))
	for _, s := range seeds {
		f := FieldDefinition{
			Key:      s.key,
			Question: s.question,
			Type:     s.fieldType,
			Options:  s.options,
			Validation: Validation{
				Required:         s.required,
				Pattern:          s.pattern,
				PatternMessage:   s.patternMessage,
				MinLength:        s.minLength,
				MinLengthMessage: s.minLengthMsg,
			},
		}
		if s.requiredIfExpr != "" {
			if cond, ok := ParseCondition(s.requiredIfExpr); ok {
				f.Validation.RequiredIf = cond
			}
		}
		out = append(out, f)
	}
	return out
}

// IntakeFields returns a copy of the intake form definitions in display order.
func IntakeFields() []FieldDefinition {
	out := make([]FieldDefinition, len(intakeFields))
	copy(out, intakeFields)
	return out
}

// FieldByKey looks up one intake field.
func FieldByKey(key string) (FieldDefinition, bool) {
	for _, f := range intakeFields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDefinition{}, false
}
