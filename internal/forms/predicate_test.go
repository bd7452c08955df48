package forms

import "testing"

func TestParseCondition(t *testing.T) {
	cases := []struct {
		expr string
		want Condition
		ok   bool
	}{
		{"current_status === 'h1b_visa'", Condition{Field: "current_status", Op: OpEquals, Value: "h1b_visa"}, true},
		{"relationship==='married_to_citizen'", Condition{Field: "relationship", Op: OpEquals, Value: "married_to_citizen"}, true},
		{"  goal   ===   'work'  ", Condition{Field: "goal", Op: OpEquals, Value: "work"}, true},
		{"status === ''", Condition{Field: "status", Op: OpEquals, Value: ""}, true},
		{"status == 'x'", Condition{}, false},
		{"status === x", Condition{}, false},
		{"=== 'x'", Condition{}, false},
		{"status === 'x", Condition{}, false},
		{"", Condition{}, false},
		{"just some words", Condition{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseCondition(tc.expr)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseCondition(%q) = %+v, %v; want %+v, %v", tc.expr, got, ok, tc.want, tc.ok)
		}
	}
}

func TestConditionEval(t *testing.T) {
	cond := Condition{Field: "status", Op: OpEquals, Value: "tourist"}
	if !cond.Eval(map[string]string{"status": "tourist"}) {
		t.Fatalf("expected match")
	}
	if cond.Eval(map[string]string{"status": "citizen"}) {
		t.Fatalf("expected mismatch")
	}
	if cond.Eval(map[string]string{}) {
		t.Fatalf("missing answer must not match a non-empty value")
	}

	var zero Condition
	if !zero.Eval(nil) {
		t.Fatalf("zero condition must always pass")
	}
}

func TestCompileSeedsFailOpenOnMalformedExpression(t *testing.T) {
	seeds := []fieldSeed{{
		key:            "extra",
		question:       "q",
		fieldType:      "text",
		requiredIfExpr: "not a real expression",
	}}
	fields := compileSeeds(seeds)
	if len(fields) != 1 {
		t.Fatalf("expected one field, got %d", len(fields))
	}
	f := fields[0]
	if !f.Validation.RequiredIf.IsZero() {
		t.Fatalf("malformed expression must compile to no condition, got %+v", f.Validation.RequiredIf)
	}
	if !ShouldShow(f, map[string]string{}) {
		t.Fatalf("field with malformed condition must stay visible")
	}
	if got := Validate(f, "", map[string]string{}); got != "" {
		t.Fatalf("malformed condition must not make the field required, got %q", got)
	}
}

func TestIntakeFieldsCompile(t *testing.T) {
	fields := IntakeFields()
	if len(fields) == 0 {
		t.Fatalf("expected intake fields")
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Key == "" || f.Question == "" {
			t.Fatalf("field missing key or question: %+v", f)
		}
		if seen[f.Key] {
			t.Fatalf("duplicate field key %q", f.Key)
		}
		seen[f.Key] = true
		if !f.Validation.RequiredIf.IsZero() {
			if _, ok := FieldByKey(f.Validation.RequiredIf.Field); !ok {
				t.Fatalf("field %q conditions on unknown field %q", f.Key, f.Validation.RequiredIf.Field)
			}
		}
	}

	if _, ok := FieldByKey("current_status"); !ok {
		t.Fatalf("expected the current_status field")
	}
}
