package task

import (
	"errors"
	"strings"
	"testing"
)

// demoSpec exercises every validation rule without depending on any real
// tool descriptor.
func demoSpec() *Spec {
	min0, max9 := Bounded(0, 9)
	return &Spec{
		Task:   "demo",
		Binary: "demotool",
		Params: []Param{
			{Name: "input_file", Kind: File, Mandatory: true, Position: -2},
			{Name: "flag_a", Flag: "-a", Kind: Bool, Xor: "ab"},
			{Name: "flag_b", Flag: "-b", Kind: Bool, Xor: "ab"},
			{Name: "mode", Flag: "-mode", Kind: Enum, Choices: []string{"c", "f"}},
			{Name: "level", Flag: "-level", Kind: Int, Min: min0, Max: max9},
			{Name: "on", Flag: "-on", Kind: Bool, Xor: "onoff", XorRequired: true},
			{Name: "off", Flag: "-off", Kind: Bool, Xor: "onoff", XorRequired: true},
			{Name: "wide", Flag: "-wide", Kind: Bool, Requires: []string{"mode"}},
		},
		Output: OutputRule{Mode: OutputStdout, Suffix: ".out", Input: "input_file"},
	}
}

// baseValues satisfies every mandatory rule of demoSpec.
func baseValues() Values {
	return Values{"input_file": "/tmp/foo.mnc", "on": true}
}

func mustValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve
}

func TestValidateAcceptsCompleteSet(t *testing.T) {
	if err := Validate(demoSpec(), baseValues()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestValidateMissingMandatory(t *testing.T) {
	vals := baseValues()
	delete(vals, "input_file")

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "input_file is mandatory") {
		t.Errorf("expected mandatory violation, got: %v", ve)
	}
}

func TestValidateExclusionGroupBothSet(t *testing.T) {
	vals := baseValues()
	vals["flag_a"] = true
	vals["flag_b"] = true

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "flag_a and flag_b are mutually exclusive") {
		t.Errorf("expected exclusion violation, got: %v", ve)
	}
}

func TestValidateRequiredGroupEmpty(t *testing.T) {
	vals := baseValues()
	delete(vals, "on")

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "exactly one of on, off must be set") {
		t.Errorf("expected required-group violation, got: %v", ve)
	}
}

func TestValidateFalseBoolCountsAsUnset(t *testing.T) {
	vals := baseValues()
	vals["flag_a"] = false
	vals["flag_b"] = true

	if err := Validate(demoSpec(), vals); err != nil {
		t.Errorf("a false bool must not trip the exclusion group, got: %v", err)
	}

	// and a required group of two false members is still empty
	vals["on"] = false
	mustValidationError(t, Validate(demoSpec(), vals))
}

func TestValidateEnumOutsideChoices(t *testing.T) {
	vals := baseValues()
	vals["mode"] = "x"

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "mode must be one of c|f") {
		t.Errorf("expected enum violation, got: %v", ve)
	}
}

func TestValidateIntBounds(t *testing.T) {
	for _, tc := range []struct {
		level int
		want  string
	}{
		{-1, "level must be >= 0"},
		{10, "level must be <= 9"},
	} {
		vals := baseValues()
		vals["level"] = tc.level
		ve := mustValidationError(t, Validate(demoSpec(), vals))
		if !strings.Contains(ve.Error(), tc.want) {
			t.Errorf("level=%d: expected %q in: %v", tc.level, tc.want, ve)
		}
	}

	vals := baseValues()
	vals["level"] = 9
	if err := Validate(demoSpec(), vals); err != nil {
		t.Errorf("level=9 should be in range, got: %v", err)
	}
}

func TestValidateRequires(t *testing.T) {
	vals := baseValues()
	vals["wide"] = true

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "wide requires mode") {
		t.Errorf("expected requires violation, got: %v", ve)
	}

	vals["mode"] = "c"
	if err := Validate(demoSpec(), vals); err != nil {
		t.Errorf("dependency satisfied, expected no error, got: %v", err)
	}
}

func TestValidateUnknownParameter(t *testing.T) {
	vals := baseValues()
	vals["bogus"] = 1

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "unknown parameter bogus") {
		t.Errorf("expected unknown-parameter violation, got: %v", ve)
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	vals := baseValues()
	vals["level"] = "three"

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	if !strings.Contains(ve.Error(), "level expects int") {
		t.Errorf("expected type violation, got: %v", ve)
	}
}

func TestValidateCollectsAllViolationsInOrder(t *testing.T) {
	vals := Values{
		"flag_a": true,
		"flag_b": true,
		"mode":   "x",
	}

	ve := mustValidationError(t, Validate(demoSpec(), vals))
	want := []string{
		"input_file is mandatory",
		"mode must be one of c|f, got \"x\"",
		"flag_a and flag_b are mutually exclusive",
		"exactly one of on, off must be set",
	}
	if len(ve.Violations) != len(want) {
		t.Fatalf("expected %d violations, got %d: %v", len(want), len(ve.Violations), ve.Violations)
	}
	for i, w := range want {
		if ve.Violations[i] != w {
			t.Errorf("violation %d: got %q, want %q", i, ve.Violations[i], w)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	s := &Spec{
		Task: "defaults",
		Params: []Param{
			{Name: "pick_a", Flag: "-pa", Kind: Bool, Xor: "pick"},
			{Name: "pick_b", Flag: "-pb", Kind: Bool, Xor: "pick", Default: true},
			{Name: "depth", Flag: "-depth", Kind: Int, Default: 4},
		},
	}

	vals := ApplyDefaults(s, Values{})
	if !vals.Set("pick_b") {
		t.Error("expected pick_b default to apply")
	}
	if got := vals["depth"]; got != 4 {
		t.Errorf("expected depth default 4, got %v", got)
	}

	// a set group member suppresses the group-mate's default
	vals = ApplyDefaults(s, Values{"pick_a": true})
	if vals.Set("pick_b") {
		t.Error("pick_b default must not apply when pick_a is set")
	}

	// the input map stays untouched
	in := Values{}
	ApplyDefaults(s, in)
	if len(in) != 0 {
		t.Errorf("ApplyDefaults mutated its input: %v", in)
	}
}
