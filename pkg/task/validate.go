package task

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks a parameter set against the spec without side effects.
// It collects every violation rather than stopping at the first, in
// parameter declaration order, and returns them as one ValidationError.
// A nil return means the set is safe to hand to BuildCommand.
func Validate(s *Spec, vals Values) error {
	var violations []string

	for i := range s.Params {
		p := &s.Params[i]
		set := vals.Set(p.Name)

		if p.Mandatory && !set {
			violations = append(violations, fmt.Sprintf("%s is mandatory", p.Name))
			continue
		}
		if !set {
			continue
		}
		if msg := checkValue(p, vals[p.Name]); msg != "" {
			violations = append(violations, msg)
		}
	}

	violations = append(violations, checkGroups(s, vals)...)
	violations = append(violations, checkRequires(s, vals)...)
	violations = append(violations, checkUnknown(s, vals)...)

	if len(violations) > 0 {
		return &ValidationError{Task: s.Task, Violations: violations}
	}
	return nil
}

// checkValue verifies the dynamic type and the per-kind constraints of a
// single set value. Returns "" when the value is acceptable.
func checkValue(p *Param, v any) string {
	switch p.Kind {
	case Bool:
		if _, ok := v.(bool); !ok {
			return typeMsg(p, "bool", v)
		}
	case Int:
		n, ok := v.(int)
		if !ok {
			return typeMsg(p, "int", v)
		}
		if p.Min != nil && n < *p.Min {
			return fmt.Sprintf("%s must be >= %d, got %d", p.Name, *p.Min, n)
		}
		if p.Max != nil && n > *p.Max {
			return fmt.Sprintf("%s must be <= %d, got %d", p.Name, *p.Max, n)
		}
	case Float:
		if _, ok := v.(float64); !ok {
			return typeMsg(p, "float64", v)
		}
	case String, File:
		if _, ok := v.(string); !ok {
			return typeMsg(p, "string", v)
		}
	case Enum:
		s, ok := v.(string)
		if !ok {
			return typeMsg(p, "string", v)
		}
		for _, c := range p.Choices {
			if s == c {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of %s, got %q", p.Name, strings.Join(p.Choices, "|"), s)
	case FloatPair:
		if _, ok := v.([2]float64); !ok {
			return typeMsg(p, "[2]float64", v)
		}
	case IntPair:
		if _, ok := v.([2]int); !ok {
			return typeMsg(p, "[2]int", v)
		}
	case IntOrPair:
		switch v.(type) {
		case int, [2]int:
		default:
			return typeMsg(p, "int or [2]int", v)
		}
	case StringList, FileList:
		vs, ok := v.([]string)
		if !ok {
			return typeMsg(p, "[]string", v)
		}
		if len(vs) == 0 {
			return fmt.Sprintf("%s must not be empty", p.Name)
		}
	}
	return ""
}

func typeMsg(p *Param, want string, got any) string {
	return fmt.Sprintf("%s expects %s, got %T", p.Name, want, got)
}

// checkGroups enforces exclusion groups: at most one member set, and for
// required groups exactly one. Groups are reported in order of first
// appearance in the parameter table.
func checkGroups(s *Spec, vals Values) []string {
	var msgs []string
	seen := map[string]bool{}
	for i := range s.Params {
		g := s.Params[i].Xor
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true

		var members, set []string
		required := false
		for j := range s.Params {
			q := &s.Params[j]
			if q.Xor != g {
				continue
			}
			members = append(members, q.Name)
			required = required || q.XorRequired
			if vals.Set(q.Name) {
				set = append(set, q.Name)
			}
		}
		if len(set) > 1 {
			msgs = append(msgs, fmt.Sprintf("%s are mutually exclusive", strings.Join(set, " and ")))
		}
		if required && len(set) == 0 {
			msgs = append(msgs, fmt.Sprintf("exactly one of %s must be set", strings.Join(members, ", ")))
		}
	}
	return msgs
}

// checkRequires enforces cross-parameter dependencies.
func checkRequires(s *Spec, vals Values) []string {
	var msgs []string
	for i := range s.Params {
		p := &s.Params[i]
		if !vals.Set(p.Name) {
			continue
		}
		for _, dep := range p.Requires {
			if !vals.Set(dep) {
				msgs = append(msgs, fmt.Sprintf("%s requires %s", p.Name, dep))
			}
		}
	}
	return msgs
}

// checkUnknown rejects value names the spec does not declare. Names are
// sorted so the report does not depend on map iteration order.
func checkUnknown(s *Spec, vals Values) []string {
	var unknown []string
	for name := range vals {
		if s.Find(name) == nil {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	var msgs []string
	for _, name := range unknown {
		msgs = append(msgs, fmt.Sprintf("unknown parameter %s", name))
	}
	return msgs
}
