// Package task defines the declarative parameter schema shared by every
// wrapped MINC tool: typed parameters, exclusion groups, validation,
// command-line construction and output-path resolution.
package task

// Kind is the semantic type of a parameter value.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
	Enum       // string restricted to Choices
	FloatPair  // [2]float64, rendered as two tokens after the flag
	IntPair    // [2]int, rendered as two tokens after the flag
	IntOrPair  // int or [2]int, rendered as one token ("3" or "3,4")
	StringList // []string, joined with Sep into one token
	File       // path string
	FileList   // []string of paths, one token each (positional use)
)

// Param describes one command-line parameter of a wrapped tool.
//
// A Param with Position != 0 is positional: it renders at a fixed slot at
// the end of the argument vector instead of as a named flag. Position -2
// is the conventional input slot, -1 the output slot.
type Param struct {
	Name      string
	Flag      string // rendered flag token; empty for positionals
	Kind      Kind
	Help      string
	Mandatory bool

	// Xor names an exclusion group: at most one member of the group may
	// be set. XorRequired additionally demands that exactly one is.
	Xor         string
	XorRequired bool

	Position int

	Choices  []string // Enum only
	Min, Max *int     // Int bounds, either may be nil
	Sep      string   // StringList join delimiter

	// Default is applied before validation when neither the parameter nor
	// any member of its exclusion group has been set.
	Default any

	// Requires lists parameters that must also be set when this one is.
	Requires []string
}

// Values holds the populated parameters for a single invocation, keyed by
// Param.Name. A Values map is an independent value with no shared state;
// distinct invocations never interact.
type Values map[string]any

// isSet reports whether the value counts as populated. A false Bool is
// treated as unset so that exclusion groups of boolean flags behave like
// the wrapped tools expect: only a true member emits its flag.
func isSet(v any, ok bool) bool {
	if !ok || v == nil {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// Set reports whether the named parameter is populated in vals.
func (vals Values) Set(name string) bool {
	v, ok := vals[name]
	return isSet(v, ok)
}

// clone returns a shallow copy so callers' maps are never mutated.
func (vals Values) clone() Values {
	out := make(Values, len(vals))
	for k, v := range vals {
		out[k] = v
	}
	return out
}

func intPtr(n int) *int { return &n }

// Bounded is a convenience for Int parameters with a closed or half-open
// range; pass a negative max for "no upper bound".
func Bounded(min, max int) (*int, *int) {
	lo := intPtr(min)
	if max < 0 {
		return lo, nil
	}
	return lo, intPtr(max)
}
