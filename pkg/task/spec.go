package task

// OutputMode selects how a task declares its output artifact.
type OutputMode int

const (
	// OutputExplicit: the output path parameter is mandatory and rendered
	// as a trailing positional (mincconvert, minccopy, mincaverage).
	OutputExplicit OutputMode = iota

	// OutputGenerated: the output path parameter is optional; when unset
	// the path is derived from the input by suffix substitution and
	// injected as the trailing positional (minctoecat).
	OutputGenerated

	// OutputStdout: the tool writes the artifact to standard output and
	// takes no output positional; the executor redirects captured stdout
	// into the derived path (minctoraw, mincdump).
	OutputStdout
)

// OutputRule declares where a task's output artifact comes from.
type OutputRule struct {
	Mode   OutputMode
	Suffix string // replaces the input extension for Generated/Stdout
	Param  string // name of the output-path parameter, if the task has one
	Input  string // name of the input-path parameter the suffix rule reads
}

// Spec is the static descriptor of one wrapped tool: its binary, its
// ordered parameter table and its output rule. The declaration order of
// Params is the flag emission order on the command line.
type Spec struct {
	Task   string
	Binary string
	Params []Param
	Output OutputRule
}

// Find returns the parameter with the given name, or nil.
func (s *Spec) Find(name string) *Param {
	for i := range s.Params {
		if s.Params[i].Name == name {
			return &s.Params[i]
		}
	}
	return nil
}

// ApplyDefaults returns a copy of vals with each defaulted parameter
// populated, unless the parameter or another member of its exclusion
// group is already set. The input map is never mutated.
func ApplyDefaults(s *Spec, vals Values) Values {
	out := vals.clone()
	for i := range s.Params {
		p := &s.Params[i]
		if p.Default == nil || out.Set(p.Name) {
			continue
		}
		if p.Xor != "" && groupSet(s, p.Xor, out) {
			continue
		}
		out[p.Name] = p.Default
	}
	return out
}

// groupSet reports whether any member of the exclusion group is set.
func groupSet(s *Spec, group string, vals Values) bool {
	for i := range s.Params {
		if s.Params[i].Xor == group && vals.Set(s.Params[i].Name) {
			return true
		}
	}
	return false
}
