package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BuildCommand renders the argument vector for a validated parameter set:
// the binary name, then each set non-positional parameter's flag tokens
// in table declaration order, then the positionals sorted by ascending
// Position (so the -2 input slot precedes the -1 output slot).
//
// Tokens are an argv array for the process executor; no shell is ever
// involved, so there is no quoting or escaping.
func BuildCommand(s *Spec, vals Values) ([]string, error) {
	argv := []string{s.Binary}

	for i := range s.Params {
		p := &s.Params[i]
		if p.Position != 0 || !vals.Set(p.Name) {
			continue
		}
		// a flagless non-positional never reaches the command line; it
		// only feeds resolution (the explicit output path of a
		// stdout-producing task)
		if p.Flag == "" {
			continue
		}
		tokens, err := renderFlag(p, vals[p.Name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Task, err)
		}
		argv = append(argv, tokens...)
	}

	var positional []*Param
	for i := range s.Params {
		if s.Params[i].Position != 0 && vals.Set(s.Params[i].Name) {
			positional = append(positional, &s.Params[i])
		}
	}
	sort.SliceStable(positional, func(i, j int) bool {
		return positional[i].Position < positional[j].Position
	})
	for _, p := range positional {
		tokens, err := renderPositional(p, vals[p.Name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Task, err)
		}
		argv = append(argv, tokens...)
	}

	return argv, nil
}

// renderFlag formats one set parameter as its command-line tokens.
func renderFlag(p *Param, v any) ([]string, error) {
	switch p.Kind {
	case Bool:
		return []string{p.Flag}, nil
	case Int:
		n, ok := v.(int)
		if !ok {
			return nil, renderErr(p, v)
		}
		return []string{p.Flag, strconv.Itoa(n)}, nil
	case Float:
		f, ok := v.(float64)
		if !ok {
			return nil, renderErr(p, v)
		}
		return []string{p.Flag, formatFloat(f)}, nil
	case String, File, Enum:
		s, ok := v.(string)
		if !ok {
			return nil, renderErr(p, v)
		}
		return []string{p.Flag, s}, nil
	case FloatPair:
		pair, ok := v.([2]float64)
		if !ok {
			return nil, renderErr(p, v)
		}
		return []string{p.Flag, formatFloat(pair[0]), formatFloat(pair[1])}, nil
	case IntPair:
		pair, ok := v.([2]int)
		if !ok {
			return nil, renderErr(p, v)
		}
		return []string{p.Flag, strconv.Itoa(pair[0]), strconv.Itoa(pair[1])}, nil
	case IntOrPair:
		switch n := v.(type) {
		case int:
			return []string{p.Flag, strconv.Itoa(n)}, nil
		case [2]int:
			return []string{p.Flag, fmt.Sprintf("%d,%d", n[0], n[1])}, nil
		}
		return nil, renderErr(p, v)
	case StringList:
		vs, ok := v.([]string)
		if !ok {
			return nil, renderErr(p, v)
		}
		sep := p.Sep
		if sep == "" {
			sep = ","
		}
		return []string{p.Flag, strings.Join(vs, sep)}, nil
	}
	return nil, fmt.Errorf("parameter %s: kind %d cannot render as a flag", p.Name, p.Kind)
}

// renderPositional formats a positional parameter; a FileList expands to
// one token per path.
func renderPositional(p *Param, v any) ([]string, error) {
	switch p.Kind {
	case File, String:
		s, ok := v.(string)
		if !ok {
			return nil, renderErr(p, v)
		}
		return []string{s}, nil
	case FileList:
		vs, ok := v.([]string)
		if !ok {
			return nil, renderErr(p, v)
		}
		return append([]string(nil), vs...), nil
	}
	return nil, fmt.Errorf("parameter %s: kind %d cannot render as a positional", p.Name, p.Kind)
}

func renderErr(p *Param, v any) error {
	return fmt.Errorf("parameter %s: cannot render %T", p.Name, v)
}

// formatFloat renders shortest-exact so building and re-parsing a command
// never loses precision.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
