package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse inverts BuildCommand for a spec: it recovers a Values map from a
// rendered token list (without the leading binary name). It exists for
// the raw passthrough path of the CLI, where extra arguments arrive as a
// flat string and must still go through schema validation, and it is the
// round-trip check that flag rendering is lossless.
func Parse(s *Spec, tokens []string) (Values, error) {
	byFlag := make(map[string]*Param)
	for i := range s.Params {
		p := &s.Params[i]
		if p.Flag != "" && p.Position == 0 {
			byFlag[p.Flag] = p
		}
	}

	vals := Values{}
	var positional []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		p, ok := byFlag[tok]
		if !ok {
			if strings.HasPrefix(tok, "-") && len(tok) > 1 {
				return nil, fmt.Errorf("%s: unrecognized flag %q", s.Task, tok)
			}
			positional = append(positional, tok)
			continue
		}
		if _, dup := vals[p.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate flag %q", s.Task, tok)
		}

		consumed, v, err := parseValue(p, tokens[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%s: flag %q: %w", s.Task, tok, err)
		}
		vals[p.Name] = v
		i += consumed
	}

	if err := assignPositionals(s, vals, positional); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Task, err)
	}
	return vals, nil
}

// parseValue reads the value tokens for one flag and returns how many it
// consumed.
func parseValue(p *Param, rest []string) (int, any, error) {
	need := 1
	if p.Kind == Bool {
		need = 0
	} else if p.Kind == FloatPair || p.Kind == IntPair {
		need = 2
	}
	if len(rest) < need {
		return 0, nil, fmt.Errorf("expects %d value token(s)", need)
	}

	switch p.Kind {
	case Bool:
		return 0, true, nil
	case Int:
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return 0, nil, err
		}
		return 1, n, nil
	case Float:
		f, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return 0, nil, err
		}
		return 1, f, nil
	case String, File, Enum:
		return 1, rest[0], nil
	case FloatPair:
		var pair [2]float64
		for i := 0; i < 2; i++ {
			f, err := strconv.ParseFloat(rest[i], 64)
			if err != nil {
				return 0, nil, err
			}
			pair[i] = f
		}
		return 2, pair, nil
	case IntPair:
		var pair [2]int
		for i := 0; i < 2; i++ {
			n, err := strconv.Atoi(rest[i])
			if err != nil {
				return 0, nil, err
			}
			pair[i] = n
		}
		return 2, pair, nil
	case IntOrPair:
		if lo, hi, found := strings.Cut(rest[0], ","); found {
			a, err := strconv.Atoi(lo)
			if err != nil {
				return 0, nil, err
			}
			b, err := strconv.Atoi(hi)
			if err != nil {
				return 0, nil, err
			}
			return 1, [2]int{a, b}, nil
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return 0, nil, err
		}
		return 1, n, nil
	case StringList:
		sep := p.Sep
		if sep == "" {
			sep = ","
		}
		return 1, strings.Split(rest[0], sep), nil
	}
	return 0, nil, fmt.Errorf("kind %d cannot be parsed", p.Kind)
}

// assignPositionals distributes trailing tokens over the spec's
// positional slots in ascending Position order. A FileList slot absorbs
// whatever the fixed slots around it do not claim; fixed slots after the
// list fill from the back, so the output path stays last even when the
// input list length varies.
func assignPositionals(s *Spec, vals Values, tokens []string) error {
	var params []*Param
	for i := range s.Params {
		if s.Params[i].Position != 0 {
			params = append(params, &s.Params[i])
		}
	}
	sort.SliceStable(params, func(i, j int) bool {
		return params[i].Position < params[j].Position
	})

	listIdx := -1
	for i, p := range params {
		if p.Kind == FileList {
			if listIdx >= 0 {
				return fmt.Errorf("spec declares more than one positional file list")
			}
			listIdx = i
		}
	}

	if listIdx < 0 {
		if len(tokens) > len(params) {
			return fmt.Errorf("too many positional arguments: got %d, expected at most %d", len(tokens), len(params))
		}
		for i, tok := range tokens {
			vals[params[i].Name] = tok
		}
		return nil
	}

	before, after := params[:listIdx], params[listIdx+1:]
	if len(tokens) < len(before)+len(after) {
		return fmt.Errorf("not enough positional arguments: got %d", len(tokens))
	}
	for i, p := range before {
		vals[p.Name] = tokens[i]
	}
	for i, p := range after {
		vals[p.Name] = tokens[len(tokens)-len(after)+i]
	}
	if middle := tokens[len(before) : len(tokens)-len(after)]; len(middle) > 0 {
		vals[params[listIdx].Name] = append([]string(nil), middle...)
	}
	return nil
}
