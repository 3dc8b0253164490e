package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"minctasks/pkg/colors"
	"minctasks/pkg/envelope"
	"minctasks/pkg/runner"
	"minctasks/pkg/task"
)

// newTaskCmd builds one cobra subcommand straight from a task
// descriptor: every non-positional parameter becomes a typed flag,
// positionals become arguments. The descriptors stay the single source
// of truth for what each tool accepts.
func newTaskCmd(a *app, spec *task.Spec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.Task + useLine(spec),
		Short: "run " + spec.Binary,
		Args:  positionalArgs(spec),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTask(cmd, spec, args)
		},
	}

	for i := range spec.Params {
		p := &spec.Params[i]
		if p.Position != 0 {
			continue
		}
		name := flagName(p)
		switch p.Kind {
		case task.Bool:
			cmd.Flags().Bool(name, false, p.Help)
		case task.Int:
			cmd.Flags().Int(name, 0, p.Help)
		case task.Float:
			cmd.Flags().Float64(name, 0, p.Help)
		case task.String, task.File, task.Enum:
			cmd.Flags().String(name, "", p.Help)
		case task.FloatPair, task.IntPair, task.IntOrPair:
			cmd.Flags().String(name, "", p.Help+" (comma-separated)")
		case task.StringList:
			cmd.Flags().StringSlice(name, nil, p.Help)
		}
	}
	return cmd
}

func flagName(p *task.Param) string {
	return strings.ReplaceAll(p.Name, "_", "-")
}

// useLine renders the positional part of the usage string, in slot order.
func useLine(s *task.Spec) string {
	params := sortedPositionals(s)
	var b strings.Builder
	for _, p := range params {
		name := flagName(p)
		switch {
		case p.Kind == task.FileList:
			fmt.Fprintf(&b, " <%s>...", name)
		case p.Mandatory:
			fmt.Fprintf(&b, " <%s>", name)
		default:
			fmt.Fprintf(&b, " [%s]", name)
		}
	}
	return b.String()
}

func sortedPositionals(s *task.Spec) []*task.Param {
	var params []*task.Param
	for i := range s.Params {
		if s.Params[i].Position != 0 {
			params = append(params, &s.Params[i])
		}
	}
	sort.SliceStable(params, func(i, j int) bool {
		return params[i].Position < params[j].Position
	})
	return params
}

// positionalArgs derives the cobra arity check from the descriptor.
func positionalArgs(s *task.Spec) cobra.PositionalArgs {
	params := sortedPositionals(s)
	min, hasList := 0, false
	for _, p := range params {
		if p.Kind == task.FileList {
			hasList = true
		}
		if p.Mandatory {
			min++
		}
	}
	if hasList {
		return cobra.MinimumNArgs(min)
	}
	if min == len(params) {
		return cobra.ExactArgs(min)
	}
	return cobra.RangeArgs(min, len(params))
}

func (a *app) runTask(cmd *cobra.Command, spec *task.Spec, args []string) error {
	vals := task.Values{}

	// raw passthrough first, so explicit flags can override it
	if a.extra != "" {
		tokens, err := shlex.Split(a.extra)
		if err != nil {
			return fmt.Errorf("parsing --extra: %w", err)
		}
		parsed, err := task.Parse(spec, tokens)
		if err != nil {
			return err
		}
		for k, v := range parsed {
			vals[k] = v
		}
	}

	if err := collectFlags(cmd, spec, vals); err != nil {
		return err
	}
	posVals, err := task.Parse(spec, args)
	if err != nil {
		return err
	}
	for k, v := range posVals {
		vals[k] = v
	}

	a.applySettingsDefaults(spec, vals)

	if a.dryRun {
		argv, err := a.runner.Command(spec, vals)
		if err != nil {
			return err
		}
		if a.jsonOut {
			return printJSON(envelope.New(spec.Task).Skipped().WithCommand(argv).Build())
		}
		fmt.Printf("%s%s%s\n", colors.Dim, strings.Join(argv, " "), colors.Reset)
		return nil
	}

	rr, err := a.runner.Run(cmd.Context(), spec, vals)
	if a.jsonOut {
		if jerr := printJSON(runner.Envelope(spec, rr, err)); jerr != nil {
			return jerr
		}
		return err
	}
	if err != nil {
		if rr != nil && rr.Stderr != "" {
			fmt.Fprint(cmd.ErrOrStderr(), rr.Stderr)
		}
		return err
	}
	fmt.Printf("%s%s%s wrote %s%s%s (%.1fs)\n",
		colors.Green, spec.Binary, colors.Reset,
		colors.Bold, rr.Output, colors.Reset,
		rr.Duration.Seconds())
	return nil
}

// collectFlags moves every flag the user set into the value map, parsing
// the pair kinds from their comma-joined CLI form.
func collectFlags(cmd *cobra.Command, spec *task.Spec, vals task.Values) error {
	flags := cmd.Flags()
	for i := range spec.Params {
		p := &spec.Params[i]
		if p.Position != 0 {
			continue
		}
		name := flagName(p)
		if !flags.Changed(name) {
			continue
		}
		switch p.Kind {
		case task.Bool:
			b, _ := flags.GetBool(name)
			vals[p.Name] = b
		case task.Int:
			n, _ := flags.GetInt(name)
			vals[p.Name] = n
		case task.Float:
			f, _ := flags.GetFloat64(name)
			vals[p.Name] = f
		case task.String, task.File, task.Enum:
			s, _ := flags.GetString(name)
			vals[p.Name] = s
		case task.FloatPair:
			s, _ := flags.GetString(name)
			pair, err := parseFloatPair(s)
			if err != nil {
				return fmt.Errorf("--%s: %w", name, err)
			}
			vals[p.Name] = pair
		case task.IntPair:
			s, _ := flags.GetString(name)
			pair, err := parseIntPair(s)
			if err != nil {
				return fmt.Errorf("--%s: %w", name, err)
			}
			vals[p.Name] = pair
		case task.IntOrPair:
			s, _ := flags.GetString(name)
			v, err := parseIntOrPair(s)
			if err != nil {
				return fmt.Errorf("--%s: %w", name, err)
			}
			vals[p.Name] = v
		case task.StringList:
			vs, _ := flags.GetStringSlice(name)
			vals[p.Name] = vs
		}
	}
	return nil
}

// applySettingsDefaults folds settings-level defaults into the value
// set; anything given on the command line wins.
func (a *app) applySettingsDefaults(spec *task.Spec, vals task.Values) {
	if a.settings.Clobber && spec.Find("clobber") != nil &&
		!vals.Set("clobber") && !vals.Set("no_clobber") {
		vals["clobber"] = true
	}
}

func parseFloatPair(s string) ([2]float64, error) {
	lo, hi, found := strings.Cut(s, ",")
	if !found {
		return [2]float64{}, fmt.Errorf("expected two comma-separated values, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return [2]float64{}, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{a, b}, nil
}

func parseIntPair(s string) ([2]int, error) {
	lo, hi, found := strings.Cut(s, ",")
	if !found {
		return [2]int{}, fmt.Errorf("expected two comma-separated values, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return [2]int{}, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{a, b}, nil
}

func parseIntOrPair(s string) (any, error) {
	if strings.Contains(s, ",") {
		return parseIntPair(s)
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
