package task

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath returns the artifact path the task will produce: the
// explicit output parameter when given, otherwise the input path with
// its extension replaced by the rule's suffix. The path is computed
// before execution so Generated tasks can inject it as a positional and
// Stdout tasks can use it as the redirect target; whether the file then
// actually appears is checked afterwards by VerifyOutput.
func OutputPath(s *Spec, vals Values) (string, error) {
	rule := s.Output

	if rule.Param != "" && vals.Set(rule.Param) {
		out, ok := vals[rule.Param].(string)
		if !ok {
			return "", fmt.Errorf("%s: parameter %s: cannot use %T as a path", s.Task, rule.Param, vals[rule.Param])
		}
		return out, nil
	}
	if rule.Mode == OutputExplicit {
		return "", fmt.Errorf("%s: no output path given and the task does not derive one", s.Task)
	}

	if !vals.Set(rule.Input) {
		return "", fmt.Errorf("%s: cannot derive an output path without %s", s.Task, rule.Input)
	}
	in, ok := vals[rule.Input].(string)
	if !ok {
		return "", fmt.Errorf("%s: parameter %s: cannot use %T as a path", s.Task, rule.Input, vals[rule.Input])
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + rule.Suffix, nil
}

// VerifyOutput asserts the resolved artifact exists after a zero-exit
// run. A miss is an OutputNotFoundError, kept distinct from execution
// failure so callers can tell "the tool failed" from "the tool lied".
func VerifyOutput(s *Spec, path string) error {
	if _, err := os.Stat(path); err != nil {
		return &OutputNotFoundError{Task: s.Task, Path: path}
	}
	return nil
}
