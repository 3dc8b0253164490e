// Package runner drives one task invocation through its linear pipeline:
// apply defaults, validate, build the argument vector, execute, verify
// the output artifact. There is no state shared across invocations and
// no retry; the wrapped tools are not assumed safe to re-run.
package runner

import (
	"context"
	"errors"
	"time"

	"minctasks/pkg/envelope"
	"minctasks/pkg/executor"
	"minctasks/pkg/task"
)

// Runner executes task descriptors against an Executor.
type Runner struct {
	Exec *executor.Executor
}

func New(x *executor.Executor) *Runner {
	return &Runner{Exec: x}
}

// RunResult holds everything observable about one invocation.
type RunResult struct {
	Argv     []string
	Output   string // resolved artifact path
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Command validates the parameter set and renders the argument vector
// without executing anything. This is the dry-run surface.
func (r *Runner) Command(s *task.Spec, vals task.Values) ([]string, error) {
	argv, _, err := prepare(s, vals)
	return argv, err
}

// prepare runs the pre-execution half of the pipeline. The output path
// is resolved before building because Generated tasks inject it as a
// positional and Stdout tasks need a redirect target.
func prepare(s *task.Spec, vals task.Values) (argv []string, outPath string, err error) {
	vals = task.ApplyDefaults(s, vals)
	if err := task.Validate(s, vals); err != nil {
		return nil, "", err
	}
	outPath, err = task.OutputPath(s, vals)
	if err != nil {
		return nil, "", err
	}
	if s.Output.Mode == task.OutputGenerated && !vals.Set(s.Output.Param) {
		// ApplyDefaults already handed us a private copy
		vals[s.Output.Param] = outPath
	}
	argv, err = task.BuildCommand(s, vals)
	return argv, outPath, err
}

// Run executes the full pipeline. On failure the partial RunResult is
// still returned where one exists, so callers can report stderr.
func (r *Runner) Run(ctx context.Context, s *task.Spec, vals task.Values) (*RunResult, error) {
	argv, outPath, err := prepare(s, vals)
	if err != nil {
		return nil, err
	}

	var res *executor.Result
	if s.Output.Mode == task.OutputStdout {
		res, err = r.Exec.RunRedirect(ctx, argv, outPath)
	} else {
		res, err = r.Exec.Run(ctx, argv)
	}

	rr := &RunResult{Argv: argv, Output: outPath}
	if res != nil {
		rr.ExitCode = res.ExitCode
		rr.Stdout = res.Stdout
		rr.Stderr = res.Stderr
		rr.Duration = res.Duration
	}
	if err != nil {
		return rr, err
	}
	if err := task.VerifyOutput(s, outPath); err != nil {
		return rr, err
	}
	return rr, nil
}

// Envelope wraps a run outcome into the machine-readable result record.
func Envelope(s *task.Spec, rr *RunResult, err error) *envelope.Envelope {
	b := envelope.New(s.Task)
	if rr != nil {
		b.WithCommand(rr.Argv).WithMetrics(rr.ExitCode, rr.Duration)
		if err == nil {
			b.WithOutput(rr.Output)
		}
	}
	if err == nil {
		return b.Success().Build()
	}
	return b.Failure(Classify(err), err.Error()).Build()
}

// Classify maps an error to its taxonomy code. Unknown errors count as
// execution failures, the broadest bucket.
func Classify(err error) string {
	var ve *task.ValidationError
	var oe *task.OutputNotFoundError
	var ee *executor.ExecutionError
	switch {
	case errors.As(err, &ve):
		return envelope.CodeValidation
	case errors.As(err, &oe):
		return envelope.CodeOutputNotFound
	case errors.As(err, &ee):
		return envelope.CodeExecution
	}
	return envelope.CodeExecution
}
