package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minctasks/pkg/envelope"
	"minctasks/pkg/executor"
	"minctasks/pkg/task"
	"minctasks/pkg/tools/minc"
)

func writeTool(t *testing.T, binDir, name, body string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"+body+"\n"), 0755)
	require.NoError(t, err)
}

func newTestRunner(t *testing.T) (*Runner, string) {
	t.Helper()
	binDir := t.TempDir()
	return New(executor.New(binDir)), binDir
}

func TestRunStdoutTaskRedirectsIntoDerivedPath(t *testing.T) {
	r, binDir := newTestRunner(t)
	writeTool(t, binDir, "minctoraw", "echo RAWDATA")

	dataDir := t.TempDir()
	input := filepath.Join(dataDir, "foo.mnc")
	require.NoError(t, os.WriteFile(input, []byte("volume"), 0644))

	rr, err := r.Run(context.Background(), minc.ToRaw(), task.Values{
		"input_file": input,
		"normalize":  true,
	})
	require.NoError(t, err)

	want := filepath.Join(dataDir, "foo.raw")
	assert.Equal(t, want, rr.Output)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "RAWDATA\n", string(data))
	assert.Equal(t, []string{"minctoraw", "-normalize", input}, rr.Argv)
}

func TestRunStdoutTaskHonorsExplicitOutput(t *testing.T) {
	r, binDir := newTestRunner(t)
	writeTool(t, binDir, "minctoraw", "echo RAWDATA")

	dataDir := t.TempDir()
	input := filepath.Join(dataDir, "foo.mnc")
	require.NoError(t, os.WriteFile(input, []byte("volume"), 0644))
	custom := filepath.Join(t.TempDir(), "custom.raw")

	rr, err := r.Run(context.Background(), minc.ToRaw(), task.Values{
		"input_file":  input,
		"normalize":   true,
		"output_file": custom,
	})
	require.NoError(t, err)

	assert.Equal(t, custom, rr.Output)
	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "RAWDATA\n", string(data))
	// the path is a redirect target, never an argument
	assert.Equal(t, []string{"minctoraw", "-normalize", input}, rr.Argv)
	assert.NoFileExists(t, filepath.Join(dataDir, "foo.raw"))
}

func TestRunGeneratedOutputIsInjectedAsPositional(t *testing.T) {
	r, binDir := newTestRunner(t)
	// touch the last argument, like minctoecat writing its output file
	writeTool(t, binDir, "minctoecat", `for a in "$@"; do last="$a"; done; : > "$last"`)

	dataDir := t.TempDir()
	input := filepath.Join(dataDir, "scan.mnc")
	require.NoError(t, os.WriteFile(input, []byte("volume"), 0644))

	rr, err := r.Run(context.Background(), minc.ToEcat(), task.Values{"input_file": input})
	require.NoError(t, err)

	want := filepath.Join(dataDir, "scan.v")
	assert.Equal(t, want, rr.Output)
	assert.FileExists(t, want)
	assert.Equal(t, []string{"minctoecat", input, want}, rr.Argv)
}

func TestRunValidationFailsBeforeAnyExecution(t *testing.T) {
	r, binDir := newTestRunner(t)
	marker := filepath.Join(binDir, "executed")
	writeTool(t, binDir, "minctoraw", ": > "+marker)

	// normalize group unset: must never reach the binary
	_, err := r.Run(context.Background(), minc.ToRaw(), task.Values{"input_file": "/data/foo.mnc"})

	var ve *task.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NoFileExists(t, marker)
}

func TestRunSurfacesExecutionError(t *testing.T) {
	r, binDir := newTestRunner(t)
	writeTool(t, binDir, "mincconvert", "echo 'cannot open' >&2; exit 3")

	rr, err := r.Run(context.Background(), minc.Convert(), task.Values{
		"input_file":  "/data/foo.mnc",
		"output_file": filepath.Join(binDir, "out.mnc"),
	})

	var ee *executor.ExecutionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.ExitCode)
	require.NotNil(t, rr)
	assert.Contains(t, rr.Stderr, "cannot open")
}

func TestRunReportsMissingOutputDistinctly(t *testing.T) {
	r, binDir := newTestRunner(t)
	// exits zero without producing anything
	writeTool(t, binDir, "mincconvert", "exit 0")

	_, err := r.Run(context.Background(), minc.Convert(), task.Values{
		"input_file":  "/data/foo.mnc",
		"output_file": filepath.Join(binDir, "never-written.mnc"),
	})

	var onf *task.OutputNotFoundError
	require.ErrorAs(t, err, &onf)
	var ee *executor.ExecutionError
	assert.False(t, errors.As(err, &ee), "must not classify as execution failure")
}

func TestCommandDryRunInjectsDerivedOutput(t *testing.T) {
	r, _ := newTestRunner(t)

	argv, err := r.Command(minc.ToEcat(), task.Values{"input_file": "/a/b/scan.mnc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"minctoecat", "/a/b/scan.mnc", "/a/b/scan.v"}, argv)
}

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"validation": {&task.ValidationError{Task: "x"}, envelope.CodeValidation},
		"execution":  {&executor.ExecutionError{Binary: "x"}, envelope.CodeExecution},
		"output":     {&task.OutputNotFoundError{Task: "x"}, envelope.CodeOutputNotFound},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestEnvelopeOnSuccessAndFailure(t *testing.T) {
	s := minc.Dump()

	rr := &RunResult{Argv: []string{"mincdump", "in.mnc"}, Output: "in.txt"}
	env := Envelope(s, rr, nil)
	assert.Equal(t, envelope.StatusSuccess, env.Status)
	assert.Equal(t, "in.txt", env.Output)
	assert.Equal(t, "dump", env.Task)

	env = Envelope(s, nil, &task.ValidationError{Task: "dump", Violations: []string{"input_file is mandatory"}})
	assert.Equal(t, envelope.StatusFailure, env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.CodeValidation, env.Error.Code)
}
