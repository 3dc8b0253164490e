// Package executor runs wrapped MINC binaries as subprocesses, passing
// the argument vector straight through (no shell), and captures exit
// code, stdout and stderr. It is strictly synchronous: one process per
// call, blocking until exit; cancellation comes from the caller's
// context killing the child.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// ExecutionError reports that a wrapped binary could not be launched or
// exited non-zero. ExitCode is -1 when the process never started.
type ExecutionError struct {
	Binary   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: could not run: %v", e.Binary, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d", e.Binary, e.ExitCode)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Result holds the observable outcome of one subprocess run.
type Result struct {
	Argv     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Executor resolves tool binaries and runs them. BinDir, when set, is
// searched before PATH so a local MINC install wins over a system one.
type Executor struct {
	BinDir  string
	WorkDir string
	log     *log.Logger
}

// New returns an Executor searching binDir (may be empty) before PATH.
func New(binDir string) *Executor {
	return &Executor{BinDir: binDir, log: log.Default()}
}

// SetLogger replaces the executor's logger; nil restores the default.
func (x *Executor) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	x.log = l
}

// LookPath resolves a tool binary, preferring BinDir over PATH.
func (x *Executor) LookPath(binary string) (string, error) {
	if x.BinDir != "" {
		candidate := filepath.Join(x.BinDir, binary)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return exec.LookPath(binary)
}

// Run executes argv (argv[0] is the binary name) and captures its
// output. A launch failure or non-zero exit returns an ExecutionError;
// the partial Result is returned alongside so callers can still inspect
// stderr.
func (x *Executor) Run(ctx context.Context, argv []string) (*Result, error) {
	return x.run(ctx, argv, nil)
}

// RunRedirect executes argv with stdout written to stdoutPath instead of
// being captured. Used for tools that emit their artifact on stdout.
//
// Stdout goes to a temporary file in the target directory that is
// renamed into place only after a zero exit, so a missing binary or a
// failed run leaves nothing at stdoutPath.
func (x *Executor) RunRedirect(ctx context.Context, argv []string, stdoutPath string) (*Result, error) {
	if len(argv) == 0 {
		return nil, &ExecutionError{Binary: "", ExitCode: -1, Err: errors.New("empty argument vector")}
	}

	tmp, err := os.CreateTemp(filepath.Dir(stdoutPath), "."+filepath.Base(stdoutPath)+".*")
	if err != nil {
		return nil, &ExecutionError{Binary: argv[0], ExitCode: -1, Err: err}
	}

	res, runErr := x.run(ctx, argv, tmp)
	closeErr := tmp.Close()
	if runErr != nil {
		os.Remove(tmp.Name())
		return res, runErr
	}
	if closeErr != nil {
		os.Remove(tmp.Name())
		return res, &ExecutionError{Binary: argv[0], ExitCode: -1, Err: closeErr}
	}

	// CreateTemp opens 0600
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return res, &ExecutionError{Binary: argv[0], ExitCode: -1, Err: err}
	}
	if err := os.Rename(tmp.Name(), stdoutPath); err != nil {
		os.Remove(tmp.Name())
		return res, &ExecutionError{Binary: argv[0], ExitCode: -1, Err: err}
	}
	return res, nil
}

func (x *Executor) run(ctx context.Context, argv []string, stdout *os.File) (*Result, error) {
	if len(argv) == 0 {
		return nil, &ExecutionError{Binary: "", ExitCode: -1, Err: errors.New("empty argument vector")}
	}

	path, err := x.LookPath(argv[0])
	if err != nil {
		return nil, &ExecutionError{Binary: argv[0], ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Dir = x.WorkDir

	var outBuf, errBuf bytes.Buffer
	if stdout != nil {
		cmd.Stdout = stdout
	} else {
		cmd.Stdout = &outBuf
	}
	cmd.Stderr = &errBuf

	x.log.Debug("running", "binary", path, "args", argv[1:], "dir", cmd.Dir)

	start := time.Now()
	runErr := cmd.Run()
	res := &Result{
		Argv:     argv,
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, &ExecutionError{
				Binary:   argv[0],
				ExitCode: res.ExitCode,
				Stderr:   res.Stderr,
				Err:      runErr,
			}
		}
		res.ExitCode = -1
		return res, &ExecutionError{Binary: argv[0], ExitCode: -1, Err: runErr}
	}
	return res, nil
}
