// Package envelope defines the machine-readable result record emitted by
// the CLI in --json mode: task outcome, error classification, resolved
// output artifact and timing.
package envelope

import "time"

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusSkipped Status = "skipped" // dry runs
)

// Error codes matching the wrapper's error taxonomy.
const (
	CodeValidation     = "validation"
	CodeExecution      = "execution"
	CodeOutputNotFound = "output_not_found"
)

type Envelope struct {
	Status  Status     `json:"status"`
	Task    string     `json:"task"`
	Command []string   `json:"command,omitempty"`
	Output  string     `json:"output,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Metrics *Metrics   `json:"metrics,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Metrics struct {
	ExitCode   int   `json:"exit_code"`
	DurationMs int64 `json:"duration_ms"`
}

// Builder assembles an Envelope incrementally.
type Builder struct {
	env *Envelope
}

func New(taskName string) *Builder {
	return &Builder{env: &Envelope{Task: taskName}}
}

func (b *Builder) Success() *Builder {
	b.env.Status = StatusSuccess
	return b
}

func (b *Builder) Skipped() *Builder {
	b.env.Status = StatusSkipped
	return b
}

func (b *Builder) Failure(code, message string) *Builder {
	b.env.Status = StatusFailure
	b.env.Error = &ErrorInfo{Code: code, Message: message}
	return b
}

func (b *Builder) WithCommand(argv []string) *Builder {
	b.env.Command = argv
	return b
}

func (b *Builder) WithOutput(path string) *Builder {
	b.env.Output = path
	return b
}

func (b *Builder) WithMetrics(exitCode int, d time.Duration) *Builder {
	b.env.Metrics = &Metrics{ExitCode: exitCode, DurationMs: d.Milliseconds()}
	return b
}

func (b *Builder) Build() *Envelope {
	return b.env
}
