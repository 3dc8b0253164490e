// Package colors holds the ANSI codes used by the CLI's human-readable
// output, kept in one place so command files do not duplicate them.
package colors

const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)
