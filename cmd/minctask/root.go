package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"minctasks/pkg/executor"
	"minctasks/pkg/runner"
	"minctasks/pkg/settings"
	"minctasks/pkg/tools/minc"
)

// app carries the state shared by every subcommand: merged settings and
// the runner built from them.
type app struct {
	settings *settings.Settings
	runner   *runner.Runner

	binDir   string
	workDir  string
	logLevel string
	dryRun   bool
	jsonOut  bool
	extra    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "minctask",
		Short:         "typed wrappers around the MINC command-line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.binDir, "bin-dir", "", "directory searched for MINC binaries before PATH")
	pf.StringVar(&a.workDir, "workdir", "", "working directory for the spawned tool")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.dryRun, "dry-run", false, "print the command line without executing it")
	pf.BoolVar(&a.jsonOut, "json", false, "emit a JSON result envelope instead of human output")
	pf.StringVar(&a.extra, "extra", "", "extra raw tool arguments, parsed against the task schema")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}
		// CLI flags win over file and environment
		if a.binDir != "" {
			s.BinDir = a.binDir
		}
		if a.workDir != "" {
			s.WorkDir = a.workDir
		}
		if a.logLevel != "" {
			s.LogLevel = a.logLevel
		}
		a.settings = s

		if lvl, err := log.ParseLevel(s.LogLevel); err == nil {
			log.SetLevel(lvl)
		}

		x := executor.New(s.BinDir)
		x.WorkDir = s.WorkDir
		a.runner = runner.New(x)
		return nil
	}

	for _, spec := range minc.All() {
		root.AddCommand(newTaskCmd(a, spec))
	}
	root.AddCommand(newVersionCmd(a))
	return root
}
