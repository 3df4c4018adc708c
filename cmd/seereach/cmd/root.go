package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "seereach",
	Short: "Symbolic execution engine for a small typed expression language",
	Long: `seereach symbolically executes programs written in a small typed
expression language, enumerating every feasible path and pruning those
whose path condition an SMT solver proves unsatisfiable.

Given a program and an entry function, it synthesizes one symbolic
variable per parameter (unless concrete arguments are supplied) and
prints, for every reachable path, the resulting symbolic value and the
conjunction of branch conditions that lead to it.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "seereach.yaml", "path to config file")
}
