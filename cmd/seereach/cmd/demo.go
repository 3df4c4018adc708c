package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/see-reach/seereach/internal/config"
	"github.com/see-reach/seereach/internal/demo"
	"github.com/see-reach/seereach/internal/jsonexport"
	"github.com/see-reach/seereach/internal/printer"
	"github.com/see-reach/seereach/pkg/seereach"
)

var demoCmd = &cobra.Command{
	Use:   "demo <name>",
	Short: "Run a built-in demo program",
	Long: fmt.Sprintf(`Symbolically execute one of the built-in demo programs, printing
every feasible path.

Available demos: %s

Examples:
  # Enumerate the paths of the saturating controller
  seereach demo saturate

  # Show the demo's source instead of executing it
  seereach demo abs-sign --print`, strings.Join(demo.Names(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

var demoPrint bool

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().BoolVar(&demoPrint, "print", false, "print the demo program's source instead of executing it")
	demoCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit results as JSON")
}

func runDemo(_ *cobra.Command, args []string) error {
	program, ok := demo.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown demo %q (available: %s)", args[0], strings.Join(demo.Names(), ", "))
	}

	if demoPrint {
		fmt.Println(printer.Program(program))
		return nil
	}

	cfg := config.LoadOrDefault(configPath)
	entry := program.Functions[0].Name

	results, err := seereach.Execute(context.Background(), program, entry,
		seereach.WithSolverBinary(cfg.Solver.Binary, cfg.Solver.Timeout))
	if err != nil {
		return err
	}

	if jsonOutput {
		doc, err := jsonexport.EncodeResults(results)
		if err != nil {
			return err
		}
		fmt.Println(string(doc))
		return nil
	}

	fmt.Print(printer.EvalResults(results))
	return nil
}
