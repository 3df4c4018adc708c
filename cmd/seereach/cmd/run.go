package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/see-reach/seereach/internal/config"
	"github.com/see-reach/seereach/internal/jsonexport"
	"github.com/see-reach/seereach/internal/printer"
	"github.com/see-reach/seereach/internal/symexpr"
	"github.com/see-reach/seereach/pkg/seereach"
	"github.com/tidwall/gjson"
)

var (
	evalExpr     string
	entryName    string
	jsonOutput   bool
	solverBinary string
	argsJSON     string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Symbolically execute a program",
	Long: `Parse a program, symbolically execute its entry function, and print
one block per feasible path: the symbolic return value and the
conjunction of branch conditions that lead to it.

One symbolic variable is synthesized per entry parameter unless
--args-json supplies explicit symbolic or concrete terms.

Examples:
  # Execute a source file's "main" entry
  seereach run program.sr

  # Execute a different entry function
  seereach run program.sr --entry controller

  # Evaluate inline source
  seereach run -e "fn main(x: int) -> int { return x + 1 }"

  # Feed a concrete argument and emit JSON
  seereach run program.sr --args-json '{"x": {"kind": "int", "value": 3}}' --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "execute inline source instead of reading from file")
	runCmd.Flags().StringVar(&entryName, "entry", "main", "entry function name")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit results as JSON")
	runCmd.Flags().StringVar(&solverBinary, "solver", "", "SMT solver binary (overrides config)")
	runCmd.Flags().StringVar(&argsJSON, "args-json", "", "JSON object mapping parameter names to symbolic terms")
}

func runProgram(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	program, err := seereach.ParseProgram(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing %s failed", filename)
	}

	cfg := config.LoadOrDefault(configPath)
	binary := cfg.Solver.Binary
	if solverBinary != "" {
		binary = solverBinary
	}

	opts := []seereach.Option{seereach.WithSolverBinary(binary, cfg.Solver.Timeout)}
	if argsJSON != "" {
		symArgs, err := decodeArgsJSON(argsJSON)
		if err != nil {
			return err
		}
		opts = append(opts, seereach.WithSymbolicArgs(symArgs))
	}

	results, err := seereach.Execute(context.Background(), program, entryName, opts...)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%d feasible path(s)\n", len(results))
	}

	format := cfg.Output.Format
	if jsonOutput {
		format = "json"
	}
	if format == "json" {
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

func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline source")
}

// decodeArgsJSON parses {"param": <symexpr JSON>, ...} into the
// symbolic-argument map the engine accepts.
func decodeArgsJSON(raw string) (map[string]symexpr.SymExpr, error) {
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("--args-json must be a JSON object, got %q", raw)
	}
	out := map[string]symexpr.SymExpr{}
	var decodeErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		expr, err := jsonexport.DecodeSymExpr(value.Raw)
		if err != nil {
			decodeErr = fmt.Errorf("argument %q: %w", key.String(), err)
			return false
		}
		out[key.String()] = expr
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return out, nil
}
