package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/see-reach/seereach/internal/printer"
	"github.com/see-reach/seereach/pkg/seereach"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Format a source file",
	Long: `Parse a source file and pretty-print it back in canonical form.

The formatter is the printer half of the round-trip law: formatting an
already-formatted file is the identity.

Examples:
  # Format a file to stdout
  seereach fmt program.sr

  # Overwrite the file with its formatted version
  seereach fmt -w program.sr

  # Format from stdin
  cat program.sr | seereach fmt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
}

func runFmt(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		if fmtWrite {
			return fmt.Errorf("cannot use -w when reading from stdin")
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		formatted, err := formatSource(string(src))
		if err != nil {
			return err
		}
		fmt.Print(formatted)
		return nil
	}

	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	formatted, err := formatSource(string(src))
	if err != nil {
		return err
	}

	if fmtWrite {
		if string(src) == formatted {
			return nil
		}
		if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
			return fmt.Errorf("error writing file: %w", err)
		}
		if verbose {
			fmt.Printf("Formatted %s\n", filename)
		}
		return nil
	}

	fmt.Print(formatted)
	return nil
}

func formatSource(source string) (string, error) {
	program, err := seereach.ParseProgram(source)
	if err != nil {
		return "", err
	}
	return printer.Program(program) + "\n", nil
}
