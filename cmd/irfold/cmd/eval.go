package cmd

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/builtins"
	"github.com/cwbudde/irfold/internal/config"
	"github.com/cwbudde/irfold/internal/demo"
	"github.com/cwbudde/irfold/internal/ireval"
	"github.com/cwbudde/irfold/pkg/irjson"
	"github.com/spf13/cobra"
)

var (
	boundsFile string
	prettyJSON bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <demo-name>",
	Short: "Evaluate a bundled demo IR program",
	Long: `Evaluate one of the bundled demo IR programs (see "irfold list") and
print its result as JSON: {"kind":"const",...} on success, or
{"kind":"error",...} when evaluation raised an exception or hit an
internal limit.

Examples:
  # Run the recursive-fib demo
  irfold eval fib

  # Run with custom resource bounds
  irfold eval stack-overflow --bounds-file bounds.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&boundsFile, "bounds-file", "", "YAML file overriding the default command/stack-depth bounds")
	evalCmd.Flags().BoolVar(&prettyJSON, "pretty", true, "pretty-print the JSON result")
}

func runEval(_ *cobra.Command, args []string) error {
	prog, err := demo.Build(args[0])
	if err != nil {
		return fmt.Errorf("irfold: %w", err)
	}

	bounds := config.DefaultBounds()
	if boundsFile != "" {
		bounds, err = config.Load(boundsFile)
		if err != nil {
			return fmt.Errorf("irfold: %w", err)
		}
	}

	in := ireval.NewInterpreter(prog.Module, bounds, builtins.NewTables(), nil)
	result := in.Interpret(prog.Expr)

	out, err := irjson.EncodeResult(result, prettyJSON)
	if err != nil {
		return fmt.Errorf("irfold: encoding result: %w", err)
	}
	fmt.Println(out)
	return nil
}
