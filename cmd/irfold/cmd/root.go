package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "irfold",
	Short: "Constant-folding evaluator for a typed tree IR",
	Long: `irfold is a tree-walking evaluator for the typed, tree-shaped IR a
compiler hands off mid-pipeline, modeled on Kotlin IR's own interpreter.

It does not parse source text: IR construction, type resolution, and
frontend name resolution all happen upstream. This binary exists to drive
the evaluator over a handful of bundled demonstration programs and report
the folded constant or the IR error it produced.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
