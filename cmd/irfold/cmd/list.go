package cmd

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/demo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled demo IR programs",
	Long:  `Print the names accepted by "irfold eval <name>", one per line.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, name := range demo.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
