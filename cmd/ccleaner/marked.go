package main

import (
	"github.com/spf13/cobra"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

func createMarkedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marked [path]",
		Short: "Clean unused imports, fields and classes from marked files",
		Long: `Removes unused imports, unused private fields and unused classes from the
files carrying the cleanup marker, then clears the marker.

Examples:
  ccleaner marked
  ccleaner marked --yes ./src/main/java`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCleaner(rootArg(args))
			if err != nil {
				return err
			}

			report, err := c.RunMarkedFileCleanup(
				cmd.Context(), model.Scope{Root: rootArg(args)})
			if err != nil {
				return err
			}
			return printReport(report)
		},
	}
}
