package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createUnmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmark <file>...",
		Short: "Remove the cleanup marker from files",
		Long: `Removes the cleanup marker from each file, taking it out of scope of
"ccleaner marked" runs. Files without the marker are left alone.

Examples:
  ccleaner unmark src/main/java/UserController.java`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			deps, err := buildDependencies(".")
			if err != nil {
				return err
			}

			if err := deps.Marker.Unmark(args); err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("unmarked %d file(s)\n", len(args))
			}
			return nil
		},
	}
}
