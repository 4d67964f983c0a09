package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <file>...",
		Short: "Mark files for cleanup",
		Long: `Inserts the cleanup marker as the first line of each file, putting it in
scope of the next "ccleaner marked" run. Already-marked files are left alone.

Examples:
  ccleaner mark src/main/java/UserController.java`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			deps, err := buildDependencies(".")
			if err != nil {
				return err
			}

			for _, file := range args {
				if err := deps.Marker.Mark(file); err != nil {
					return err
				}
				if !quiet {
					fmt.Printf("marked %s\n", file)
				}
			}
			return nil
		},
	}
}
