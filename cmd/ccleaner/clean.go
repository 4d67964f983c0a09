package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/cleaner"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

func createCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [path]",
		Short: "Remove dead deprecated controller methods from a source tree",
		Long: `Removes unreferenced deprecated controller methods, plus the private methods
that become unreachable once their last caller is gone. Runs up to the
configured number of passes and asks for confirmation once before the first
removal.

Examples:
  ccleaner clean
  ccleaner clean ./src/main/java
  ccleaner clean --yes --json ./src/main/java`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCleaner(rootArg(args))
			if err != nil {
				return err
			}

			report, err := c.RunDeprecatedControllerCleanup(
				cmd.Context(), model.Scope{Root: rootArg(args)})
			if err != nil {
				return err
			}
			return printReport(report)
		},
	}
}

// printReport renders a run report on stdout, honoring --json and --quiet.
func printReport(report *cleaner.Report) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(report)
	}
	if quiet {
		return nil
	}

	if report.TotalRemoved() == 0 {
		fmt.Println("Nothing removed.")
		return nil
	}

	fmt.Printf("Removed %d symbols in %d passes:\n",
		report.TotalRemoved(), report.PassesRun)
	for _, category := range []classifier.Category{
		classifier.CategoryDeprecatedMethod,
		classifier.CategoryUnusedImport,
		classifier.CategoryUnusedField,
		classifier.CategoryUnusedClass,
	} {
		if n := report.Removed[category]; n > 0 {
			fmt.Printf("  %s: %d\n", category, n)
		}
	}
	for _, failure := range report.Failures {
		fmt.Printf("  failed: %s (%s)\n", failure.Symbol, failure.Reason)
	}
	return nil
}
