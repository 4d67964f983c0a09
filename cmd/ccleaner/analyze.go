package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

func createAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a source tree without removing anything",
		Long: `Runs the read-only deprecated-method analysis over a source tree and lists
the removal candidates. Nothing is modified.

Examples:
  ccleaner analyze
  ccleaner analyze ./src/main/java
  ccleaner analyze --json ./src/main/java`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCleaner(rootArg(args))
			if err != nil {
				return err
			}

			analysis, err := c.AnalyzeDeprecatedControllers(
				cmd.Context(), model.Scope{Root: rootArg(args)})
			if err != nil {
				return err
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(analysis)
			}
			if quiet {
				return nil
			}

			if analysis.Empty() {
				fmt.Println("No removal candidates found.")
				return nil
			}
			for _, f := range analysis.Files {
				fmt.Printf("%s:\n", f.File)
				for _, sym := range f.DeprecatedMethods {
					fmt.Printf("  deprecated method %s\n", sym.QualifiedName)
				}
			}
			for _, sym := range analysis.TransitiveMethods {
				fmt.Printf("transitively unreachable: %s\n", sym.QualifiedName)
			}
			return nil
		},
	}
}
