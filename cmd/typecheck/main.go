// Command typecheck runs the worked scenarios of internal/fixtures through
// the inference core and reports the result. It has no lexer or parser of
// its own (SPEC_FULL.md §13): every scenario's AST is hand-built Go, loaded
// by name from a YAML manifest.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var manifestPath string

func main() {
	root := &cobra.Command{
		Use:   "typecheck",
		Short: "Run the Hindley-Milner inference core against fixture scenarios",
	}
	root.PersistentFlags().StringVar(&manifestPath, "manifest", "cmd/typecheck/scenarios.yaml", "path to the scenario manifest")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the scenarios named in the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			for _, s := range m.Scenarios {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s)\n", s.Name, s.Expect)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario>",
		Short: "Type-check one scenario by name, or all of them if none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				failed := 0
				for _, s := range m.Scenarios {
					if err := runScenario(cmd.OutOrStdout(), s); err != nil {
						failed++
					}
				}
				if failed > 0 {
					os.Exit(1)
				}
				return nil
			}

			s, ok := m.Find(args[0])
			if !ok {
				return fmt.Errorf("no scenario named %q in %s", args[0], manifestPath)
			}
			if err := runScenario(cmd.OutOrStdout(), s); err != nil {
				os.Exit(1)
			}
			return nil
		},
	}
}
