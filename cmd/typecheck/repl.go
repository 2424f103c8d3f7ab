package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Pick a scenario by name and re-run it, one at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			return runRepl(cmd.OutOrStdout(), m)
		},
	}
}

// runRepl is a deliberately thin echo of the teacher's liner-backed REPL,
// scoped to scenario selection: there is no source-level editing here, since
// that would require the out-of-scope lexer and parser.
func runRepl(out io.Writer, m *Manifest) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	names := make([]string, len(m.Scenarios))
	for i, s := range m.Scenarios {
		names[i] = s.Name
	}
	line.SetCompleter(func(prefix string) (c []string) {
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				c = append(c, name)
			}
		}
		return
	})

	fmt.Fprintln(out, bold("typecheck repl"))
	fmt.Fprintln(out, "type a scenario name, :list, or :quit")

	for {
		input, err := line.Prompt("scenario> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Fprintln(out, green("goodbye"))
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit":
			fmt.Fprintln(out, green("goodbye"))
			return nil
		case ":list":
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			continue
		}

		s, ok := m.Find(input)
		if !ok {
			fmt.Fprintf(out, "%s no scenario named %q\n", red("error:"), input)
			continue
		}
		if err := runScenario(out, s); err != nil {
			fmt.Fprintf(out, "%s %v\n", red("error:"), err)
		}
	}
}
