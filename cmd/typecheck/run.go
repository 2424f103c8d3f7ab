package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/chenjianxin/gleam/internal/fixtures"
	"github.com/chenjianxin/gleam/internal/infer"
	"github.com/chenjianxin/gleam/internal/types"
	"github.com/chenjianxin/gleam/testutil"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// fixtureByName finds the hand-built AST sharing a scenario's name.
func fixtureByName(name string) (fixtures.Fixture, bool) {
	for _, f := range fixtures.All() {
		if f.Name == name {
			return f, true
		}
	}
	return fixtures.Fixture{}, false
}

// runScenario infers the scenario's module and writes a coloured report to
// out. It returns a non-nil error when no fixture is registered under the
// scenario's name, or when the outcome didn't match the scenario's declared
// expectation.
func runScenario(out io.Writer, s Scenario) error {
	f, ok := fixtureByName(s.Name)
	if !ok {
		return fmt.Errorf("no fixture registered for scenario %q", s.Name)
	}

	fmt.Fprintf(out, "%s %s\n", bold("scenario:"), cyan(s.Name))
	fmt.Fprintf(out, "%s %s\n", bold("source:  "), s.Source)

	env := types.NewEnv()
	mod, warnings, err := infer.InferModule(env, f.Module, nil)

	for _, w := range warnings {
		fmt.Fprintf(out, "%s %s at %s\n", yellow("warning:"), describeWarning(w), w.Position())
	}

	if err != nil {
		typeErr, _ := err.(types.Error)
		if typeErr != nil {
			fmt.Fprintf(out, "%s %s at %s\n", red("error:"), err.Error(), typeErr.Position())
		} else {
			fmt.Fprintf(out, "%s %s\n", red("error:"), err.Error())
		}
		if s.Expect == "fail" {
			fmt.Fprintf(out, "%s %s\n\n", green("ok:"), "failed as expected")
			return nil
		}
		fmt.Fprintf(out, "%s %s\n\n", red("fail:"), "expected this scenario to type-check")
		return err
	}

	fmt.Fprint(out, testutil.PrintModule(mod))
	if s.Expect == "fail" {
		fmt.Fprintf(out, "%s %s\n\n", red("fail:"), "expected this scenario to fail")
		return fmt.Errorf("scenario %q type-checked but was expected to fail", s.Name)
	}
	fmt.Fprintf(out, "%s %s\n\n", green("ok:"), "type-checked as expected")
	return nil
}

func describeWarning(w types.Warning) string {
	switch w := w.(type) {
	case *types.DeprecatedListPrependSyntax:
		return "deprecated `[h | t]` prepend syntax"
	case *types.Todo:
		if w.Label != nil {
			return fmt.Sprintf("todo: %s", *w.Label)
		}
		return "todo"
	case *types.ImplicitlyDiscardedResult:
		return "implicitly discarded Result value"
	default:
		return "warning"
	}
}
