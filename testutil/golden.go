// Package testutil provides the golden-file comparison helper shared by
// this repository's test suites.
package testutil

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chenjianxin/gleam/internal/types"
	"github.com/chenjianxin/gleam/internal/typedast"
)

// update controls whether golden files are updated or compared.
// Usage: go test -update ./...
var update = flag.Bool("update", false, "update golden files")

// GoldenCompare compares got against testdata/<name>.golden, or writes it
// there when -update is passed.
func GoldenCompare(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if *update {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nrun with -update to create it", path, err)
	}

	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("golden mismatch for %s (-want +got):\n%s", name, diff)
		t.Logf("to update: go test -update ./...")
	}
}

// PrintModule renders a typed module's function signatures in a stable,
// sorted form suitable for golden comparison — function bodies are omitted
// since typedast carries no source-position-independent pretty-printer of
// its own, only each node's resolved Type.
func PrintModule(mod *typedast.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", strings.Join(mod.Name, "/"))

	names := make([]string, 0, len(mod.Functions))
	byName := map[string]*typedast.Function{}
	for _, fn := range mod.Functions {
		names = append(names, fn.Name)
		byName[fn.Name] = fn
	}
	sort.Strings(names)

	for _, name := range names {
		fn := byName[name]
		argTypes := make([]string, len(fn.Args))
		for i, a := range fn.Args {
			argTypes[i] = types.Resolve(a.Type).String()
		}
		vis := "fn"
		if fn.Public {
			vis = "pub fn"
		}
		fmt.Fprintf(&b, "%s %s(%s) -> %s\n", vis, fn.Name,
			strings.Join(argTypes, ", "), types.Resolve(fn.Return).String())
	}
	return b.String()
}
