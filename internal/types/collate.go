package types

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns the collator used to order candidate-name lists in
// diagnostics. A package-level instance would race under concurrent use
// (spec §5 says the core itself is single-threaded, but a diagnostics
// consumer formatting two errors from different modules might call in from
// two goroutines), so each call to sortCandidates gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
