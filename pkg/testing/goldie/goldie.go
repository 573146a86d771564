// Package goldie configures golden file assertions: fixtures live in testdata/ with a .golden suffix.
// Run the tests with -update to rewrite them.
package goldie

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func New(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
}
