//go:build property

package list

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestListProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)
	tokens := gen.SliceOf(gen.AlphaString()).Map(func(v []string) string {
		return strings.Join(v, ",")
	})

	properties.Property("sort is idempotent", prop.ForAll(
		func(s string) bool {
			once := SortTokens(s, ",")
			return SortTokens(once, ",") == once
		},
		tokens,
	))

	properties.Property("deduplicate is idempotent", prop.ForAll(
		func(s string) bool {
			once := DeduplicateTokens(s, ",")
			return DeduplicateTokens(once, ",") == once
		},
		tokens,
	))

	properties.Property("count matches split", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return CountTokens(s, ",") == 0
			}
			return CountTokens(s, ",") == len(strings.Split(s, ","))
		},
		tokens,
	))

	properties.TestingRun(t)
}
