package report

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/sui-move-tools/move-complexity/internal/complexity"
)

// Filter keeps the records whose function name (signature stripped) matches
// the glob pattern. Order is preserved.
func Filter(records []complexity.Record, pattern string) ([]complexity.Record, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}

	matched := make([]complexity.Record, 0, len(records))
	for _, r := range records {
		if g.Match(complexity.FunctionName(r.Function)) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
