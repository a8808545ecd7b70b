package complexity

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/sui-move-tools/move-complexity/internal/analyzer"
)

// DefaultFunctions is the built-in list of common Move entry-point names
// probed when the caller does not name specific functions.
var DefaultFunctions = []string{
	"mint", "transfer", "burn", "mint_and_transfer",
	"create_listing", "purchase", "list_nft", "buy_nft",
	"name", "description", "creator", "price", "seller",
	"cancel_listing", "update_description",
}

// ProjectAnalyzer scores many functions of one project in a single
// sequential batch. Failures are isolated per function name: a timeout or
// analysis error for one name is logged and the batch continues.
type ProjectAnalyzer struct {
	analyzer *analyzer.Analyzer
	quiet    bool
}

// NewProjectAnalyzer creates a batch driver. quiet disables the progress bar
// but not diagnostics.
func NewProjectAnalyzer(a *analyzer.Analyzer, quiet bool) *ProjectAnalyzer {
	return &ProjectAnalyzer{analyzer: a, quiet: quiet}
}

// AnalyzeProject analyzes each function name in order and returns the
// flattened complexity records. Names that fail to analyze contribute no
// records; the returned slice is empty only if every name failed or matched
// nothing.
func (p *ProjectAnalyzer) AnalyzeProject(ctx context.Context, projectPath string, functions []string) []Record {
	var bar *progressbar.ProgressBar
	if !p.quiet {
		bar = progressbar.NewOptions(len(functions),
			progressbar.OptionSetDescription("Analyzing functions"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}

	var records []Record
	for _, name := range functions {
		results, err := p.analyzer.Analyze(ctx, projectPath, name)
		if err != nil {
			log.Printf("analysis failed for %s: %v", name, err)
		} else {
			for _, result := range results {
				records = append(records, Score(result))
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	return records
}
