package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sui-move-tools/move-complexity/internal/complexity"
)

// Supported report formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// NoDataSentinel is returned for an empty record set in every format.
const NoDataSentinel = "No complexity data available."

const csvHeader = "Function,Module,Parameters,Calls,Lines,Complexity_Score,File_Path,Start_Line,End_Line"

// Generate renders a complexity report. Records are sorted by score
// descending before rendering; the sort is stable, so equal scores keep
// their input order.
func Generate(records []complexity.Record, format string) (string, error) {
	if len(records) == 0 {
		return NoDataSentinel, nil
	}

	sorted := make([]complexity.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ComplexityScore > sorted[j].ComplexityScore
	})

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(sorted, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data), nil
	case FormatCSV:
		return csvReport(sorted), nil
	case FormatTable, "":
		return tableReport(sorted), nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
}

// csvReport renders one line per record. Embedded commas are replaced with
// semicolons; no further quoting or escaping is performed.
func csvReport(records []complexity.Record) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvHeader)

	for _, r := range records {
		function := strings.ReplaceAll(complexity.FunctionName(r.Function), ",", ";")
		module := strings.ReplaceAll(r.Module, ",", ";")
		filePath := strings.ReplaceAll(r.FilePath, ",", ";")

		lines = append(lines, fmt.Sprintf("%s,%s,%d,%d,%d,%s,%s,%d,%d",
			function, module, r.ParameterCount, r.CallCount, r.LineCount,
			formatScore(r.ComplexityScore), filePath, r.StartLine, r.EndLine))
	}

	return strings.Join(lines, "\n")
}

func tableReport(records []complexity.Record) string {
	var lines []string
	lines = append(lines, "Move Function Complexity Analysis")
	lines = append(lines, strings.Repeat("=", 80))
	lines = append(lines, "")

	total := len(records)
	var sum float64
	maxScore := records[0].ComplexityScore
	minScore := records[0].ComplexityScore
	for _, r := range records {
		sum += r.ComplexityScore
		if r.ComplexityScore > maxScore {
			maxScore = r.ComplexityScore
		}
		if r.ComplexityScore < minScore {
			minScore = r.ComplexityScore
		}
	}

	lines = append(lines, "Summary:")
	lines = append(lines, fmt.Sprintf("  Total functions analyzed: %d", total))
	lines = append(lines, fmt.Sprintf("  Average complexity score: %s", formatScore(sum/float64(total))))
	lines = append(lines, fmt.Sprintf("  Maximum complexity score: %s", formatScore(maxScore)))
	lines = append(lines, fmt.Sprintf("  Minimum complexity score: %s", formatScore(minScore)))
	lines = append(lines, "")

	header := fmt.Sprintf("%-40s %-25s %-7s %-7s %-7s %-7s",
		"Function", "Module", "Params", "Calls", "Lines", "Score")
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("-", len(header)))

	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%-40s %-25s %-7d %-7d %-7d %-7s",
			truncate(complexity.FunctionName(r.Function), 39),
			truncate(r.Module, 24),
			r.ParameterCount, r.CallCount, r.LineCount,
			formatScore(r.ComplexityScore)))
	}
	lines = append(lines, "")

	var high, medium, low []complexity.Record
	for _, r := range records {
		switch {
		case r.ComplexityScore >= 10:
			high = append(high, r)
		case r.ComplexityScore >= 5:
			medium = append(medium, r)
		default:
			low = append(low, r)
		}
	}

	lines = append(lines, "Complexity Categories:")
	lines = append(lines, fmt.Sprintf("  High complexity (≥10): %d functions", len(high)))
	lines = append(lines, fmt.Sprintf("  Medium complexity (5-9): %d functions", len(medium)))
	lines = append(lines, fmt.Sprintf("  Low complexity (<5): %d functions", len(low)))

	if len(high) > 0 {
		lines = append(lines, "")
		lines = append(lines, "High Complexity Functions (may need refactoring):")
		top := high
		if len(top) > 5 {
			top = top[:5]
		}
		for _, r := range top {
			lines = append(lines, fmt.Sprintf("  - %s (score: %s)",
				complexity.FunctionName(r.Function), formatScore(r.ComplexityScore)))
			lines = append(lines, fmt.Sprintf("    Module: %s", r.Module))
			lines = append(lines, fmt.Sprintf("    Parameters: %d, Calls: %d, Lines: %d",
				r.ParameterCount, r.CallCount, r.LineCount))
		}
	}

	return strings.Join(lines, "\n")
}

// truncate shortens s to max characters, marking the cut with "...".
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}
