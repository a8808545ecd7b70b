package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sui-move-tools/move-complexity/internal/complexity"
)

func record(function, module string, score float64) complexity.Record {
	return complexity.Record{
		Function:        function,
		Module:          module,
		ParameterCount:  2,
		CallCount:       3,
		LineCount:       10,
		ComplexityScore: score,
		FilePath:        "sources/" + module + ".move",
		StartLine:       1,
		EndLine:         10,
		Parameters:      []string{"a", "b"},
		CalledFunctions: []string{"x", "y", "z"},
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	t.Parallel()

	for _, format := range []string{FormatTable, FormatJSON, FormatCSV} {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			out, err := Generate(nil, format)
			require.NoError(t, err)
			assert.Equal(t, NoDataSentinel, out)
		})
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Generate([]complexity.Record{record("f", "m", 1)}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestGenerateSortsByScoreDescending(t *testing.T) {
	t.Parallel()

	records := []complexity.Record{
		record("low", "m", 1.0),
		record("high", "m", 12.0),
		record("mid", "m", 6.0),
	}

	out, err := Generate(records, FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "high,"))
	assert.True(t, strings.HasPrefix(lines[2], "mid,"))
	assert.True(t, strings.HasPrefix(lines[3], "low,"))
}

func TestGenerateSortIsStable(t *testing.T) {
	t.Parallel()

	records := []complexity.Record{
		record("first", "m", 5.0),
		record("second", "m", 5.0),
		record("third", "m", 5.0),
	}

	out, err := Generate(records, FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[1], "first,"))
	assert.True(t, strings.HasPrefix(lines[2], "second,"))
	assert.True(t, strings.HasPrefix(lines[3], "third,"))
}

func TestCSVReport(t *testing.T) {
	t.Parallel()

	t.Run("header and row layout", func(t *testing.T) {
		t.Parallel()
		r := record("mint(recipient: address)", "nft", 8.0)
		out, err := Generate([]complexity.Record{r}, FormatCSV)
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		assert.Equal(t, "Function,Module,Parameters,Calls,Lines,Complexity_Score,File_Path,Start_Line,End_Line", lines[0])
		assert.Equal(t, "mint,nft,2,3,10,8.0,sources/nft.move,1,10", lines[1])
	})

	t.Run("embedded commas become semicolons", func(t *testing.T) {
		t.Parallel()
		r := record("f", "a,b", 1.0)
		out, err := Generate([]complexity.Record{r}, FormatCSV)
		require.NoError(t, err)
		assert.Contains(t, out, "f,a;b,")
		assert.NotContains(t, strings.Split(out, "\n")[1], "a,b")
	})
}

func TestJSONReport(t *testing.T) {
	t.Parallel()

	records := []complexity.Record{
		record("low", "m", 1.0),
		record("high", "m", 9.5),
	}

	out, err := Generate(records, FormatJSON)
	require.NoError(t, err)

	// Two-space indentation.
	assert.Contains(t, out, "\n  {")

	var decoded []complexity.Record
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "high", decoded[0].Function)
	assert.Equal(t, 9.5, decoded[0].ComplexityScore)
	assert.Equal(t, []string{"x", "y", "z"}, decoded[0].CalledFunctions)
}

func TestTableReport(t *testing.T) {
	t.Parallel()

	records := []complexity.Record{
		record("mint(recipient: address)", "nft", 12.0),
		record("transfer", "nft", 6.0),
		record("name", "nft", 2.0),
	}

	out, err := Generate(records, FormatTable)
	require.NoError(t, err)

	assert.Contains(t, out, "Move Function Complexity Analysis")
	assert.Contains(t, out, "Total functions analyzed: 3")
	assert.Contains(t, out, "Average complexity score: 6.7")
	assert.Contains(t, out, "Maximum complexity score: 12.0")
	assert.Contains(t, out, "Minimum complexity score: 2.0")

	assert.Contains(t, out, "High complexity (≥10): 1 functions")
	assert.Contains(t, out, "Medium complexity (5-9): 1 functions")
	assert.Contains(t, out, "Low complexity (<5): 1 functions")

	// High-complexity entries are detailed with signature stripped.
	assert.Contains(t, out, "High Complexity Functions (may need refactoring):")
	assert.Contains(t, out, "- mint (score: 12.0)")
	assert.Contains(t, out, "Module: nft")
}

func TestTableReportTruncation(t *testing.T) {
	t.Parallel()

	longFn := strings.Repeat("a", 50)
	longModule := strings.Repeat("m", 30)
	records := []complexity.Record{record(longFn, longModule, 1.0)}

	out, err := Generate(records, FormatTable)
	require.NoError(t, err)

	assert.Contains(t, out, strings.Repeat("a", 36)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 40))
	assert.Contains(t, out, strings.Repeat("m", 21)+"...")
	assert.NotContains(t, out, strings.Repeat("m", 25))
}

func TestTableReportTopFiveHigh(t *testing.T) {
	t.Parallel()

	var records []complexity.Record
	for _, name := range []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"} {
		records = append(records, record(name, "m", 15.0))
	}

	out, err := Generate(records, FormatTable)
	require.NoError(t, err)

	assert.Contains(t, out, "High complexity (≥10): 7 functions")
	assert.Contains(t, out, "- f5 (score: 15.0)")
	assert.NotContains(t, out, "- f6 (score: 15.0)")
}

func TestFilter(t *testing.T) {
	t.Parallel()

	records := []complexity.Record{
		record("mint(recipient: address)", "nft", 3.0),
		record("mint_and_transfer", "nft", 4.0),
		record("burn", "nft", 1.0),
	}

	t.Run("glob matches stripped names", func(t *testing.T) {
		t.Parallel()
		matched, err := Filter(records, "mint*")
		require.NoError(t, err)
		require.Len(t, matched, 2)
		assert.Equal(t, "mint(recipient: address)", matched[0].Function)
		assert.Equal(t, "mint_and_transfer", matched[1].Function)
	})

	t.Run("no matches yields empty set", func(t *testing.T) {
		t.Parallel()
		matched, err := Filter(records, "purchase*")
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := Filter(records, "[")
		require.Error(t, err)
	})
}
