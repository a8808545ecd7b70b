package complexity

import (
	"math"
	"strings"

	"github.com/sui-move-tools/move-complexity/internal/analyzer"
)

// Scoring weights. Parameters and call fan-out are stronger complexity
// signals than raw length; bodies of five lines or fewer incur no length
// penalty.
const (
	parameterWeight  = 1.0
	callWeight       = 2.0
	lineWeight       = 0.1
	penaltyFreeLines = 5
)

// Record is the derived complexity metrics for one analyzed function. It is
// computed deterministically from one AnalysisResult and has no identity of
// its own. JSON field names match the report wire format.
type Record struct {
	Function        string   `json:"function"`
	Module          string   `json:"module"`
	ParameterCount  int      `json:"parameter_count"`
	CallCount       int      `json:"call_count"`
	LineCount       int      `json:"line_count"`
	ComplexityScore float64  `json:"complexity_score"`
	FilePath        string   `json:"file_path"`
	StartLine       int      `json:"start_line"`
	EndLine         int      `json:"end_line"`
	Parameters      []string `json:"parameters"`
	CalledFunctions []string `json:"called_functions"`
}

// Score computes the complexity record for one analysis result. It is a pure
// function: no side effects, no failure mode, and the same input always
// yields the same record.
func Score(result analyzer.AnalysisResult) Record {
	parameterCount := len(result.Parameters)
	callCount := len(result.Calls)
	lineCount := result.Location.EndLine - result.Location.StartLine + 1

	score := float64(parameterCount)*parameterWeight +
		float64(callCount)*callWeight +
		math.Max(0, float64(lineCount-penaltyFreeLines))*lineWeight
	score = math.Round(score*10) / 10

	parameters := make([]string, parameterCount)
	for i, p := range result.Parameters {
		parameters[i] = p.Name
	}

	called := make([]string, callCount)
	for i, c := range result.Calls {
		called[i] = FunctionName(c.Function)
	}

	return Record{
		Function:        result.Function,
		Module:          result.Contract,
		ParameterCount:  parameterCount,
		CallCount:       callCount,
		LineCount:       lineCount,
		ComplexityScore: score,
		FilePath:        result.Location.File,
		StartLine:       result.Location.StartLine,
		EndLine:         result.Location.EndLine,
		Parameters:      parameters,
		CalledFunctions: called,
	}
}

// FunctionName strips an embedded signature suffix from a function
// identifier: everything from the first '(' on is dropped.
func FunctionName(identifier string) string {
	name, _, _ := strings.Cut(identifier, "(")
	return name
}
