package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Probe shapes use pointers so missing keys are distinguishable from zero
// values during validation.
type wireLocationProbe struct {
	File      *string `json:"file"`
	StartLine *int    `json:"start_line"`
	EndLine   *int    `json:"end_line"`
}

type wireParameterProbe struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type wireCallProbe struct {
	File     *string `json:"file"`
	Function *string `json:"function"`
	Module   *string `json:"module"`
}

type wireResultProbe struct {
	Contract  *string              `json:"contract"`
	Function  *string              `json:"function"`
	Source    *string              `json:"source"`
	Location  *wireLocationProbe   `json:"location"`
	Parameter []wireParameterProbe `json:"parameter"`
	Calls     []wireCallProbe      `json:"calls"`
}

// DecodeOutput interprets one analyzer invocation's captured output.
//
// Decision table:
//   - exit 0, valid JSON array: decode each element; an empty array is zero
//     results, not an error
//   - exit 0, malformed stdout: AnalysisFailedError ("failed to parse output")
//   - exit 1, stdout exactly "[]": FunctionNotFoundError
//   - any other non-zero exit: AnalysisFailedError carrying stderr (or
//     "analysis failed") and the exit code
func DecodeOutput(stdout, stderr []byte, exitCode int, functionName, projectPath string) ([]AnalysisResult, error) {
	if exitCode != 0 {
		if exitCode == 1 && strings.TrimSpace(string(stdout)) == "[]" {
			return nil, &FunctionNotFoundError{Function: functionName, ProjectPath: projectPath}
		}
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = "analysis failed"
		}
		return nil, &AnalysisFailedError{Message: msg, ExitCode: exitCode}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(stdout, &elements); err != nil {
		return nil, &AnalysisFailedError{Message: fmt.Sprintf("failed to parse output: %v", err)}
	}

	results := make([]AnalysisResult, 0, len(elements))
	for _, raw := range elements {
		var probe wireResultProbe
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, &AnalysisFailedError{Message: fmt.Sprintf("invalid output format: %v", err)}
		}

		result, err := resultFromWire(&probe)
		if err != nil {
			return nil, &AnalysisFailedError{Message: fmt.Sprintf("invalid output format: %v", err)}
		}
		results = append(results, result)
	}

	return results, nil
}

// resultFromWire validates one decoded element and builds the typed model.
// Every field the wire contract defines must be present.
func resultFromWire(w *wireResultProbe) (AnalysisResult, error) {
	if w.Contract == nil {
		return AnalysisResult{}, errors.New("missing field: contract")
	}
	if w.Function == nil {
		return AnalysisResult{}, errors.New("missing field: function")
	}
	if w.Source == nil {
		return AnalysisResult{}, errors.New("missing field: source")
	}
	if w.Location == nil {
		return AnalysisResult{}, errors.New("missing field: location")
	}
	if w.Location.File == nil || w.Location.StartLine == nil || w.Location.EndLine == nil {
		return AnalysisResult{}, errors.New("incomplete location: file, start_line and end_line are required")
	}
	if *w.Location.StartLine < 1 || *w.Location.EndLine < *w.Location.StartLine {
		return AnalysisResult{}, fmt.Errorf("invalid location lines: start_line=%d end_line=%d",
			*w.Location.StartLine, *w.Location.EndLine)
	}
	if w.Parameter == nil {
		return AnalysisResult{}, errors.New("missing field: parameter")
	}
	if w.Calls == nil {
		return AnalysisResult{}, errors.New("missing field: calls")
	}

	params := make([]Parameter, len(w.Parameter))
	for i, p := range w.Parameter {
		if p.Name == nil || p.Type == nil {
			return AnalysisResult{}, fmt.Errorf("parameter %d: name and type are required", i)
		}
		params[i] = Parameter{Name: *p.Name, Type: *p.Type}
	}

	calls := make([]FunctionCall, len(w.Calls))
	for i, c := range w.Calls {
		if c.File == nil || c.Function == nil || c.Module == nil {
			return AnalysisResult{}, fmt.Errorf("call %d: file, function and module are required", i)
		}
		calls[i] = FunctionCall{File: *c.File, Function: *c.Function, Module: *c.Module}
	}

	return AnalysisResult{
		Contract: *w.Contract,
		Function: *w.Function,
		Source:   *w.Source,
		Location: LocationInfo{
			File:      *w.Location.File,
			StartLine: *w.Location.StartLine,
			EndLine:   *w.Location.EndLine,
		},
		Parameters: params,
		Calls:      calls,
	}, nil
}
