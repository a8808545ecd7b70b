package analyzer

// LocationInfo describes where a function lives in project source.
// Lines are 1-indexed and inclusive.
type LocationInfo struct {
	File      string
	StartLine int
	EndLine   int
}

// Parameter is one declared parameter of an analyzed function. Order within
// AnalysisResult.Parameters matches the declaration order.
type Parameter struct {
	Name string
	Type string
}

// FunctionCall is one call made inside an analyzed function. Function may
// carry a signature suffix after the first '(' exactly as the analyzer
// emitted it.
type FunctionCall struct {
	File     string
	Function string
	Module   string
}

// AnalysisResult is the complete analysis of one Move function. One
// project+name invocation may yield several results when multiple modules
// define a function of the same name. Results are immutable after decoding.
type AnalysisResult struct {
	Contract   string
	Function   string
	Source     string
	Location   LocationInfo
	Parameters []Parameter
	Calls      []FunctionCall
}

// Wire shapes mirror the analyzer's JSON output exactly. Note the parameter
// list key is "parameter" (singular) — that is the key the external tool
// actually emits, and it is kept as the canonical wire key in both
// directions.

// WireLocation is the wire shape of LocationInfo.
type WireLocation struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// WireParameter is the wire shape of Parameter.
type WireParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// WireCall is the wire shape of FunctionCall.
type WireCall struct {
	File     string `json:"file"`
	Function string `json:"function"`
	Module   string `json:"module"`
}

// WireResult is the unmodified external representation of one analysis,
// returned by AnalyzeRaw for callers that need the original format.
type WireResult struct {
	Contract  string          `json:"contract"`
	Function  string          `json:"function"`
	Source    string          `json:"source"`
	Location  WireLocation    `json:"location"`
	Parameter []WireParameter `json:"parameter"`
	Calls     []WireCall      `json:"calls"`
}

// ToWire serializes the result back to the analyzer's wire shape. The
// conversion is lossless: every field decoded from the tool's output is
// reproduced.
func (r *AnalysisResult) ToWire() WireResult {
	params := make([]WireParameter, len(r.Parameters))
	for i, p := range r.Parameters {
		params[i] = WireParameter{Name: p.Name, Type: p.Type}
	}

	calls := make([]WireCall, len(r.Calls))
	for i, c := range r.Calls {
		calls[i] = WireCall{File: c.File, Function: c.Function, Module: c.Module}
	}

	return WireResult{
		Contract: r.Contract,
		Function: r.Function,
		Source:   r.Source,
		Location: WireLocation{
			File:      r.Location.File,
			StartLine: r.Location.StartLine,
			EndLine:   r.Location.EndLine,
		},
		Parameter: params,
		Calls:     calls,
	}
}
