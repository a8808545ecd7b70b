package callgraph

import (
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/sui-move-tools/move-complexity/internal/analyzer"
	"github.com/sui-move-tools/move-complexity/internal/complexity"
)

// Node is one function in the call graph, identified by module and name.
type Node struct {
	Module   string
	Function string
}

// ID returns the stable vertex identifier for the node.
func (n Node) ID() string {
	return fmt.Sprintf("%s::%s", n.Module, n.Function)
}

// Build constructs a directed call graph over the given analysis results.
// Each result contributes a vertex for the analyzed function, a vertex for
// every callee, and an edge per call. Callees outside the analyzed set still
// get vertices so the graph shows external fan-out.
func Build(results []analyzer.AnalysisResult) (graph.Graph[string, Node], error) {
	g := graph.New(func(n Node) string { return n.ID() }, graph.Directed())

	for _, result := range results {
		caller := Node{Module: result.Contract, Function: complexity.FunctionName(result.Function)}
		if err := addVertex(g, caller); err != nil {
			return nil, err
		}

		for _, call := range result.Calls {
			callee := Node{Module: call.Module, Function: complexity.FunctionName(call.Function)}
			if err := addVertex(g, callee); err != nil {
				return nil, err
			}
			// Duplicate calls collapse into one edge.
			if err := g.AddEdge(caller.ID(), callee.ID()); err != nil && err != graph.ErrEdgeAlreadyExists {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", caller.ID(), callee.ID(), err)
			}
		}
	}

	return g, nil
}

func addVertex(g graph.Graph[string, Node], n Node) error {
	if err := g.AddVertex(n); err != nil && err != graph.ErrVertexAlreadyExists {
		return fmt.Errorf("failed to add vertex %s: %w", n.ID(), err)
	}
	return nil
}

// WriteDOT renders the graph in Graphviz DOT format.
func WriteDOT(g graph.Graph[string, Node], w io.Writer) error {
	return draw.DOT(g, w)
}
