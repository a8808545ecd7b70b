package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sui-move-tools/move-complexity/internal/analyzer"
	"github.com/sui-move-tools/move-complexity/internal/callgraph"
	"github.com/sui-move-tools/move-complexity/internal/complexity"
)

var (
	graphFunctionsFlag []string
	graphBinaryFlag    string
	graphOutputFlag    string
)

// callgraphCmd represents the callgraph command
var callgraphCmd = &cobra.Command{
	Use:   "callgraph <project-path>",
	Short: "Render the call graph of analyzed functions as Graphviz DOT",
	Long: `Callgraph analyzes the given function names and renders the combined
call graph in DOT format, one vertex per module::function.

Example:
  move-complexity callgraph examples/simple-nft --functions mint,transfer | dot -Tsvg -o graph.svg
`,
	Args: cobra.ExactArgs(1),
	RunE: runCallgraph,
}

func init() {
	rootCmd.AddCommand(callgraphCmd)
	callgraphCmd.Flags().StringSliceVar(&graphFunctionsFlag, "functions", complexity.DefaultFunctions, "Function names to analyze")
	callgraphCmd.Flags().StringVar(&graphBinaryFlag, "analyzer-binary", analyzer.DefaultBinaryName, "Path to the move-function-analyzer binary")
	callgraphCmd.Flags().StringVarP(&graphOutputFlag, "output", "o", "", "Write the DOT graph to this file instead of stdout")
}

func runCallgraph(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectPath := args[0]
	if err := analyzer.ValidateProject(projectPath); err != nil {
		return err
	}

	a, err := analyzer.New(graphBinaryFlag)
	if err != nil {
		return err
	}
	if err := a.Verify(ctx); err != nil {
		return fmt.Errorf("analyzer binary %q is not working: %w", graphBinaryFlag, err)
	}

	var results []analyzer.AnalysisResult
	for _, name := range graphFunctionsFlag {
		found, err := a.Analyze(ctx, projectPath, name)
		if err != nil {
			log.Printf("analysis failed for %s: %v", name, err)
			continue
		}
		results = append(results, found...)
	}
	if len(results) == 0 {
		return fmt.Errorf("no functions were successfully analyzed")
	}

	g, err := callgraph.Build(results)
	if err != nil {
		return err
	}

	if graphOutputFlag != "" {
		f, err := os.Create(graphOutputFlag)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", graphOutputFlag, err)
		}
		defer f.Close()
		return callgraph.WriteDOT(g, f)
	}

	return callgraph.WriteDOT(g, os.Stdout)
}
