package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sui-move-tools/move-complexity/internal/analyzer"
	"github.com/sui-move-tools/move-complexity/internal/complexity"
	"github.com/sui-move-tools/move-complexity/internal/project"
	"github.com/sui-move-tools/move-complexity/internal/report"
)

var (
	functionsFlag []string
	formatFlag    string
	outputFlag    string
	binaryFlag    string
	quietFlag     bool
	filterFlag    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <project-path>",
	Short: "Analyze Move function complexity and generate a report",
	Long: `Analyze runs the move-function-analyzer binary once per function name,
scores each result and renders a report ranked by complexity.

Examples:
  # Analyze the default set of common entry points
  move-complexity analyze examples/simple-nft

  # Analyze specific functions as JSON
  move-complexity analyze examples/simple-nft --functions mint,transfer,burn --format json

  # Save a CSV report
  move-complexity analyze examples/simple-nft --format csv --output complexity.csv

  # Only report minting-related functions
  move-complexity analyze examples/simple-nft --filter 'mint*'
`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringSliceVar(&functionsFlag, "functions", complexity.DefaultFunctions, "Function names to analyze")
	analyzeCmd.Flags().StringVar(&formatFlag, "format", report.FormatTable, "Report format: table, json or csv")
	analyzeCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().StringVar(&binaryFlag, "analyzer-binary", analyzer.DefaultBinaryName, "Path to the move-function-analyzer binary")
	analyzeCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	analyzeCmd.Flags().StringVar(&filterFlag, "filter", "", "Only report functions whose name matches this glob")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling analysis...")
		cancel()
	}()

	projectPath := args[0]
	if err := analyzer.ValidateProject(projectPath); err != nil {
		return err
	}

	a, err := analyzer.New(binaryFlag, analyzer.WithBatchArgs())
	if err != nil {
		return err
	}
	if err := a.Verify(ctx); err != nil {
		return fmt.Errorf("analyzer binary %q is not working: %w (build it and put it on your PATH)", binaryFlag, err)
	}

	if !quietFlag {
		if m, err := project.LoadManifest(projectPath); err == nil && m.Package.Name != "" {
			log.Printf("Analyzing package %s", m.Package.Name)
		}
		log.Printf("Analyzing %d functions in %s...", len(functionsFlag), projectPath)
	}

	records := complexity.NewProjectAnalyzer(a, quietFlag).AnalyzeProject(ctx, projectPath, functionsFlag)
	if len(records) == 0 {
		return fmt.Errorf("no functions were successfully analyzed")
	}

	if filterFlag != "" {
		records, err = report.Filter(records, filterFlag)
		if err != nil {
			return err
		}
	}

	out, err := report.Generate(records, formatFlag)
	if err != nil {
		return err
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", outputFlag, err)
		}
		if !quietFlag {
			log.Printf("Report saved to %s", outputFlag)
		}
		return nil
	}

	fmt.Println(out)
	return nil
}
