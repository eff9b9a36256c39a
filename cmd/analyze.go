package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accucheck/accucheck-cli/internal/analysis"
	"github.com/accucheck/accucheck-cli/internal/commentary"
	"github.com/accucheck/accucheck-cli/internal/dataset"
	"github.com/accucheck/accucheck-cli/internal/pipeline"
)

var (
	anaDelimiter string
	anaMaxRows   int
	anaProvider  string
	anaModel     string
	anaNoAI      bool
	anaJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Aggregate sales by region and print insight plus AI commentary",
	Example: `  accucheck analyze sales.csv
  accucheck analyze sales.csv --no-ai
  accucheck analyze sales.csv --provider ollama --model llama3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDatasetArg(args[0])
		if err != nil {
			return err
		}

		var com *commentary.Commentator
		if anaNoAI {
			com = commentary.New(nil, anaModel, 0)
		} else if com, err = buildCommentator(anaProvider, anaModel); err != nil {
			return err
		}

		res, err := pipeline.Run(cmd.Context(), d, com)
		if err != nil {
			var empty *analysis.EmptyDatasetError
			if errors.As(err, &empty) {
				fmt.Printf("⚠ %v — nothing to aggregate\n", err)
				return nil
			}
			return err
		}

		if anaJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"summary":    res.Summary,
				"insight":    res.Insight,
				"commentary": res.Commentary,
			})
		}

		fmt.Printf("✓ Loaded %d rows from %s\n\n", d.Len(), d.Name)
		fmt.Println("Sales by region")
		fmt.Print(res.Summary.Table())
		if res.Summary.SkippedCells > 0 {
			fmt.Printf("(skipped %d non-numeric sales cells)\n", res.Summary.SkippedCells)
		}
		fmt.Println()
		fmt.Print(res.Insight.Text())
		if !anaNoAI {
			fmt.Println()
			fmt.Println("AI commentary")
			fmt.Println(res.Commentary)
		}
		return nil
	},
}

func loadDatasetArg(path string) (*dataset.Dataset, error) {
	opt := dataset.DefaultOptions()
	if anaMaxRows > 0 {
		opt.MaxRows = anaMaxRows
	}
	switch anaDelimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s", anaDelimiter)
	}
	return dataset.LoadCSV(path, opt)
}

func init() {
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: sniff from extension)")
	analyzeCmd.Flags().IntVar(&anaMaxRows, "max-rows", 0, "limit rows ingested (0 = config default)")
	analyzeCmd.Flags().StringVar(&anaProvider, "provider", "", "AI provider: groq|openai|ollama (default from config)")
	analyzeCmd.Flags().StringVar(&anaModel, "model", "", "model identifier (default from config)")
	analyzeCmd.Flags().BoolVar(&anaNoAI, "no-ai", false, "skip AI commentary")
	analyzeCmd.Flags().BoolVar(&anaJSON, "json", false, "emit machine-readable JSON")
	rootCmd.AddCommand(analyzeCmd)
}
