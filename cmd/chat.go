package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/accucheck/accucheck-cli/internal/analysis"
	"github.com/accucheck/accucheck-cli/internal/pipeline"
)

var (
	chatProvider string
	chatModel    string
	chatPlain    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat <file>",
	Short: "Analyze a dataset, then chat with the AI analyst about it",
	Example: `  accucheck chat sales.csv
  accucheck chat sales.csv --provider ollama --model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDatasetArg(args[0])
		if err != nil {
			return err
		}
		com, err := buildCommentator(chatProvider, chatModel)
		if err != nil {
			return err
		}

		res, err := pipeline.Run(cmd.Context(), d, com)
		if err != nil {
			var empty *analysis.EmptyDatasetError
			if errors.As(err, &empty) {
				fmt.Printf("⚠ %v — nothing to discuss\n", err)
				return nil
			}
			return err
		}

		fmt.Printf("✓ Loaded %d rows from %s\n\n", d.Len(), d.Name)
		fmt.Print(res.Summary.Table())
		fmt.Println()
		fmt.Print(res.Insight.Text())
		fmt.Println()
		printAssistant(res.Commentary)
		if !com.Enabled() {
			fmt.Println("(set GROQ_API_KEY or api_key in config to enable AI chat)")
		}

		fmt.Println("\nAsk about the data (exit/quit to leave):")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}
			reply, err := res.Session.Submit(cmd.Context(), line)
			if err != nil {
				return err
			}
			printAssistant(reply)
		}
		return scanner.Err()
	},
}

// printAssistant renders assistant markdown for the terminal, falling back to
// plain text when rendering is unavailable.
func printAssistant(text string) {
	if !chatPlain {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100)); err == nil {
			if out, err := r.Render(text); err == nil {
				fmt.Print(out)
				return
			}
		}
	}
	fmt.Println(text)
}

func init() {
	chatCmd.Flags().StringVar(&chatProvider, "provider", "", "AI provider: groq|openai|ollama (default from config)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "model identifier (default from config)")
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "disable markdown rendering")
	chatCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: sniff from extension)")
	rootCmd.AddCommand(chatCmd)
}
