package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/accucheck/accucheck-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set AccuCheck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		fmt.Printf("api_key: %s\n", mask(c.APIKey))
		fmt.Printf("provider: %s\n", c.Provider)
		fmt.Printf("model: %s\n", c.Model)
		fmt.Printf("temperature: %.3f\n", c.Temperature)
		fmt.Printf("max_tokens: %d\n", c.MaxTokens)
		fmt.Printf("listen_addr: %s\n", c.ListenAddr)
		fmt.Printf("log_level: %s\n", c.LogLevel)
		if c.OllamaHost != "" {
			fmt.Printf("ollama_host: %s\n", c.OllamaHost)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := ensureConfig()
		switch key {
		case "api_key":
			c.APIKey = val
		case "provider":
			switch val {
			case "groq", "openai", "ollama":
				c.Provider = val
			default:
				return fmt.Errorf("invalid provider: %s (use groq, openai, or ollama)", val)
			}
		case "model":
			c.Model = val
		case "temperature":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid temperature: %s", val)
			}
			c.Temperature = f
		case "max_tokens":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid max_tokens: %s", val)
			}
			c.MaxTokens = n
		case "listen_addr":
			c.ListenAddr = val
		case "log_level":
			c.LogLevel = val
		case "ollama_host":
			c.OllamaHost = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
