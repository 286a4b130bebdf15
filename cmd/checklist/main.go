// Package main is the entry point for the checklist CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/netherite-checklist/internal/errors"
)

var (
	configPath string
	redisAddr  string
	profile    string
	viewFlag   string
	ephemeral  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Netherite enchantment checklist",
	Long: `Track the trims, colors and enchantments applied to a netherite armor set
and tool kit. Selections are stored in Redis, one entry per category.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address (overrides config)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "key namespace for a separate loadout (overrides config)")
	rootCmd.PersistentFlags().StringVar(&viewFlag, "view", "", "category to act on: armor or tools")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "use an in-process store that is discarded on exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(enchantCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(thornsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// userMessage drops the code prefix from errors caused by bad input
func userMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.CodeInvalidArgument, errors.CodeFailedPrecondition, errors.CodeNotFound:
		return errors.GetMessage(err)
	}
	return err.Error()
}
