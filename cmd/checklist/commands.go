package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/netherite-checklist/internal/catalog"
	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/orchestrators/checklist"
	"github.com/KirkDiggler/netherite-checklist/internal/repositories/selection"
)

var enchantOff bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the checklist for the active view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app) error {
			printBoard(a.out, a.service)
			return nil
		})
	},
}

var trimCmd = &cobra.Command{
	Use:   "trim <item> <trim>",
	Short: "Choose an armor trim (use \"Trim\" to clear)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editField(checklist.FieldTrim, args[0], args[1], false)
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <item> <color>",
	Short: "Choose a trim color (use \"Color\" to clear)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editField(checklist.FieldColor, args[0], args[1], false)
	},
}

var enchantCmd = &cobra.Command{
	Use:   "enchant <item> <enchantment>",
	Short: "Tick an enchantment, or untick it with --off",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editField(checklist.FieldEnchantment, args[0], args[1], !enchantOff)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every selection in the active view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app) error {
			if err := a.service.OnReset(ctx); err != nil {
				return err
			}
			printBoard(a.out, a.service)
			return nil
		})
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Save the active view and show the other one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app) error {
			if err := a.service.OnToggleView(ctx); err != nil {
				return err
			}
			printBoard(a.out, a.service)
			return nil
		})
	},
}

var thornsCmd = &cobra.Command{
	Use:       "thorns <on|off>",
	Short:     "Allow or lock Thorns III on every armor piece",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch strings.ToLower(args[0]) {
		case "on", "true":
			enabled = true
		case "off", "false":
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}

		return withApp(func(ctx context.Context, a *app) error {
			if err := a.service.OnThornsToggle(ctx, enabled); err != nil {
				return err
			}
			printBoard(a.out, a.service)
			return nil
		})
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Switch between the light and dark theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app) error {
			theme, err := a.service.OnToggleTheme(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "theme: %s\n", theme)
			return nil
		})
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every item, enchantment, trim and color",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, category := range loadout.Categories {
			fmt.Fprintf(out, "[%s]\n", category)
			for _, item := range catalog.Items(category) {
				fmt.Fprintf(out, "  %s: %s\n", item.Name, strings.Join(item.Enchantments, ", "))
			}
		}
		fmt.Fprintf(out, "trims: %s\n", strings.Join(catalog.Trims(), ", "))
		fmt.Fprintf(out, "colors: %s\n", strings.Join(catalog.Colors(), ", "))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the stored selections of the active view as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app) error {
			out, err := a.selections.Load(ctx, selection.LoadInput{Category: a.service.View()})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.out)
			enc.SetIndent("", "  ")
			return enc.Encode(out.Selections)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the active view's selections with a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var selections loadout.Selections
		if err := json.Unmarshal(data, &selections); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		return withApp(func(ctx context.Context, a *app) error {
			if err := a.service.Import(ctx, selections); err != nil {
				return err
			}
			printBoard(a.out, a.service)
			return nil
		})
	},
}

func init() {
	enchantCmd.Flags().BoolVar(&enchantOff, "off", false, "untick instead of tick")
}

func editField(field checklist.Field, itemArg, value string, checked bool) error {
	return withApp(func(ctx context.Context, a *app) error {
		name, err := resolveItem(a.service.Board(), itemArg)
		if err != nil {
			return err
		}

		if err := a.service.Edit(ctx, checklist.FieldEdit{
			Item:    name,
			Field:   field,
			Value:   value,
			Checked: checked,
		}); err != nil {
			return err
		}

		printBoard(a.out, a.service)
		return nil
	})
}
