// Package catalog holds the static item templates and cosmetic vocabularies
package catalog

import (
	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/errors"
)

var armor = []loadout.ItemTemplate{
	{Name: "Netherite Helmet", Enchantments: []string{"Protection IV", "Unbreaking III", "Mending", "Respiration III", "Aqua Affinity I", "Thorns III"}},
	{Name: "Netherite Chestplate", Enchantments: []string{"Protection IV", "Unbreaking III", "Mending", "Thorns III"}},
	{Name: "Netherite Leggings", Enchantments: []string{"Protection IV", "Unbreaking III", "Mending", "Swift Sneak III", "Thorns III"}},
	{Name: "Netherite Boots", Enchantments: []string{"Protection IV", "Unbreaking III", "Mending", "Depth Strider III / Frost Walker II", "Soul Speed III", "Feather Falling IV", "Thorns III"}},
}

var tools = []loadout.ItemTemplate{
	{Name: "Netherite Sword", Enchantments: []string{"Sharpness V", "Unbreaking III", "Mending", "Looting III", "Fire Aspect II"}},
	{Name: "Netherite Pickaxe", Enchantments: []string{"Efficiency V", "Unbreaking III", "Mending", "Fortune III / Silk Touch"}},
	{Name: "Netherite Axe", Enchantments: []string{"Efficiency V", "Unbreaking III", "Mending", "Sharpness V", "Silk Touch / Fortune III"}},
	{Name: "Netherite Shovel", Enchantments: []string{"Efficiency V", "Unbreaking III", "Mending", "Silk Touch / Fortune III"}},
	{Name: "Netherite Hoe", Enchantments: []string{"Efficiency V", "Unbreaking III", "Mending", "Fortune III", "Silk Touch"}},
}

var trims = []string{"Spire", "Tide", "Ward", "Vex", "Wild", "Rib", "Coast", "Sentry", "Eye", "Snout", "Wayfinder"}

var colors = []string{"Emerald", "Redstone", "Lapis", "Amethyst", "Quartz", "Netherite", "Diamond", "Gold", "Iron", "Copper", "Resin"}

// Items returns the templates for a category in display order.
// The returned slice is a copy; the catalog itself never changes.
func Items(category loadout.Category) []loadout.ItemTemplate {
	var src []loadout.ItemTemplate
	switch category {
	case loadout.CategoryArmor:
		src = armor
	case loadout.CategoryTools:
		src = tools
	default:
		return nil
	}

	out := make([]loadout.ItemTemplate, len(src))
	for i, t := range src {
		out[i] = loadout.ItemTemplate{
			Name:         t.Name,
			Enchantments: append([]string(nil), t.Enchantments...),
		}
	}
	return out
}

// Item looks up a template by name within a category
func Item(category loadout.Category, name string) (loadout.ItemTemplate, error) {
	for _, t := range Items(category) {
		if t.Name == name {
			return t, nil
		}
	}
	return loadout.ItemTemplate{}, errors.NotFoundf("no %s item named %q", category, name).
		WithMeta("category", category.String())
}

// Trims returns the trim vocabulary without the placeholder entry
func Trims() []string {
	return append([]string(nil), trims...)
}

// Colors returns the color vocabulary without the placeholder entry
func Colors() []string {
	return append([]string(nil), colors...)
}

// IsTrim reports whether name is a known trim. The empty string means no trim.
func IsTrim(name string) bool {
	return name == "" || contains(trims, name)
}

// IsColor reports whether name is a known color. The empty string means no color.
func IsColor(name string) bool {
	return name == "" || contains(colors, name)
}

// ValidateSelection checks a selection against its template: trim and color
// must come from the vocabularies and every enchantment must be offered.
func ValidateSelection(category loadout.Category, name string, sel *loadout.Selection) error {
	tmpl, err := Item(category, name)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown item")
	}
	if sel == nil {
		return nil
	}

	vb := errors.NewValidationBuilder()
	if !category.HasCosmetics() {
		if sel.Trim != "" {
			vb.InvalidField("trim", "tools have no cosmetics")
		}
		if sel.Color != "" {
			vb.InvalidField("color", "tools have no cosmetics")
		}
	}
	if !IsTrim(sel.Trim) {
		errors.ValidateEnum("trim", sel.Trim, trims, vb)
	}
	if !IsColor(sel.Color) {
		errors.ValidateEnum("color", sel.Color, colors, vb)
	}
	for _, label := range sel.Enchantments {
		if !tmpl.HasEnchantment(label) {
			vb.Fieldf("enchantments", "%q is not offered on %s", label, name)
		}
	}
	return vb.Build()
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
