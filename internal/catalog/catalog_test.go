package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/netherite-checklist/internal/catalog"
	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/errors"
)

func TestItems(t *testing.T) {
	armor := catalog.Items(loadout.CategoryArmor)
	require.Len(t, armor, 4)
	assert.Equal(t, "Netherite Helmet", armor[0].Name)
	assert.Equal(t, "Netherite Boots", armor[3].Name)
	for _, item := range armor {
		assert.True(t, item.HasEnchantment(loadout.GatedEnchantment), item.Name)
	}

	tools := catalog.Items(loadout.CategoryTools)
	require.Len(t, tools, 5)
	for _, item := range tools {
		assert.False(t, item.HasEnchantment(loadout.GatedEnchantment), item.Name)
	}

	assert.Nil(t, catalog.Items("weapons"))
}

func TestItemsAreCopies(t *testing.T) {
	items := catalog.Items(loadout.CategoryArmor)
	items[0].Name = "Leather Cap"
	items[0].Enchantments[0] = "Curse of Binding"

	again := catalog.Items(loadout.CategoryArmor)
	assert.Equal(t, "Netherite Helmet", again[0].Name)
	assert.Equal(t, "Protection IV", again[0].Enchantments[0])
}

func TestNamesAreUniquePerCategory(t *testing.T) {
	for _, category := range loadout.Categories {
		seen := map[string]bool{}
		for _, item := range catalog.Items(category) {
			assert.False(t, seen[item.Name], "duplicate %s", item.Name)
			seen[item.Name] = true
		}
	}
}

func TestItem(t *testing.T) {
	item, err := catalog.Item(loadout.CategoryTools, "Netherite Pickaxe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Efficiency V", "Unbreaking III", "Mending", "Fortune III / Silk Touch"}, item.Enchantments)

	_, err = catalog.Item(loadout.CategoryArmor, "Netherite Pickaxe")
	assert.True(t, errors.IsNotFound(err))
}

func TestVocabularies(t *testing.T) {
	assert.Len(t, catalog.Trims(), 11)
	assert.Len(t, catalog.Colors(), 11)
	assert.NotContains(t, catalog.Trims(), loadout.TrimPlaceholder)
	assert.NotContains(t, catalog.Colors(), loadout.ColorPlaceholder)

	assert.True(t, catalog.IsTrim(""))
	assert.True(t, catalog.IsTrim("Snout"))
	assert.False(t, catalog.IsTrim("Bolt"))
	assert.True(t, catalog.IsColor("Resin"))
	assert.False(t, catalog.IsColor("Purple"))
}

func TestValidateSelection(t *testing.T) {
	testCases := []struct {
		name     string
		category loadout.Category
		item     string
		sel      *loadout.Selection
		errMsg   string
	}{
		{
			name:     "valid armor selection",
			category: loadout.CategoryArmor,
			item:     "Netherite Helmet",
			sel:      &loadout.Selection{Trim: "Ward", Color: "Emerald", Enchantments: []string{"Protection IV", "Mending"}},
		},
		{
			name:     "nil selection",
			category: loadout.CategoryTools,
			item:     "Netherite Hoe",
		},
		{
			name:     "unknown item",
			category: loadout.CategoryArmor,
			item:     "Netherite Hoe",
			sel:      &loadout.Selection{},
			errMsg:   "unknown item",
		},
		{
			name:     "unknown trim",
			category: loadout.CategoryArmor,
			item:     "Netherite Boots",
			sel:      &loadout.Selection{Trim: "Bolt"},
			errMsg:   "trim: must be one of",
		},
		{
			name:     "label not offered",
			category: loadout.CategoryArmor,
			item:     "Netherite Chestplate",
			sel:      &loadout.Selection{Enchantments: []string{"Respiration III"}},
			errMsg:   "is not offered on Netherite Chestplate",
		},
		{
			name:     "cosmetics on a tool",
			category: loadout.CategoryTools,
			item:     "Netherite Axe",
			sel:      &loadout.Selection{Color: "Gold"},
			errMsg:   "color: tools have no cosmetics",
		},
		{
			name:     "trim on a tool",
			category: loadout.CategoryTools,
			item:     "Netherite Pickaxe",
			sel:      &loadout.Selection{Trim: "Ward"},
			errMsg:   "trim: tools have no cosmetics",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.ValidateSelection(tc.category, tc.item, tc.sel)
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
