package loadout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
)

var chestplate = loadout.ItemTemplate{
	Name:         "Netherite Chestplate",
	Enchantments: []string{"Protection IV", "Unbreaking III", "Mending", "Thorns III"},
}

func find(t *testing.T, d loadout.DisplayState, label string) loadout.EnchantmentState {
	t.Helper()
	for _, es := range d.Enchantments {
		if es.Label == label {
			return es
		}
	}
	require.FailNow(t, "missing enchantment", label)
	return loadout.EnchantmentState{}
}

func TestOverlay_NoSelectionDefaults(t *testing.T) {
	d := loadout.Overlay(chestplate, nil, true, true)

	assert.Equal(t, "Netherite Chestplate", d.Name)
	assert.Empty(t, d.Trim)
	assert.Empty(t, d.Color)
	require.Len(t, d.Enchantments, 4)
	for i, es := range d.Enchantments {
		assert.Equal(t, chestplate.Enchantments[i], es.Label, "template order is kept")
		assert.False(t, es.Checked)
		assert.True(t, es.Editable)
	}
}

func TestOverlay_AppliesSavedSelection(t *testing.T) {
	sel := &loadout.Selection{
		Trim:         "Ward",
		Color:        "Emerald",
		Enchantments: []string{"Mending", "Protection IV"},
	}

	d := loadout.Overlay(chestplate, sel, true, false)

	assert.Equal(t, "Ward", d.Trim)
	assert.Equal(t, "Emerald", d.Color)
	assert.Equal(t, []string{"Protection IV", "Mending"}, d.Enabled())
}

func TestOverlay_IgnoresLabelsNotOnTemplate(t *testing.T) {
	sel := &loadout.Selection{Enchantments: []string{"Swift Sneak III", "Mending"}}

	d := loadout.Overlay(chestplate, sel, true, true)

	assert.Equal(t, []string{"Mending"}, d.Enabled())
}

func TestOverlay_CosmeticsOnlyWhenCategoryHasThem(t *testing.T) {
	sel := &loadout.Selection{Trim: "Ward", Color: "Gold"}

	d := loadout.Overlay(chestplate, sel, false, true)

	assert.False(t, d.Cosmetics)
	assert.Empty(t, d.Trim)
	assert.Empty(t, d.Color)
}

func TestOverlay_PlaceholdersMeanNoSelection(t *testing.T) {
	sel := &loadout.Selection{Trim: loadout.TrimPlaceholder, Color: loadout.ColorPlaceholder}

	d := loadout.Overlay(chestplate, sel, true, true)

	assert.Empty(t, d.Trim)
	assert.Empty(t, d.Color)
}

func TestOverlay_GateClosedForcesThornsOff(t *testing.T) {
	sel := &loadout.Selection{Enchantments: []string{"Thorns III", "Mending"}}

	d := loadout.Overlay(chestplate, sel, true, false)

	thorns := find(t, d, "Thorns III")
	assert.False(t, thorns.Checked)
	assert.False(t, thorns.Editable)
	assert.True(t, thorns.Held)
	assert.Equal(t, []string{"Mending"}, d.Enabled())

	assert.True(t, find(t, d, "Mending").Editable, "only the gated label is locked")
}

func TestOverlay_GateOpenShowsSavedThorns(t *testing.T) {
	sel := &loadout.Selection{Enchantments: []string{"Thorns III"}}

	d := loadout.Overlay(chestplate, sel, true, true)

	thorns := find(t, d, "Thorns III")
	assert.True(t, thorns.Checked)
	assert.True(t, thorns.Editable)
}

func TestApplyGate_RestoresHeldChoice(t *testing.T) {
	d := loadout.Overlay(chestplate, nil, true, true)
	require.True(t, d.SetEnchantment("Thorns III", true))

	d.ApplyGate(false)
	thorns := find(t, d, "Thorns III")
	assert.False(t, thorns.Checked)
	assert.False(t, thorns.Editable)

	assert.False(t, d.SetEnchantment("Thorns III", false), "locked while the gate is closed")

	d.ApplyGate(true)
	thorns = find(t, d, "Thorns III")
	assert.True(t, thorns.Checked)
	assert.True(t, thorns.Editable)
}

func TestCapture_KeepsHeldThornsWhileGated(t *testing.T) {
	sel := &loadout.Selection{Trim: "Vex", Enchantments: []string{"Thorns III", "Unbreaking III"}}
	d := loadout.Overlay(chestplate, sel, true, false)

	got := d.Capture()

	assert.Equal(t, &loadout.Selection{
		Trim:         "Vex",
		Enchantments: []string{"Unbreaking III", "Thorns III"},
	}, got)
}

func TestCapture_DropsCosmeticsWithoutCosmetics(t *testing.T) {
	d := loadout.Overlay(chestplate, nil, false, true)
	d.Trim = "Ward"

	got := d.Capture()

	assert.Empty(t, got.Trim)
	assert.NotNil(t, got.Enchantments)
}

func TestClear(t *testing.T) {
	sel := &loadout.Selection{Trim: "Vex", Color: "Iron", Enchantments: []string{"Thorns III", "Mending"}}
	d := loadout.Overlay(chestplate, sel, true, false)

	d.Clear()

	assert.Equal(t, &loadout.Selection{Enchantments: []string{}}, d.Capture())
}

func TestSetEnchantment_UnknownLabel(t *testing.T) {
	d := loadout.Overlay(chestplate, nil, true, true)
	assert.False(t, d.SetEnchantment("Looting III", true))
}
