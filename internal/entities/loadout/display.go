package loadout

const (
	// GatedEnchantment is only selectable while the global thorns flag is on
	GatedEnchantment = "Thorns III"

	// TrimPlaceholder and ColorPlaceholder are the "no selection" entries of the dropdowns
	TrimPlaceholder  = "Trim"
	ColorPlaceholder = "Color"
)

// IsGated reports whether label is controlled by the global thorns flag
func IsGated(label string) bool {
	return label == GatedEnchantment
}

// EnchantmentState is the on-screen state of one enchantment checkbox
type EnchantmentState struct {
	Label    string
	Checked  bool
	Editable bool

	// Gated entries remember the user's choice while the gate is closed so
	// reopening it restores the saved value
	Gated bool
	Held  bool
}

// DisplayState is the on-screen state of one item template
type DisplayState struct {
	Name         string
	Cosmetics    bool
	Trim         string
	Color        string
	Enchantments []EnchantmentState
}

// Overlay merges a saved selection onto a template's defaults. A nil selection
// yields no trim, no color and every enchantment unchecked. The gated label is
// forced unchecked and read-only when thornsEnabled is false.
func Overlay(tmpl ItemTemplate, sel *Selection, cosmetics, thornsEnabled bool) DisplayState {
	state := DisplayState{
		Name:         tmpl.Name,
		Cosmetics:    cosmetics,
		Enchantments: make([]EnchantmentState, 0, len(tmpl.Enchantments)),
	}

	if sel != nil && cosmetics {
		state.Trim = normalizeChoice(sel.Trim, TrimPlaceholder)
		state.Color = normalizeChoice(sel.Color, ColorPlaceholder)
	}

	for _, label := range tmpl.Enchantments {
		saved := sel.HasEnchantment(label)
		es := EnchantmentState{
			Label:    label,
			Checked:  saved,
			Editable: true,
		}
		if IsGated(label) {
			es.Gated = true
			es.Held = saved
			es.Checked = saved && thornsEnabled
			es.Editable = thornsEnabled
		}
		state.Enchantments = append(state.Enchantments, es)
	}

	return state
}

// ApplyGate re-applies the thorns rule to an already rendered item
func (d *DisplayState) ApplyGate(enabled bool) {
	for i := range d.Enchantments {
		es := &d.Enchantments[i]
		if !es.Gated {
			continue
		}
		if enabled {
			es.Checked = es.Held
			es.Editable = true
			continue
		}
		if es.Editable {
			es.Held = es.Checked
		}
		es.Checked = false
		es.Editable = false
	}
}

// SetEnchantment checks or unchecks label. It returns false when the label is
// not offered or is currently read-only.
func (d *DisplayState) SetEnchantment(label string, checked bool) bool {
	for i := range d.Enchantments {
		es := &d.Enchantments[i]
		if es.Label != label {
			continue
		}
		if !es.Editable {
			return false
		}
		es.Checked = checked
		if es.Gated {
			es.Held = checked
		}
		return true
	}
	return false
}

// Clear resets every field to its default
func (d *DisplayState) Clear() {
	d.Trim = ""
	d.Color = ""
	for i := range d.Enchantments {
		d.Enchantments[i].Checked = false
		d.Enchantments[i].Held = false
	}
}

// Capture reads the selection the item currently shows. A gated label that
// is read-only keeps its held value so closing the gate loses nothing.
func (d DisplayState) Capture() *Selection {
	sel := &Selection{
		Enchantments: []string{},
	}
	if d.Cosmetics {
		sel.Trim = d.Trim
		sel.Color = d.Color
	}
	for _, es := range d.Enchantments {
		on := es.Checked
		if es.Gated && !es.Editable {
			on = es.Held
		}
		if on {
			sel.Enchantments = append(sel.Enchantments, es.Label)
		}
	}
	return sel
}

// Enabled returns the labels currently shown as checked
func (d DisplayState) Enabled() []string {
	labels := []string{}
	for _, es := range d.Enchantments {
		if es.Checked {
			labels = append(labels, es.Label)
		}
	}
	return labels
}

func normalizeChoice(value, placeholder string) string {
	if value == placeholder {
		return ""
	}
	return value
}
