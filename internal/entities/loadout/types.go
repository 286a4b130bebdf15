// Package loadout defines the item templates, user selections and display state
// for the enchantment checklist
package loadout

// Category selects which item group is active and which storage key it uses
type Category string

const (
	CategoryArmor Category = "armor"
	CategoryTools Category = "tools"
)

// Categories lists every category in display order
var Categories = []Category{CategoryArmor, CategoryTools}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	return c == CategoryArmor || c == CategoryTools
}

// Other returns the category the view toggle switches to
func (c Category) Other() Category {
	if c == CategoryArmor {
		return CategoryTools
	}
	return CategoryArmor
}

// HasCosmetics reports whether items in the category carry trim and color choices
func (c Category) HasCosmetics() bool {
	return c == CategoryArmor
}

// ToggleLabel is the caption of the view toggle while c is active
func (c Category) ToggleLabel() string {
	if c == CategoryArmor {
		return "Show Tools"
	}
	return "Show Armor"
}

// ParseCategory converts user input into a Category
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryArmor:
		return CategoryArmor, true
	case CategoryTools, "tool":
		return CategoryTools, true
	}
	return "", false
}

// Theme is the persisted presentation theme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the stored theme, defaulting to dark for anything but "light"
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle flips between light and dark
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ItemTemplate is the static definition of an item and its available enchantments
type ItemTemplate struct {
	Name         string
	Enchantments []string
}

// HasEnchantment reports whether label is offered by the template
func (t ItemTemplate) HasEnchantment(label string) bool {
	for _, e := range t.Enchantments {
		if e == label {
			return true
		}
	}
	return false
}

// Selection is a user's saved choice for one item template.
// Empty Trim or Color means no selection.
type Selection struct {
	Trim         string   `json:"trim,omitempty"`
	Color        string   `json:"color,omitempty"`
	Enchantments []string `json:"enchantments"`
}

// HasEnchantment reports whether label is enabled in the selection
func (s *Selection) HasEnchantment(label string) bool {
	if s == nil {
		return false
	}
	for _, e := range s.Enchantments {
		if e == label {
			return true
		}
	}
	return false
}

// Normalized returns a copy with the "Trim" and "Color" placeholders read as
// no selection and a non-nil enchantment list
func (s *Selection) Normalized() *Selection {
	if s == nil {
		return nil
	}
	return &Selection{
		Trim:         normalizeChoice(s.Trim, TrimPlaceholder),
		Color:        normalizeChoice(s.Color, ColorPlaceholder),
		Enchantments: append([]string{}, s.Enchantments...),
	}
}

// Selections maps item template name to its selection for one category
type Selections map[string]*Selection
