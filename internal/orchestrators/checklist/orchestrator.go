// Package checklist implements the view controller: it renders the active
// category from the catalog and the saved selections, and writes the
// on-screen state back whenever the user edits it
package checklist

//go:generate mockgen -destination=mock/mock_notifier.go -package=checklistmock github.com/KirkDiggler/netherite-checklist/internal/orchestrators/checklist Notifier

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/netherite-checklist/internal/catalog"
	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/errors"
	"github.com/KirkDiggler/netherite-checklist/internal/pkg/clock"
	"github.com/KirkDiggler/netherite-checklist/internal/repositories/preferences"
	"github.com/KirkDiggler/netherite-checklist/internal/repositories/selection"
)

const (
	msgSaved = "Saved!"
	msgReset = "Reset Successful!"
)

// Service is the view controller
type Service interface {
	// View returns the active category
	View() loadout.Category

	// Board returns a copy of the rendered items of the active category
	Board() []loadout.DisplayState

	// Render makes category active and rebuilds its items from the catalog
	// and the saved selections
	Render(ctx context.Context, category loadout.Category) ([]loadout.DisplayState, error)

	// Edit applies one user change to the board, then saves the category
	Edit(ctx context.Context, edit FieldEdit) error

	// OnFieldChanged saves every item of the active category
	OnFieldChanged(ctx context.Context) error

	// OnToggleView saves the active category, then renders the other one
	OnToggleView(ctx context.Context) error

	// OnReset clears the board and the saved selections of the active category
	OnReset(ctx context.Context) error

	// OnThornsToggle sets the global thorns flag and re-applies it to the board
	OnThornsToggle(ctx context.Context, enabled bool) error

	ThornsEnabled() bool
	Theme() loadout.Theme

	// OnToggleTheme flips and stores the theme
	OnToggleTheme(ctx context.Context) (loadout.Theme, error)

	// Import replaces the saved selections of the active category and
	// renders them
	Import(ctx context.Context, selections loadout.Selections) error
}

// Config holds the dependencies for the checklist orchestrator
type Config struct {
	Selections  selection.Repository
	Preferences preferences.Repository
	Notifier    Notifier
	Clock       clock.Clock

	// StartView is rendered on construction; empty means armor
	StartView loadout.Category
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Selections == nil {
		vb.RequiredField("Selections")
	}
	if c.Preferences == nil {
		vb.RequiredField("Preferences")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.StartView != "" && !c.StartView.IsValid() {
		vb.InvalidField("StartView", "unknown category")
	}

	return vb.Build()
}

type orchestrator struct {
	selections selection.Repository
	prefs      preferences.Repository
	notifier   Notifier
	clock      clock.Clock

	view   loadout.Category
	thorns bool
	// unread marks categories whose last load failed; their stored mapping
	// is left alone until a render reads it
	unread map[loadout.Category]bool
	theme  loadout.Theme
	board  []loadout.DisplayState
}

// NewOrchestrator loads the global flags and renders the start view
func NewOrchestrator(ctx context.Context, cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		selections: cfg.Selections,
		prefs:      cfg.Preferences,
		notifier:   cfg.Notifier,
		clock:      cfg.Clock,
		theme:      loadout.ThemeDark,
		unread:     make(map[loadout.Category]bool),
	}

	prefs, err := o.prefs.Get(ctx)
	if err != nil {
		slog.WarnContext(ctx, "using default preferences", "error", err)
	} else {
		o.thorns = prefs.Preferences.ThornsEnabled
		o.theme = prefs.Preferences.Theme
	}

	start := cfg.StartView
	if start == "" {
		start = loadout.CategoryArmor
	}
	if _, err := o.Render(ctx, start); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *orchestrator) View() loadout.Category {
	return o.view
}

func (o *orchestrator) ThornsEnabled() bool {
	return o.thorns
}

func (o *orchestrator) Theme() loadout.Theme {
	return o.theme
}

func (o *orchestrator) Board() []loadout.DisplayState {
	return copyBoard(o.board)
}

func (o *orchestrator) Render(ctx context.Context, category loadout.Category) ([]loadout.DisplayState, error) {
	if !category.IsValid() {
		return nil, errors.InvalidArgumentf("unknown category %q", category)
	}

	saved, ok := o.loadSelections(ctx, category)
	o.unread[category] = !ok

	templates := catalog.Items(category)
	board := make([]loadout.DisplayState, 0, len(templates))
	for _, tmpl := range templates {
		board = append(board, loadout.Overlay(tmpl, saved[tmpl.Name], category.HasCosmetics(), o.thorns))
	}

	o.view = category
	o.board = board

	return o.Board(), nil
}

func (o *orchestrator) Edit(ctx context.Context, edit FieldEdit) error {
	item := o.find(edit.Item)
	if item == nil {
		return errors.InvalidArgumentf("no %s item named %q", o.view, edit.Item).
			WithMeta("category", o.view.String())
	}

	switch edit.Field {
	case FieldTrim, FieldColor:
		if !item.Cosmetics {
			return errors.FailedPreconditionf("%s has no %s", item.Name, edit.Field)
		}
		value := edit.Value
		if edit.Field == FieldTrim {
			if value == loadout.TrimPlaceholder {
				value = ""
			}
			if !catalog.IsTrim(value) {
				return errors.InvalidArgumentf("unknown trim %q", edit.Value)
			}
			item.Trim = value
		} else {
			if value == loadout.ColorPlaceholder {
				value = ""
			}
			if !catalog.IsColor(value) {
				return errors.InvalidArgumentf("unknown color %q", edit.Value)
			}
			item.Color = value
		}

	case FieldEnchantment:
		tmpl, err := catalog.Item(o.view, item.Name)
		if err != nil {
			return errors.Wrap(err, "catalog lookup failed")
		}
		if !tmpl.HasEnchantment(edit.Value) {
			return errors.InvalidArgumentf("%q is not offered on %s", edit.Value, item.Name)
		}
		if !item.SetEnchantment(edit.Value, edit.Checked) {
			return errors.FailedPreconditionf("%q is disabled", edit.Value).
				WithMeta("thorns_enabled", o.thorns)
		}

	default:
		return errors.InvalidArgumentf("unknown field %q", edit.Field)
	}

	return o.OnFieldChanged(ctx)
}

func (o *orchestrator) OnFieldChanged(ctx context.Context) error {
	o.save(ctx, o.view)
	return nil
}

func (o *orchestrator) OnToggleView(ctx context.Context) error {
	from := o.view
	o.save(ctx, from)

	if _, err := o.Render(ctx, from.Other()); err != nil {
		return err
	}

	slog.InfoContext(ctx, "view switched",
		"from", from.String(),
		"to", o.view.String())

	return nil
}

func (o *orchestrator) OnReset(ctx context.Context) error {
	for i := range o.board {
		o.board[i].Clear()
	}

	out, err := o.selections.Reset(ctx, selection.ResetInput{Category: o.view})
	if err != nil {
		slog.WarnContext(ctx, "failed to reset selections",
			"category", o.view.String(),
			"error", err)
		return nil
	}

	o.unread[o.view] = false

	slog.InfoContext(ctx, "selections reset",
		"category", o.view.String(),
		"existed", out.Existed)

	o.notify(ctx, NoticeReset, msgReset)
	return nil
}

func (o *orchestrator) OnThornsToggle(ctx context.Context, enabled bool) error {
	o.thorns = enabled

	if err := o.prefs.SetThornsEnabled(ctx, preferences.SetThornsEnabledInput{Enabled: enabled}); err != nil {
		slog.WarnContext(ctx, "failed to store thorns flag", "error", err)
	}

	for i := range o.board {
		o.board[i].ApplyGate(enabled)
	}

	o.save(ctx, o.view)
	return nil
}

func (o *orchestrator) OnToggleTheme(ctx context.Context) (loadout.Theme, error) {
	o.theme = o.theme.Toggle()

	if err := o.prefs.SetTheme(ctx, preferences.SetThemeInput{Theme: o.theme}); err != nil {
		slog.WarnContext(ctx, "failed to store theme", "error", err)
	}

	return o.theme, nil
}

func (o *orchestrator) Import(ctx context.Context, selections loadout.Selections) error {
	category := o.view

	clean := make(loadout.Selections, len(selections))
	for name, sel := range selections {
		if sel == nil {
			continue
		}
		sel = sel.Normalized()
		if err := catalog.ValidateSelection(category, name, sel); err != nil {
			return errors.Wrapf(err, "invalid selection for %s", name)
		}
		clean[name] = sel
	}

	if _, err := o.selections.Save(ctx, selection.SaveInput{
		Category:   category,
		Selections: clean,
	}); err != nil {
		return errors.Wrapf(err, "failed to import %s selections", category)
	}

	slog.InfoContext(ctx, "selections imported",
		"category", category.String(),
		"items", len(clean))

	o.notify(ctx, NoticeSaved, msgSaved)

	_, err := o.Render(ctx, category)
	return err
}

// save writes the whole board of category. Storage is best-effort: a failed
// write is logged and the board keeps the user's edits. A category whose
// load failed is never written, so an unreachable store cannot be
// overwritten with the empty board.
func (o *orchestrator) save(ctx context.Context, category loadout.Category) {
	if o.unread[category] {
		slog.WarnContext(ctx, "not saving selections that were never loaded",
			"category", category.String())
		return
	}

	selections := make(loadout.Selections, len(o.board))
	for _, item := range o.board {
		selections[item.Name] = item.Capture()
	}

	if _, err := o.selections.Save(ctx, selection.SaveInput{
		Category:   category,
		Selections: selections,
	}); err != nil {
		slog.WarnContext(ctx, "failed to save selections",
			"category", category.String(),
			"error", err)
		return
	}

	o.notify(ctx, NoticeSaved, msgSaved)
}

// loadSelections reports false when the store could not be read. Missing and
// unparseable data are not failures; the repository returns them as empty.
func (o *orchestrator) loadSelections(ctx context.Context, category loadout.Category) (loadout.Selections, bool) {
	out, err := o.selections.Load(ctx, selection.LoadInput{Category: category})
	if err != nil {
		slog.WarnContext(ctx, "rendering without saved selections",
			"category", category.String(),
			"error", err)
		return loadout.Selections{}, false
	}
	return out.Selections, true
}

func (o *orchestrator) notify(ctx context.Context, kind NoticeKind, message string) {
	now := o.clock.Now()
	o.notifier.Notify(ctx, Notice{
		Kind:    kind,
		Message: message,
		At:      now,
		Until:   now.Add(NoticeDuration),
	})
}

func (o *orchestrator) find(name string) *loadout.DisplayState {
	for i := range o.board {
		if o.board[i].Name == name {
			return &o.board[i]
		}
	}
	return nil
}

func copyBoard(board []loadout.DisplayState) []loadout.DisplayState {
	out := make([]loadout.DisplayState, len(board))
	for i, item := range board {
		out[i] = item
		out[i].Enchantments = append([]loadout.EnchantmentState(nil), item.Enchantments...)
	}
	return out
}
