package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/orchestrators/checklist"
)

type palette struct {
	title   lipgloss.Style
	item    lipgloss.Style
	checked lipgloss.Style
	plain   lipgloss.Style
	locked  lipgloss.Style
	saved   lipgloss.Style
	reset   lipgloss.Style
}

func paletteFor(theme loadout.Theme) palette {
	text, muted := lipgloss.Color("#ffffff"), lipgloss.Color("#777777")
	if theme == loadout.ThemeLight {
		text, muted = lipgloss.Color("#000000"), lipgloss.Color("#555555")
	}

	return palette{
		title:   lipgloss.NewStyle().Bold(true).Foreground(text),
		item:    lipgloss.NewStyle().Bold(true).Foreground(text).MarginTop(1),
		checked: lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")),
		plain:   lipgloss.NewStyle().Foreground(text),
		locked:  lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		saved:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4caf50")),
		reset:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9800")),
	}
}

func printBoard(w io.Writer, svc checklist.Service) {
	p := paletteFor(svc.Theme())
	view := svc.View()

	thorns := "off"
	if svc.ThornsEnabled() {
		thorns = "on"
	}
	fmt.Fprintln(w, p.title.Render(fmt.Sprintf("%s  (thorns %s, %q to switch)", strings.ToUpper(view.String()), thorns, view.ToggleLabel())))

	for _, item := range svc.Board() {
		header := item.Name
		if item.Cosmetics {
			header = fmt.Sprintf("%s  [%s / %s]", item.Name,
				orPlaceholder(item.Trim, loadout.TrimPlaceholder),
				orPlaceholder(item.Color, loadout.ColorPlaceholder))
		}
		fmt.Fprintln(w, p.item.Render(header))

		for _, es := range item.Enchantments {
			switch {
			case !es.Editable:
				fmt.Fprintln(w, "  "+p.locked.Render("[-] "+es.Label))
			case es.Checked:
				fmt.Fprintln(w, "  "+p.checked.Render("[x] "+es.Label))
			default:
				fmt.Fprintln(w, "  "+p.plain.Render("[ ] "+es.Label))
			}
		}
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// consoleNotifier prints acknowledgments in the theme's colors
type consoleNotifier struct {
	w     io.Writer
	theme func() loadout.Theme
}

func (n *consoleNotifier) Notify(_ context.Context, notice checklist.Notice) {
	theme := loadout.ThemeDark
	if n.theme != nil {
		theme = n.theme()
	}
	p := paletteFor(theme)

	style := p.saved
	if notice.Kind == checklist.NoticeReset {
		style = p.reset
	}
	fmt.Fprintln(n.w, style.Render(notice.Message))
}
