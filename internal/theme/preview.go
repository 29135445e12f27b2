package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	previewTitle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	previewLabel = lipgloss.NewStyle().Width(12)
	previewBox   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func swatch(bg, fg, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(text)
}

// Preview renders the palette of t as terminal color swatches.
func Preview(t Theme) string {
	p := t.Palette
	roles := []struct {
		name string
		role ColorRole
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"success", p.Success},
		{"error", p.Error},
		{"warning", p.Warning},
		{"info", p.Info},
	}

	rows := make([]string, 0, len(roles)+4)
	for _, r := range roles {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			previewLabel.Render(r.name),
			swatch(r.role.Light, r.role.ContrastText, r.role.Light),
			swatch(r.role.Main, r.role.ContrastText, r.role.Main),
			swatch(r.role.Dark, r.role.ContrastText, r.role.Dark),
		))
	}
	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Top,
			previewLabel.Render("background"),
			swatch(p.Background.Default, p.Text.Primary, p.Background.Default),
			swatch(p.Background.Paper, p.Text.Primary, p.Background.Paper),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			previewLabel.Render("text"),
			swatch(p.Background.Paper, p.Text.Primary, p.Text.Primary),
			swatch(p.Background.Paper, p.Text.Secondary, p.Text.Secondary),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			previewLabel.Render("login card"),
			swatch(p.LoginCardColor, p.Text.Primary, fmt.Sprintf("%s r=%dpx", p.LoginCardColor, p.LoginCardRadius)),
		),
	)

	var fonts strings.Builder
	for _, h := range []struct {
		name  string
		style TextStyle
	}{
		{"h1", t.Typography.H1}, {"h2", t.Typography.H2}, {"h3", t.Typography.H3},
		{"h4", t.Typography.H4}, {"h5", t.Typography.H5}, {"h6", t.Typography.H6},
	} {
		fmt.Fprintf(&fonts, "%s %s", previewLabel.Render(h.name), h.style.FontSize)
		for _, m := range h.style.Responsive {
			fmt.Fprintf(&fonts, "  @%dpx %s", m.MinWidth, m.FontSize)
		}
		fonts.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		previewTitle.Render("Palette"),
		previewBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		previewTitle.MarginTop(1).Render("Headings"),
		previewBox.Render(strings.TrimRight(fonts.String(), "\n")),
	)
}
