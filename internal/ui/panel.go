package ui

import (
	"countries/internal/country"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
)

const NoFavoritesMessage = "You haven't added any favorite countries yet"

func Theme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label string
	Value string
}

// QueryFields describes q for a panel. The region only matters when
// sorting by region, so it is omitted otherwise.
func QueryFields(q country.Query) []Field {
	fields := []Field{
		{Label: "Sort", Value: q.Sort.Label()},
	}
	if q.Sort == country.SortRegion {
		fields = append(fields, Field{Label: "Region", Value: q.Region})
	}
	fields = append(fields, Field{Label: "Search", Value: q.Search})
	return fields
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderPanel draws a titled summary box. Fields without a value are
// skipped.
func RenderPanel(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(renderField(f))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) string {
	return completeSymbol + " " + f.Label + separator + f.Value
}
