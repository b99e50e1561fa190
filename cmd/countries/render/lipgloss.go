package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/dustin/go-humanize"
)

const (
	favoriteMarker = "★ "
	plainMarker    = "  "
	markerWidth    = 2
	barRune        = "█"
	labelWidth     = 12

	populationTitle = "5 Most Populated Countries"
	regionTitle     = "Top 5 Continents by Number of Countries"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	nameStyle     lipgloss.Style
	regionStyle   lipgloss.Style
	valueStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	favoriteStyle lipgloss.Style
	titleStyle    lipgloss.Style
	barStyle      lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		nameStyle:     r.NewStyle().Bold(true),
		regionStyle:   r.NewStyle().Faint(true),
		valueStyle:    r.NewStyle(),
		labelStyle:    r.NewStyle().Faint(true),
		favoriteStyle: r.NewStyle().Foreground(lipgloss.Color("11")),
		titleStyle:    r.NewStyle().Bold(true),
		barStyle:      r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderCountryList(view CountryListView) string {
	if view.IsEmpty() {
		return "No countries found.\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.renderItem(item))
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item CountryListItem) string {
	marker := plainMarker
	if item.Favorite {
		marker = r.favoriteStyle.Render(favoriteMarker)
	}

	pop := humanize.Comma(item.Population)
	padding := max(1, r.width-markerWidth-lipgloss.Width(item.Name)-lipgloss.Width(pop))

	header := marker + r.nameStyle.Render(item.Name) + strings.Repeat(" ", padding) + r.valueStyle.Render(pop)
	region := plainMarker + r.regionStyle.Render(item.Region)
	return header + "\n" + region + "\n"
}

func (r *LipglossRenderer) RenderCountryDetail(view CountryDetailView) string {
	c := view.Country

	title := r.nameStyle.Render(c.Name)
	if view.Favorite {
		title += " " + r.favoriteStyle.Render(strings.TrimSpace(favoriteMarker))
	}

	languages := "none"
	if len(c.Languages) > 0 {
		languages = strings.Join(c.Languages, ", ")
	}

	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString(r.detailLine("Capital:", c.CapitalOr("unknown")))
	sb.WriteString(r.detailLine("Languages:", languages))
	sb.WriteString(r.detailLine("Population:", humanize.Comma(c.Population)))
	sb.WriteString(r.detailLine("Region:", c.Region))
	if c.Area != nil {
		sb.WriteString(r.detailLine("Area:", humanize.Commaf(*c.Area)+" km²"))
	}
	if c.Flag != "" {
		flag := c.Flag
		if view.FlagGlyph != "" {
			flag = view.FlagGlyph + " " + flag
		}
		sb.WriteString(r.detailLine("Flag:", flag))
	}
	return sb.String()
}

func (r *LipglossRenderer) detailLine(label, value string) string {
	return "  " + r.labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)) + value + "\n"
}

func (r *LipglossRenderer) RenderCharts(view ChartsView) string {
	if view.IsEmpty() {
		return "No countries loaded.\n"
	}

	pop := make([]bar, len(view.Population))
	for i, e := range view.Population {
		pop[i] = bar{label: e.Name, value: e.Population, text: humanize.Comma(e.Population)}
	}

	regions := make([]bar, len(view.Regions))
	for i, e := range view.Regions {
		regions[i] = bar{label: e.Region, value: int64(e.Count), text: fmt.Sprint(e.Count)}
	}

	return r.renderBarChart(populationTitle, pop) + "\n" + r.renderBarChart(regionTitle, regions)
}

type bar struct {
	label string
	value int64
	text  string
}

func (r *LipglossRenderer) renderBarChart(title string, bars []bar) string {
	var labelW, textW int
	var maxValue int64
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.label))
		textW = max(textW, lipgloss.Width(b.text))
		maxValue = max(maxValue, b.value)
	}
	barMax := max(1, r.width-labelW-2-textW-1)

	var sb strings.Builder
	sb.WriteString(r.titleStyle.Render(title) + "\n")
	for _, b := range bars {
		n := barLength(b.value, maxValue, barMax)
		label := b.label + strings.Repeat(" ", labelW-lipgloss.Width(b.label))
		sb.WriteString(label + "  " + r.barStyle.Render(strings.Repeat(barRune, n)) + " " + b.text + "\n")
	}
	return sb.String()
}

func barLength(value, maxValue int64, barMax int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	n := int(value * int64(barMax) / maxValue)
	return max(1, n)
}
