// Package render lays out canonical records as boxed text cards for terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/heartmarshall/pokecard/internal/domain"
)

const minInnerWidth = 28

// Stat labels in display order.
var statLabels = [...]string{"PV", "Attaque", "Défense", "Atq. Spé.", "Déf. Spé.", "Vitesse"}

// Card writes rec to w as a boxed card.
func Card(w io.Writer, rec domain.CanonicalRecord) error {
	_, err := io.WriteString(w, CardString(rec))
	return err
}

// CardString returns rec as a boxed card. Width adapts to the widest line,
// measured in terminal cells so accented names and badges stay aligned.
func CardString(rec domain.CanonicalRecord) string {
	lines := cardLines(rec)

	inner := minInnerWidth
	for _, l := range lines {
		if wd := runewidth.StringWidth(l); wd > inner {
			inner = wd
		}
	}

	var sb strings.Builder
	sb.WriteString("╭" + strings.Repeat("─", inner+2) + "╮\n")
	for _, l := range lines {
		if l == rule {
			sb.WriteString("├" + strings.Repeat("─", inner+2) + "┤\n")
			continue
		}
		sb.WriteString("│ ")
		sb.WriteString(l)
		sb.WriteString(strings.Repeat(" ", inner-runewidth.StringWidth(l)))
		sb.WriteString(" │\n")
	}
	sb.WriteString("╰" + strings.Repeat("─", inner+2) + "╯\n")
	return sb.String()
}

// rule marks a horizontal separator in the line list.
const rule = "\x00rule"

func cardLines(rec domain.CanonicalRecord) []string {
	header := rec.Name
	id := "#" + rec.DisplayID()
	// Right-align the id on the header line when it fits the minimum width.
	if gap := minInnerWidth - runewidth.StringWidth(header) - runewidth.StringWidth(id); gap > 0 {
		header += strings.Repeat(" ", gap) + id
	} else {
		header += "  " + id
	}

	badges := make([]string, len(rec.Types))
	for i, t := range rec.Types {
		badges[i] = "[" + t + "]"
	}

	lines := []string{
		header,
		"Génération " + rec.Generation.String(),
		strings.Join(badges, " "),
		rule,
	}

	stats := [...]domain.Value{
		rec.Stats.HP, rec.Stats.Attack, rec.Stats.Defense,
		rec.Stats.SpecialAttack, rec.Stats.SpecialDefense, rec.Stats.Speed,
	}
	labelWidth := 0
	for _, l := range statLabels {
		labelWidth = max(labelWidth, runewidth.StringWidth(l))
	}
	for i, l := range statLabels {
		lines = append(lines, fmt.Sprintf("%s%s  %s",
			l, strings.Repeat(" ", labelWidth-runewidth.StringWidth(l)), stats[i].String()))
	}

	if rec.ImageURL != "" {
		lines = append(lines, rule, rec.ImageAlt, rec.ImageURL)
	}
	return lines
}
