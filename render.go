// render.go
//
// Terminal rendering of colored guess tiles: green for a hit, yellow
// for a misplaced letter, grey for a miss.

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordler/internal/game"
)

var (
	hitStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#6AAA64"))
	misplacedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#C9B458"))
	missStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8E8E8")).Background(lipgloss.Color("#787C7E"))

	hitWord       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6AAA64"))
	misplacedWord = lipgloss.NewStyle().Foreground(lipgloss.Color("#C9B458"))
	lossWord      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
)

// renderHint formats one guess as a row of colored tiles.
func renderHint(guess game.Word, h game.Hint) string {
	var b strings.Builder
	for i, m := range h {
		tile := " " + strings.ToUpper(string(guess[i])) + " "
		switch m {
		case game.MarkHit:
			b.WriteString(hitStyle.Render(tile))
		case game.MarkMisplaced:
			b.WriteString(misplacedStyle.Render(tile))
		default:
			b.WriteString(missStyle.Render(tile))
		}
	}
	return b.String()
}
