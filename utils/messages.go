package utils

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Supported values for the --highlight-color option; unknown names fall back
// to cyan.
var highlightColors = map[string]text.Color{
	"cyan":    text.FgHiCyan,
	"magenta": text.FgHiMagenta,
	"green":   text.FgHiGreen,
	"yellow":  text.FgHiYellow,
	"blue":    text.FgHiBlue,
	"red":     text.FgHiRed,
	"white":   text.FgHiWhite,
}

var headerStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Bold(true)

// HighlightColor resolves a color name to its terminal color
func HighlightColor(name string) text.Color {
	if color, ok := highlightColors[name]; ok {
		return color
	}
	return highlightColors["cyan"]
}

// PrintHeader draws a bordered section title in the highlight color
func PrintHeader(title, highlight string) {
	fmt.Println(headerStyle.Render(HighlightColor(highlight).Sprint(title)))
}

func PrintInfo(message string) {
	fmt.Printf("%s %s\n", text.FgHiGreen.Sprint("✓"), message)
}

func PrintWarn(message string) {
	fmt.Printf("%s %s\n", text.FgHiYellow.Sprint("!"), message)
}

func PrintError(message string) {
	fmt.Printf("%s %s\n", text.FgHiRed.Sprint("✗"), message)
}
