package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dark palette with a lime accent.
var (
	ColorGreen  = lipgloss.Color("#a3e635")
	ColorYellow = lipgloss.Color("#fbbf24")
	ColorRed    = lipgloss.Color("#f87171")
	ColorBlue   = lipgloss.Color("#60a5fa")
	ColorPurple = lipgloss.Color("#c084fc")
	ColorDim    = lipgloss.Color("#6b7280")
	ColorFg     = lipgloss.Color("#e5e7eb")
	ColorHeader = lipgloss.Color("#a3e635")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// categoryStyles is the rotation used to color sport category badges.
var categoryStyles = []lipgloss.Style{
	StyleBlue, StylePurple, StyleYellow, StyleGreen, StyleRed,
}

// CategoryStyle returns a stable style for a sport category name.
// The same category always maps to the same color.
func CategoryStyle(category string) lipgloss.Style {
	if category == "" {
		return StyleDim
	}
	var sum int
	for _, r := range category {
		sum += int(r)
	}
	return categoryStyles[sum%len(categoryStyles)]
}

// Badge renders a category name as a colored [badge].
func Badge(category string) string {
	if category == "" {
		return ""
	}
	s := CategoryStyle(category)
	return s.Render("[" + category + "]")
}

// Header renders a section header with the accent style and an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
