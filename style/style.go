// Package style renders CLI output with lipgloss.
package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var plain bool

// Disable turns every renderer into the identity function.
func Disable() {
	plain = true
}

// Enable restores colored rendering.
func Enable() {
	plain = false
}

func render(s lipgloss.Style, text string) string {
	if plain {
		return text
	}
	return s.Render(text)
}

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return render(New().Foreground(c), s) }
}

var (
	Faint  = func(s string) string { return render(New().Faint(true), s) }
	Bold   = func(s string) string { return render(New().Bold(true), s) }
	Italic = func(s string) string { return render(New().Italic(true), s) }
)

// Tag renders s as a padded badge.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return render(New().Foreground(fg).Background(bg).Padding(0, 1), s) }
}

var (
	Title      = Tag(Light, Indigo)
	ErrorTitle = Tag(Light, HiRed)
)

// Status colors a list status label. Unknown labels are rendered faint.
func Status(label string) string {
	if c, ok := statusColors[label]; ok {
		return Fg(c)(label)
	}
	return Faint(label)
}

// Score renders a 0-10 list score; 0 means unscored.
func Score(score int) string {
	switch {
	case score <= 0:
		return Faint("-")
	case score >= 8:
		return Fg(Green)(strconv.Itoa(score))
	case score >= 5:
		return Fg(Yellow)(strconv.Itoa(score))
	default:
		return Fg(Red)(strconv.Itoa(score))
	}
}
