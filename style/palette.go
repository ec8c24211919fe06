package style

import "github.com/charmbracelet/lipgloss"

// ANSI colors, so output follows the terminal theme.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
	Gray   = lipgloss.Color("8")
	HiRed  = lipgloss.Color("9")
	Light  = lipgloss.Color("230")
	Indigo = lipgloss.Color("62")
)

// statusColors keys list statuses by their display label.
var statusColors = map[string]lipgloss.Color{
	"watching":      Green,
	"reading":       Green,
	"completed":     Blue,
	"on-hold":       Yellow,
	"dropped":       Red,
	"plan-to-watch": Gray,
	"plan-to-read":  Gray,
}
