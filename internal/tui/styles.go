package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)

// Painter applies styles only when styling is enabled, so the same code
// prints plain text into pipes and decorated text on terminals.
type Painter struct {
	styled bool
}

// NewPainter creates a Painter. Pass IsStyled(os.Stdout) for stdout.
func NewPainter(styled bool) Painter {
	return Painter{styled: styled}
}

func (p Painter) paint(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p Painter) Title(text string) string   { return p.paint(TitleStyle, text) }
func (p Painter) Key(text string) string     { return p.paint(KeyStyle, text) }
func (p Painter) Muted(text string) string   { return p.paint(MutedStyle, text) }
func (p Painter) Success(text string) string { return p.paint(SuccessStyle, text) }
func (p Painter) Warning(text string) string { return p.paint(WarningStyle, text) }
func (p Painter) Error(text string) string   { return p.paint(ErrorStyle, text) }

// Columns lays out rows as left-aligned columns separated by two spaces.
// Widths are measured on the rendered cells, so styled cells align too.
func Columns(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			line.WriteString(cell)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
