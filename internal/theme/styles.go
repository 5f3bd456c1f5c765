package theme

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles derived from one palette.
type Styles struct {
	AppName    lipgloss.Style
	Subtitle   lipgloss.Style
	Title      lipgloss.Style
	Question   lipgloss.Style
	Hint       lipgloss.Style
	Warning    lipgloss.Style
	Counter    lipgloss.Style
	Favorite   lipgloss.Style
	Help       lipgloss.Style
	HelpKey    lipgloss.Style
	HelpLabel  lipgloss.Style
	Error      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Answered   lipgloss.Style
	Skipped    lipgloss.Style
	ResultCard lipgloss.Style
}

// NewStyles builds the style set for a theme name.
func NewStyles(themeName string) Styles {
	p := PaletteFor(themeName)

	return Styles{
		AppName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(1, 0),
		Question: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Width(64),
		Hint: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Italic(true).
			Width(64),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning).
			Width(64),
		Counter: lipgloss.NewStyle().
			Foreground(p.Muted),
		Favorite: lipgloss.NewStyle().
			Foreground(ColorFavorite),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(1, 0),
		HelpKey: lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true),
		HelpLabel: lipgloss.NewStyle().
			Foreground(ColorSubtle),
		Error: lipgloss.NewStyle().
			Foreground(ColorError),
		Normal: lipgloss.NewStyle().
			Foreground(p.Normal),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Answered: lipgloss.NewStyle().
			Foreground(ColorAnswered),
		Skipped: lipgloss.NewStyle().
			Foreground(ColorSkipped),
		ResultCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 2),
	}
}
