package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette holds the colors of one visual theme.
type Palette struct {
	Primary   Color // titles, app name
	Secondary Color // subtitles, progress
	Accent    Color // favorites, highlights
	Warning   Color // trigger warnings, crisis reminder
	Muted     Color // secondary text
	Normal    Color // default text
}

// The three built-in themes mirror the app's blue/warm/neutral looks.
var palettes = map[string]Palette{
	"blue": {
		Primary:   "99",  // purple
		Secondary: "86",  // cyan
		Accent:    "205", // pink
		Warning:   "214", // orange
		Muted:     "241",
		Normal:    "250",
	},
	"warm": {
		Primary:   "211", // rose
		Secondary: "216", // peach
		Accent:    "204", // coral
		Warning:   "208", // amber
		Muted:     "243",
		Normal:    "252",
	},
	"neutral": {
		Primary:   "145", // warm gray
		Secondary: "250",
		Accent:    "180", // sand
		Warning:   "179", // gold
		Muted:     "240",
		Normal:    "250",
	},
}

// UI semantic colors shared across themes
const (
	ColorError     Color = "196" // bright red
	ColorHighlight Color = "255" // white - emphasis
	ColorSubtle    Color = "245" // light gray - labels
	ColorFavorite  Color = "161" // red heart
	ColorAnswered  Color = "2"   // green
	ColorSkipped   Color = "3"   // yellow
)

// PaletteFor returns the palette for a theme name, falling back to
// blue for unknown names.
func PaletteFor(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["blue"]
}
