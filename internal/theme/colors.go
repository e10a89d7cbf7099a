package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Agent state colors
const (
	ColorAbsent    Color = "8" // Gray - session gone
	ColorCompleted Color = "6" // Cyan - agent finished
	ColorFailed    Color = "1" // Red - session died mid-run
	ColorRunning   Color = "2" // Green - agent working
	ColorStopped   Color = "3" // Yellow - agent sleeping
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Git colors
const (
	ColorAhead  Color = "2" // Green
	ColorBehind Color = "1" // Red
	ColorDirty  Color = "3" // Yellow
)

// ColorSpinner is the poll spinner accent
const ColorSpinner Color = "205" // Pink
