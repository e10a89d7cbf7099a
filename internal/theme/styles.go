package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Agent state styles
var (
	AbsentStyle = lipgloss.NewStyle().
			Foreground(ColorAbsent)

	CompletedStyle = lipgloss.NewStyle().
			Foreground(ColorCompleted)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorRunning)

	StoppedStyle = lipgloss.NewStyle().
			Foreground(ColorStopped)
)

// Git stat styles
var (
	AheadStyle = lipgloss.NewStyle().
			Foreground(ColorAhead)

	BehindStyle = lipgloss.NewStyle().
			Foreground(ColorBehind)

	DirtyStyle = lipgloss.NewStyle().
			Foreground(ColorDirty)
)

// Completion flash style
var FlashStyle = lipgloss.NewStyle().
	Foreground(ColorSecondary).
	Bold(true)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
