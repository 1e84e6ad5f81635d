package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")
	Heart      = lipgloss.Color("#FF5370")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Selected list row
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// The quote card
	QuoteCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Foreground).
			Padding(1, 3).
			Margin(1, 1)

	QuoteTextStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	AuthorStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true).
			MarginTop(1)

	// Favourite indicator
	HeartActiveStyle = lipgloss.NewStyle().
				Foreground(Heart).
				Bold(true)

	HeartInactiveStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// Status styles
	StatusInfo = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Section header
	SectionStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Underline(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)
