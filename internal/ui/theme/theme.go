package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Indigo and teal echo a classroom whiteboard.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Word = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)
)

// Sentence card states, one per display status.
var (
	CardDefault = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Foreground(Text).
			Padding(0, 2)

	CardFocused = CardDefault.
			BorderForeground(Primary)

	CardSelected = CardDefault.
			BorderForeground(Accent).
			Foreground(Accent)

	CardCorrect = CardDefault.
			BorderForeground(Success).
			Foreground(Success).
			Bold(true)

	CardIncorrect = CardDefault.
			BorderForeground(Error).
			Foreground(Error)

	CardDisabled = CardDefault.
			Foreground(TextDim)
)

// Feedback banners
var (
	FeedbackSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	FeedbackRetry = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	FeedbackReveal = lipgloss.NewStyle().
			Foreground(Error)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Buttons
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)
