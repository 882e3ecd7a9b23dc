package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("11")
	textColor   = lipgloss.Color("15")
	footerColor = lipgloss.Color("14")
	borderColor = lipgloss.Color("7")

	pageStyle      = lipgloss.NewStyle().Margin(marginVertical, marginHorizontal)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, true, true).BorderForeground(borderColor).Foreground(textColor)
	boxTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	hotkeyStyle    = lipgloss.NewStyle().Foreground(accentColor).Underline(true)
	tabRestStyle   = lipgloss.NewStyle().Foreground(textColor)
	activeTabStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	dividerStyle   = lipgloss.NewStyle().Foreground(borderColor)
	homeStyle      = lipgloss.NewStyle().Foreground(textColor).Align(lipgloss.Center)
	footerStyle    = lipgloss.NewStyle().Foreground(footerColor).Align(lipgloss.Center)
	listItemStyle  = lipgloss.NewStyle().Foreground(textColor)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accentColor).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

const selectedPrefix = ">> "
