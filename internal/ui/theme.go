package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Assign-Alert theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconEpic    = "🎯"
	IconSprint  = "🏃"
	IconTask    = "📝"
	IconBell    = "🔔"
	IconDone    = "✅"
	IconChart   = "📈"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconComment = "💬"
	IconMention = "📣"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelActive = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cPrimary).Padding(0, 1)
	Selected    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	switch strings.TrimSpace(status) {
	case "done", "completed":
		return Good.Render(status)
	case "inProgress", "in_progress", "active":
		return H2.Render(status)
	case "review":
		return Warn.Render(status)
	case "todo", "planned":
		return Muted.Render(status)
	default:
		return Muted.Render(status)
	}
}

func PriorityText(priority string) string {
	switch priority {
	case "High":
		return Bad.Render(priority)
	case "Medium":
		return Warn.Render(priority)
	case "Low":
		return Muted.Render(priority)
	default:
		return Muted.Render(priority)
	}
}

// ProgressBar renders a fixed-width bar for a 0-100 percentage.
func ProgressBar(progress, width int) string {
	if width < 4 {
		width = 4
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := progress * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, progress)
}
