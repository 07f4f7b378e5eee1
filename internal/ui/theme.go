// Package ui renders petgen output for the terminal
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Icons
const (
	IconPet  = "🐾"
	IconWarn = "⚠️"
	IconDone = "✅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
)

// LabelValue renders "label: value" with a styled label
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// NoticeText renders a designer warning
func NoticeText(msg string) string {
	return Warn.Render(IconWarn + " " + msg)
}
