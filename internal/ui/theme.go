package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"neurofocus/internal/engine"
)

// NeuroFocus theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBrain   = "🧠"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFire    = "🔥"
	IconLoop    = "🔁"
	IconSun     = "📅"
	IconPin     = "📌"
	IconTimer   = "⏱️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconRobot   = "🤖"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// heatCells index by engine.HeatLevel: idle gray through hot gold.
var heatCells = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	lipgloss.NewStyle().Foreground(cGold),
}

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

// TierText colors a reward tier name: gold for jackpot, blue for critical.
func TierText(tier engine.RewardTier) string {
	switch tier {
	case engine.TierJackpot:
		return Gold.Render("JACKPOT")
	case engine.TierCritical:
		return H2.Render("CRITICAL")
	default:
		return Muted.Render("normal")
	}
}

func TypeIcon(taskType engine.TaskType) string {
	switch taskType {
	case engine.TaskHabit:
		return IconLoop
	case engine.TaskDaily:
		return IconSun
	default:
		return IconPin
	}
}

// HeatCell renders one activity-heatmap square for a completion count.
func HeatCell(count int) string {
	level := engine.HeatLevel(count)
	if level < 0 || level >= len(heatCells) {
		level = 0
	}
	return heatCells[level].Render("■")
}

// XPBar renders level progress as [####----] with the raw numbers.
func XPBar(current, threshold, width int) string {
	if threshold <= 0 {
		threshold = 1
	}
	if width < 4 {
		width = 4
	}
	if current < 0 {
		current = 0
	}
	if current > threshold {
		current = threshold
	}
	filled := current * width / threshold
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
	return fmt.Sprintf("%s %d/%d", bar, current, threshold)
}
