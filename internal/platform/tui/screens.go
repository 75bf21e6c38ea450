package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pecktopia/internal/core"
	"github.com/vovakirdan/pecktopia/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

const logo = `
 ___          _   _            _
| _ \___ __ _| |_| |_ ___ _ __(_)__ _
|  _/ -_) _| / /  _/ _ \ '_ \ / _' |
|_| \___\__|_\_\\__\___/ .__/_\__,_|
                       |_|`

// renderTitle draws the start screen.
func renderTitle(width, height int, c core.Character, message string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("A chicken platformer in three levels"))
	b.WriteString("\n\n")
	b.WriteString(normalStyle.Render(fmt.Sprintf("Your chicken: %s, %s pattern",
		core.ColorSchemeName(c.ColorScheme), core.PatternName(c.Pattern))))
	b.WriteString("\n\n")
	b.WriteString(selectedStyle.Render(" Press enter to design your chicken "))
	if message != "" {
		b.WriteString("\n\n")
		b.WriteString(messageStyle.Render(message))
	}
	return lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, b.String())
}

// designRow is one editable attribute in the chicken designer.
type designRow struct {
	label string
	count int
	get   func(core.Character) int
	set   func(*core.Character, int)
	name  func(int) string
}

var designRows = []designRow{
	{
		label: "Color Scheme", count: core.OptionCount,
		get:  func(c core.Character) int { return c.ColorScheme },
		set:  func(c *core.Character, v int) { c.ColorScheme = v },
		name: core.ColorSchemeName,
	},
	{
		label: "Pattern", count: core.OptionCount,
		get:  func(c core.Character) int { return c.Pattern },
		set:  func(c *core.Character, v int) { c.Pattern = v },
		name: core.PatternName,
	},
	{
		label: "Temperament", count: core.MaxTemperament + 1,
		get:  func(c core.Character) int { return c.Temperament },
		set:  func(c *core.Character, v int) { c.Temperament = v },
		name: func(v int) string { return fmt.Sprintf("%d", v) },
	},
	{
		label: "Accessory", count: core.OptionCount,
		get:  func(c core.Character) int { return c.Accessory },
		set:  func(c *core.Character, v int) { c.Accessory = v },
		name: core.AccessoryName,
	},
	{
		label: "Wing Style", count: core.OptionCount,
		get:  func(c core.Character) int { return c.WingStyle },
		set:  func(c *core.Character, v int) { c.WingStyle = v },
		name: core.WingStyleName,
	},
	{
		label: "Eye Type", count: core.OptionCount,
		get:  func(c core.Character) int { return c.EyeType },
		set:  func(c *core.Character, v int) { c.EyeType = v },
		name: core.EyeTypeName,
	},
}

// cycleOption returns c with row's attribute moved by delta, wrapping.
func cycleOption(c core.Character, row, delta int) core.Character {
	r := designRows[row]
	v := (r.get(c) + delta + r.count) % r.count
	r.set(&c, v)
	return c
}

// previewSize is the chicken preview canvas in cells.
const (
	previewW = 20
	previewH = 9
)

// renderPreview draws the designer's chicken, bobbing with phase.
func renderPreview(c core.Character, phase float64) string {
	s := core.NewScreen(previewW, previewH)
	bob := int(math.Round(math.Sin(phase)))
	body := core.NewRect(6, 3+bob, 8, 4)
	drawChicken(s, body, 0, c, game.FacingRight, false, phase)
	s.DrawHLine(0, previewH-1, previewW, '▒', core.ColorYellow)
	return RenderScreen(s)
}

// renderDesigner draws the chicken designer.
func renderDesigner(width, height int, c core.Character, cursor int, bar progress.Model, phase float64) string {
	var rows strings.Builder
	rows.WriteString(titleStyle.Render("Design Your Chicken"))
	rows.WriteString("\n\n")

	for i, r := range designRows {
		value := r.name(r.get(c))
		line := fmt.Sprintf("%-13s < %-13s >", r.label, value)
		if i == cursor {
			rows.WriteString(selectedStyle.Render(line))
		} else {
			rows.WriteString(normalStyle.Render(line))
		}
		rows.WriteString("\n")
		if r.label == "Temperament" {
			rows.WriteString("              ")
			rows.WriteString(bar.ViewAs(float64(c.Temperament) / core.MaxTemperament))
			rows.WriteString("\n")
		}
	}
	rows.WriteString("\n")
	rows.WriteString(subtitleStyle.Render(c.Mood()))

	preview := panelStyle.Render(renderPreview(c, phase))
	content := lipgloss.JoinHorizontal(lipgloss.Center, rows.String(), "   ", preview)
	return lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, content)
}

// renderLevelComplete draws the screen between levels.
func renderLevelComplete(width, height int, levelID int, completeMessage string, done game.Completion) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d Complete!", levelID)))
	b.WriteString("\n\n")
	if completeMessage != "" {
		b.WriteString(normalStyle.Render(completeMessage))
		b.WriteString("\n")
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Finished in %s (%d ticks)", formatDuration(done.Elapsed), done.Tick)))
	b.WriteString("\n\n")
	b.WriteString(selectedStyle.Render(" Press enter to continue "))
	return lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}

// renderGameComplete draws the final celebration.
func renderGameComplete(width, height int, collected []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Congratulations! You've completed Pecktopia!"))
	b.WriteString("\n\n")
	if len(collected) > 0 {
		b.WriteString(normalStyle.Render("Treasures found:"))
		b.WriteString("\n")
		for _, name := range collected {
			r, _ := itemGlyph(name)
			b.WriteString(normalStyle.Render(fmt.Sprintf("  %c %s", r, name)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(selectedStyle.Render(" Press enter to play again "))
	return lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}
