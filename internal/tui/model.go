package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"neurofocus/internal/engine"
	"neurofocus/internal/storage"
	"neurofocus/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	sess *engine.Session

	width  int
	height int

	expanded map[string]bool
	selected int

	lastLog string
	err     error
}

type toggledMsg struct {
	res *engine.ToggleResult
	err error
}

type stepToggledMsg struct {
	sub *storage.Subtask
	err error
}

func newBoardModel(ctx context.Context, sess *engine.Session) boardModel {
	return boardModel{
		ctx:      ctx,
		sess:     sess,
		expanded: map[string]bool{},
		lastLog:  "Ready.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.sess.Toggle(m.ctx, id)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) toggleStepCmd(taskID string, position int) tea.Cmd {
	return func() tea.Msg {
		sub, err := m.sess.ToggleSubtask(m.ctx, taskID, position)
		return stepToggledMsg{sub: sub, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = toggleToast(msg.res)
		return m, nil
	case stepToggledMsg:
		if msg.err != nil {
			m.lastLog = "Step toggle failed: " + msg.err.Error()
			return m, nil
		}
		state := "reopened"
		if msg.sub.IsCompleted {
			state = "done"
		}
		m.lastLog = fmt.Sprintf("Step %q %s.", msg.sub.Title, state)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.isStep {
				return m, m.toggleStepCmd(row.taskID, row.position)
			}
			if row.hasSteps {
				m.expanded[row.taskID] = !m.expanded[row.taskID]
			}
			return m, nil
		case "c", " ":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.isStep {
				return m, m.toggleStepCmd(row.taskID, row.position)
			}
			return m, m.toggleCmd(row.taskID)
		}
	}
	return m, nil
}

// taskRow is one visible line: a task, or one of its expanded steps.
type taskRow struct {
	taskID   string
	isStep   bool
	position int

	title    string
	done     bool
	taskType engine.TaskType
	points   int
	hasSteps bool
	expanded bool
}

func (m boardModel) rows() []taskRow {
	var out []taskRow
	for _, t := range m.sess.Tasks() {
		out = append(out, taskRow{
			taskID:   t.ID,
			title:    t.Title,
			done:     t.IsCompleted,
			taskType: engine.TaskType(t.Type),
			points:   t.Points,
			hasSteps: len(t.Subtasks) > 0,
			expanded: m.expanded[t.ID],
		})
		if !m.expanded[t.ID] {
			continue
		}
		for i, sub := range t.Subtasks {
			out = append(out, taskRow{
				taskID:   t.ID,
				isStep:   true,
				position: i + 1,
				title:    sub.Title,
				done:     sub.IsCompleted,
			})
		}
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderHeatmap())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	p := m.sess.Profile()
	name := p.Username
	if name == "" {
		name = "Member"
	}
	bar := ui.XPBar(p.CurrentXP, p.XPToNext, 24)
	return fmt.Sprintf("%s %s | Level %d %s | %s %d-day streak",
		ui.Heading(ui.IconBrain, "NeuroFocus"), name, p.Level, bar, ui.IconFire, p.StreakDays)
}

func (m boardModel) renderHeatmap() string {
	window := m.sess.ActivityWindow()
	if len(window) == 0 {
		return ui.Dim.Render("No activity yet.")
	}
	cells := make([]string, 0, len(window))
	for _, e := range window {
		cells = append(cells, ui.HeatCell(e.Count))
	}
	return "Activity  " + strings.Join(cells, "")
}

func (m boardModel) renderTasks() string {
	rows := m.rows()
	if len(rows) == 0 {
		return ui.Dim.Render("(no tasks — add one with `nf add`)")
	}

	var out []string
	for i, row := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}

		check := "[ ]"
		if row.done {
			check = "[x]"
		}

		if row.isStep {
			out = append(out, fmt.Sprintf("%s    %s %s", cursor, check, ui.Dim.Render(row.title)))
			continue
		}

		fold := "  "
		if row.hasSteps {
			fold = "▸ "
			if row.expanded {
				fold = "▾ "
			}
		}
		title := row.title
		if row.done {
			title = ui.Muted.Render(title)
		}
		line := fmt.Sprintf("%s%s%s %s %s", cursor, fold, check, ui.TypeIcon(row.taskType), title)
		if row.done {
			line += ui.Gold.Render(fmt.Sprintf("  +%d XP", row.points))
		}
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := ui.Dim.Render("↑/↓ move · space/c toggle · enter expand/step · q quit")
	return "\n" + m.lastLog + "\n" + keys
}

func toggleToast(res *engine.ToggleResult) string {
	if !res.Completed {
		return fmt.Sprintf("Unchecked: -%d XP.", res.Points)
	}
	toast := fmt.Sprintf("%s +%d XP (%s)", ui.IconDone, res.Points, ui.TierText(res.Tier))
	if res.Message != "" {
		toast += "  " + res.Message
	}
	if res.LevelUp {
		toast += "  " + ui.BadgeLevelUp + fmt.Sprintf(" → level %d", res.LevelAfter)
	}
	return toast
}
