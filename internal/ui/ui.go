package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskpad/internal/app"
	"taskpad/internal/clock"
	"taskpad/internal/config"
	"taskpad/internal/render"
	"taskpad/internal/task"
	"taskpad/internal/theme"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirm
)

type confirmKind int

const (
	confirmDelete confirmKind = iota
	confirmClear
)

type pendingConfirm struct {
	kind confirmKind
	id   string
}

type clockMsg time.Time

// addCharLimit caps new titles only; edit mode lifts it so longer stored
// text is never cut.
const addCharLimit = 256

type Model struct {
	app    *app.App
	cfg    config.Config
	clock  clock.Clock
	theme  theme.Theme
	now    string
	cursor int
	mode   mode
	input  textinput.Model
	status string
	editID string
	// editFrom is the input value as prefilled; submitting it unchanged is a no-op.
	editFrom string
	pending  *pendingConfirm
}

func New(a *app.App, cfg config.Config, clk clock.Clock, now time.Time) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = addCharLimit
	ti.Width = 40

	return Model{
		app:    a,
		cfg:    cfg,
		clock:  clk,
		theme:  theme.Light(),
		now:    clk.Format(now),
		input:  ti,
		mode:   modeList,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}
}

func Run(a *app.App, cfg config.Config, clk clock.Clock) error {
	program := tea.NewProgram(New(a, cfg, clk, time.Now()))
	_, err := program.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(clock.Interval, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockMsg:
		m.now = m.clock.Format(time.Time(msg))
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeEdit:
		return m.updateEditMode(key, msg)
	case modeConfirm:
		return m.updateConfirm(key)
	}
	return m.updateListMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.leaveInput()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		changed, err := m.app.Add(m.input.Value())
		if !changed {
			m.status = "Title cannot be empty"
			cmd := m.input.Focus()
			return m, cmd
		}
		m.setSaved("Added task", err)
		m.cursor = 0
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.leaveInput()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		value := m.input.Value()
		if value == m.editFrom {
			m.leaveInput()
			m.status = "No changes"
			return m, nil
		}
		changed, err := m.app.Commit(answered(true, value).Edit(m.app.State(), m.editID))
		m.leaveInput()
		if !changed {
			m.status = "Edit discarded"
			return m, nil
		}
		m.setSaved("Edited task", err)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		p := m.pending
		m.pending = nil
		m.mode = modeList
		if p == nil {
			m.status = "Nothing to confirm"
			return m, nil
		}
		yes := answered(true, "")
		var changed bool
		var err error
		switch p.kind {
		case confirmDelete:
			changed, err = m.app.Commit(yes.Delete(m.app.State(), p.id))
			m.setSaved("Deleted task", err)
		case confirmClear:
			changed, err = m.app.Commit(yes.ClearCompleted(m.app.State()))
			m.setSaved("Cleared completed tasks", err)
		}
		if !changed {
			m.status = "Nothing changed"
		}
		m.cursor = clampCursor(m.cursor, len(m.app.View().Rows))
		return m, nil
	case "n", "N", m.cfg.Keys.Cancel, "esc":
		m.pending = nil
		m.mode = modeList
		m.status = "Cancelled"
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	rows := m.app.View().Rows
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(rows))
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, len(rows))
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.CharLimit = addCharLimit
		m.input.SetValue("")
		m.input.Placeholder = "What needs to be done?"
		m.status = "Add mode: type a title and press Enter"
		cmd := m.input.Focus()
		return m, cmd
	case m.cfg.Keys.Toggle, "space":
		row, ok := m.selected(rows)
		if !ok {
			return m, nil
		}
		_, err := m.app.Toggle(row.ID)
		m.setSaved("Toggled task", err)
		m.cursor = clampCursor(m.cursor, len(m.app.View().Rows))
	case m.cfg.Keys.Edit:
		row, ok := m.selected(rows)
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		t, ok := m.app.State().Find(row.ID)
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = t.ID
		m.input.CharLimit = 0
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		m.editFrom = m.input.Value()
		m.status = task.EditMessage + " Enter to save, Esc to cancel"
		cmd := m.input.Focus()
		return m, cmd
	case m.cfg.Keys.Delete:
		row, ok := m.selected(rows)
		if !ok {
			return m, nil
		}
		t, ok := m.app.State().Find(row.ID)
		if !ok {
			return m, nil
		}
		m.pending = &pendingConfirm{kind: confirmDelete, id: t.ID}
		m.mode = modeConfirm
		m.status = task.DeleteMessage(t) + " y/n"
	case m.cfg.Keys.ClearCompleted:
		if !m.app.State().HasCompleted() {
			m.status = "No completed tasks"
			return m, nil
		}
		m.pending = &pendingConfirm{kind: confirmClear}
		m.mode = modeConfirm
		m.status = task.ClearCompletedMessage + " y/n"
	case m.cfg.Keys.FilterAll:
		m.setFilter(task.FilterAll)
	case m.cfg.Keys.FilterActive:
		m.setFilter(task.FilterActive)
	case m.cfg.Keys.FilterCompleted:
		m.setFilter(task.FilterCompleted)
	case m.cfg.Keys.Theme:
		m.theme = theme.Toggle(m.theme)
		m.status = "Theme: " + m.theme.Name
	}
	return m, nil
}

func (m *Model) setFilter(f task.Filter) {
	m.app.SetFilter(f)
	m.cursor = 0
	m.status = "Showing " + f.String() + " tasks"
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.editID = ""
	m.editFrom = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) setSaved(msg string, err error) {
	if err != nil {
		m.status = fmt.Sprintf("%s (not saved: %v)", msg, err)
		return
	}
	m.status = msg
}

func (m Model) selected(rows []render.Row) (render.Row, bool) {
	if len(rows) == 0 {
		return render.Row{}, false
	}
	return rows[clampCursor(m.cursor, len(rows))], true
}

// answered builds commands whose dialogs were already answered in the UI.
func answered(yes bool, text string) task.Commands {
	return task.Commands{
		Confirm: func(string) bool { return yes },
		Prompt:  func(string, string) (string, bool) { return text, yes },
	}
}

func (m Model) View() string {
	th := m.theme
	v := m.app.View()
	var b strings.Builder

	b.WriteString(th.Title.Render("taskpad"))
	b.WriteString("  ")
	b.WriteString(th.Clock.Render(m.now))
	b.WriteString("\n\n")
	b.WriteString(m.renderFilters(v.Filter))
	b.WriteString("\n\n")

	if v.Empty {
		b.WriteString(th.Empty.Render(render.EmptyIcon + " " + render.EmptyMessage))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList(v.Rows))
	}

	b.WriteString(th.Separator.Render("---"))
	b.WriteString("\n")
	b.WriteString(th.Summary.Render(v.Summary))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(th.Prompt.Render("Add task: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeEdit:
		b.WriteString("\n")
		b.WriteString(th.Prompt.Render(task.EditMessage + " "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(th.Help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderFilters(active task.Filter) string {
	tabs := make([]string, 0, len(task.Filters()))
	for _, f := range task.Filters() {
		label := strings.ToUpper(f.String()[:1]) + f.String()[1:]
		if f == active {
			tabs = append(tabs, m.theme.FilterOn.Render(label))
		} else {
			tabs = append(tabs, m.theme.Filter.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTaskList(rows []render.Row) string {
	th := m.theme
	var b strings.Builder
	for i, r := range rows {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = th.Cursor.Render(">")
		}

		checkbox := "[ ]"
		text := th.Row.Render(r.Text)
		if r.Completed {
			checkbox = "[x]"
			text = th.Done.Render(r.Text)
		}

		b.WriteString(fmt.Sprintf("%s %s %s  %s", cursor, checkbox, text, th.Meta.Render("Added at "+r.Added)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s edit • %s delete • %s/%s/%s filter • %s clear done • %s theme • %s quit",
		k.Up, k.Down, k.Add, keyLabel(k.Toggle), k.Edit, k.Delete,
		k.FilterAll, k.FilterActive, k.FilterCompleted, k.ClearCompleted, k.Theme, k.Quit)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
