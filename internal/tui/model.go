// Package tui is the interactive task list: a draft input on top, the
// tasks below, one row editable in place at a time.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/taskify/internal/draft"
	"github.com/idilsaglam/taskify/internal/presenter"
	"github.com/idilsaglam/taskify/internal/tasklist"
	"github.com/idilsaglam/taskify/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// panel border + header + progress + gap + input box + help
	chromeHeight = 10
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Options tune the look of the program.
type Options struct {
	Theme       ui.Theme
	Title       string
	Placeholder string
	CharLimit   int
	Logger      *slog.Logger
}

// Model is the Bubble Tea model. The task list and the draft are owned by
// the caller and shared with every presenter.
type Model struct {
	opts   Options
	logger *slog.Logger

	tasks      *tasklist.Manager
	draft      *draft.Controller
	presenters map[uuid.UUID]*presenter.Presenter

	focus focus
	input textinput.Model
	list  list.Model
	help  help.Model
	keys  keyMap

	width, height int
}

// New builds a Model over tasks and d with the draft input focused.
func New(tasks *tasklist.Manager, d *draft.Controller, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Taskify"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	if opts.CharLimit > 0 {
		ti.CharLimit = opts.CharLimit
	}
	ti.SetValue(d.Value())
	ti.Focus()

	l := list.New(nil, rowDelegate{theme: opts.Theme}, defaultWidth, defaultHeight-chromeHeight)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.PaginationStyle = opts.Theme.Help
	l.Styles.NoItems = opts.Theme.Muted
	// quitting is handled here, not by the list
	l.DisableQuitKeybindings()

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Help
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.FullKey = opts.Theme.Help
	h.Styles.FullDesc = opts.Theme.Help

	m := Model{
		opts:       opts,
		logger:     logger,
		tasks:      tasks,
		draft:      d,
		presenters: make(map[uuid.UUID]*presenter.Presenter),
		focus:      focusInput,
		input:      ti,
		list:       l,
		help:       h,
		keys:       defaultKeyMap(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if p := m.editor(); p != nil {
			return m.updateEditing(p, msg)
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	// cursor blink and friends
	var cmds []tea.Cmd
	if p := m.editor(); p != nil {
		cmds = append(cmds, p.Update(msg))
		m.sync()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		task, ok := m.draft.Submit(m.tasks)
		if !ok {
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.focus = focusList
		m.sync()
		m.list.Select(len(m.list.Items()) - 1)
		m.sync()
		m.logger.Debug("task submitted", "id", task.ID)
		return m, nil

	case key.Matches(msg, m.keys.LeaveInput):
		m.input.Blur()
		m.focus = focusList
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.draft.SetDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusInput):
		m.focus = focusInput
		cmd := m.input.Focus()
		m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if p := m.selected(); p != nil && p.Edit() {
			m.sync()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if p := m.selected(); p != nil {
			p.ToggleCompleted()
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if p := m.selected(); p != nil {
			idx := m.list.Index()
			p.Delete()
			m.sync()
			if n := len(m.list.Items()); n > 0 {
				m.list.Select(min(idx, n-1))
				m.sync()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.sync()
	return m, cmd
}

func (m Model) updateEditing(p *presenter.Presenter, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		p.Edit()
	case key.Matches(msg, m.keys.Cancel):
		p.Cancel()
	default:
		cmd := p.Update(msg)
		m.sync()
		return m, cmd
	}
	m.sync()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.opts.Theme
	done, pending := m.tasks.Stats()
	total := done + pending

	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(m.opts.Title),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), total,
	)
	progress := t.Muted.Render(ui.ProgressBar(done, total, 28))

	label := "Add task"
	if m.focus != focusInput {
		label = t.Muted.Render(label)
	}
	inputBox := t.Box().Width(max(m.width-6, 10)).Render(label + "\n" + m.input.View())

	return t.Panel(
		header,
		progress,
		"",
		inputBox,
		m.list.View(),
		m.help.View(m.helpKeys()),
	)
}

// Tasks exposes the task list the model renders.
func (m Model) Tasks() *tasklist.Manager { return m.tasks }

// InputFocused reports whether key presses go to the draft input.
func (m Model) InputFocused() bool { return m.focus == focusInput }

// Editing reports whether a row is being edited.
func (m Model) Editing() bool { return m.editor() != nil }

// Selected returns the id of the highlighted task.
func (m Model) Selected() (uuid.UUID, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return uuid.Nil, false
	}
	return r.task.ID, true
}

// sync rebuilds the list rows from the current snapshot, creating
// presenters for new tasks and dropping those whose task is gone.
func (m *Model) sync() {
	tasks := m.tasks.Tasks()
	items := make([]list.Item, 0, len(tasks))
	seen := make(map[uuid.UUID]struct{}, len(tasks))
	for _, t := range tasks {
		p, ok := m.presenters[t.ID]
		if !ok {
			p = presenter.New(t.ID, m.tasks, m.opts.CharLimit)
			m.presenters[t.ID] = p
		}
		seen[t.ID] = struct{}{}
		items = append(items, row{task: t, editing: p.Editing(), editor: m.opts.Theme.Editor.Render(p.View())})
	}
	for id := range m.presenters {
		if _, ok := seen[id]; !ok {
			delete(m.presenters, id)
		}
	}
	m.list.SetItems(items)

	sel := m.selected()
	m.keys.Edit.SetEnabled(sel != nil && sel.CanEdit())
	m.keys.Toggle.SetEnabled(sel != nil)
	m.keys.Delete.SetEnabled(sel != nil)
}

func (m *Model) resize() {
	extra := 0
	if m.help.ShowAll {
		extra = 3
	}
	m.list.SetSize(max(m.width-4, 10), max(m.height-chromeHeight-extra, 3))
	m.input.Width = max(m.width-12, 10)
	m.help.Width = m.width - 4
}

func (m Model) selected() *presenter.Presenter {
	id, ok := m.Selected()
	if !ok {
		return nil
	}
	return m.presenters[id]
}

func (m Model) editor() *presenter.Presenter {
	for _, p := range m.presenters {
		if p.Editing() {
			return p
		}
	}
	return nil
}

func (m Model) helpKeys() bindings {
	k := m.keys
	switch {
	case m.editor() != nil:
		return bindings{
			short: []key.Binding{k.Commit, k.Cancel},
			full:  [][]key.Binding{{k.Commit, k.Cancel, k.ForceQuit}},
		}
	case m.focus == focusInput:
		return bindings{
			short: []key.Binding{k.Submit, k.LeaveInput, k.ForceQuit},
			full:  [][]key.Binding{{k.Submit, k.LeaveInput, k.ForceQuit}},
		}
	}
	return bindings{
		short: []key.Binding{k.Edit, k.Toggle, k.Delete, k.FocusInput, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down},
			{k.Edit, k.Toggle, k.Delete},
			{k.FocusInput, k.Help, k.Quit},
		},
	}
}
