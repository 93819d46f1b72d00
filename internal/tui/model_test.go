package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskify/internal/draft"
	"github.com/idilsaglam/taskify/internal/model"
	"github.com/idilsaglam/taskify/internal/tasklist"
	"github.com/idilsaglam/taskify/internal/ui"
)

func newModel(t *testing.T) Model {
	t.Helper()
	theme, err := ui.Lookup("mono")
	if err != nil {
		t.Fatal(err)
	}
	return New(tasklist.New(), draft.New(), Options{Theme: theme, Placeholder: "Enter task"})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m = send(m, space)
			continue
		}
		m = send(m, keyRunes(string(r)))
	}
	return m
}

func addTask(m Model, title string) Model {
	if !m.InputFocused() {
		m = send(m, keyRunes("a"))
	}
	return send(typeText(m, title), enter)
}

func tasks(m Model) []model.Task { return m.Tasks().Tasks() }

func TestSubmitAddsTaskAndBlursInput(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	if !m.InputFocused() {
		t.Fatal("input should start focused")
	}
	m = addTask(m, "Buy milk")

	got := tasks(m)
	if len(got) != 1 || got[0].Title != "Buy milk" || got[0].Completed {
		t.Fatalf("tasks = %+v", got)
	}
	if m.InputFocused() {
		t.Error("input still focused after submit")
	}
	if m.draft.Value() != "" || m.input.Value() != "" {
		t.Errorf("draft not cleared: %q / %q", m.draft.Value(), m.input.Value())
	}
	if id, ok := m.Selected(); !ok || id != got[0].ID {
		t.Error("new task not selected")
	}
}

func TestBlankSubmitKeepsDraftAndFocus(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = send(typeText(m, "   "), enter)

	if n := m.Tasks().Len(); n != 0 {
		t.Fatalf("len = %d, want 0", n)
	}
	if !m.InputFocused() {
		t.Error("focus moved after rejected submit")
	}
	if m.draft.Value() != "   " {
		t.Errorf("draft = %q, want kept", m.draft.Value())
	}
}

func TestQKeyTypesIntoInput(t *testing.T) {
	t.Parallel()

	m := send(newModel(t), keyRunes("q"))
	if !m.InputFocused() {
		t.Fatal("input lost focus")
	}
	if m.draft.Value() != "q" {
		t.Errorf("draft = %q, want q", m.draft.Value())
	}
}

func TestToggleAndDeleteSelected(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = addTask(m, "A")
	m = addTask(m, "B")

	// B is selected after being added
	m = send(m, space)
	got := tasks(m)
	if got[0].Completed || !got[1].Completed {
		t.Fatalf("toggle hit the wrong task: %+v", got)
	}

	m = send(m, keyRunes("c"))
	if tasks(m)[1].Completed {
		t.Fatal("second toggle did not restore pending")
	}

	m = send(m, keyRunes("d"))
	got = tasks(m)
	if len(got) != 1 || got[0].Title != "A" {
		t.Fatalf("after delete = %+v", got)
	}
	if id, ok := m.Selected(); !ok || id != got[0].ID {
		t.Error("selection not moved to remaining task")
	}

	m = send(m, keyRunes("x"))
	if m.Tasks().Len() != 0 {
		t.Fatalf("len = %d, want 0", m.Tasks().Len())
	}
	if _, ok := m.Selected(); ok {
		t.Error("selection on an empty list")
	}
	// nothing left to act on
	m = send(m, space, keyRunes("d"), keyRunes("e"))
	if m.Tasks().Len() != 0 || m.Editing() {
		t.Error("actions on an empty list had an effect")
	}
}

func TestInlineEditCommitAndCancel(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = addTask(m, "Buy milk")

	m = send(m, keyRunes("e"))
	if !m.Editing() {
		t.Fatal("e did not enter editing")
	}
	// keys that are bindings elsewhere are text while editing
	m = typeText(m, " qdx")
	if !m.Editing() || m.Tasks().Len() != 1 {
		t.Fatal("editing keys leaked into list actions")
	}
	m = send(m, enter)
	if m.Editing() {
		t.Fatal("enter did not leave editing")
	}
	if got := tasks(m)[0].Title; got != "Buy milk qdx" {
		t.Errorf("title = %q", got)
	}

	m = send(m, enter) // enter also starts editing
	if !m.Editing() {
		t.Fatal("enter did not enter editing")
	}
	m = send(typeText(m, "!!"), esc)
	if m.Editing() {
		t.Fatal("esc did not cancel editing")
	}
	if got := tasks(m)[0].Title; got != "Buy milk qdx" {
		t.Errorf("cancelled edit applied: %q", got)
	}
}

func TestEditDisabledForCompletedTask(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = addTask(m, "Buy milk")
	m = send(m, space)

	if m.keys.Edit.Enabled() {
		t.Error("edit binding enabled on a completed task")
	}
	m = send(m, keyRunes("e"))
	if m.Editing() {
		t.Fatal("completed task entered editing")
	}
	if got := tasks(m)[0]; got.Title != "Buy milk" || !got.Completed {
		t.Errorf("task = %+v", got)
	}
}

func TestScenarioFromEmptyToEmpty(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = addTask(m, "Buy milk")
	m = send(m, keyRunes("a"), enter) // empty submit
	if m.Tasks().Len() != 1 {
		t.Fatalf("len = %d after empty submit", m.Tasks().Len())
	}

	m = send(m, esc, space) // back to the list, complete
	if !tasks(m)[0].Completed {
		t.Fatal("not completed")
	}
	m = send(m, keyRunes("e"))
	if m.Editing() {
		t.Fatal("edit allowed on completed task")
	}
	m = send(m, keyRunes("d"))
	if m.Tasks().Len() != 0 {
		t.Fatalf("len = %d, want 0", m.Tasks().Len())
	}
}

func TestNavigationMovesSelection(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = addTask(m, "A")
	m = addTask(m, "B")
	m = send(m, keyRunes("k"))
	if id, _ := m.Selected(); id != tasks(m)[0].ID {
		t.Fatal("k did not move up")
	}
	m = send(m, down)
	if id, _ := m.Selected(); id != tasks(m)[1].ID {
		t.Fatal("down did not move down")
	}
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}

	m = send(m, esc)
	_, cmd = m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit from the list")
	}
}

func TestViewShowsTasksAndEmptyState(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 30})
	view := m.View()
	for _, want := range []string{"Taskify", "Add task", "No tasks"} {
		if !strings.Contains(view, want) {
			t.Errorf("empty view missing %q:\n%s", want, view)
		}
	}

	m = addTask(m, "Buy milk")
	m = addTask(m, "Walk dog")
	m = send(m, space)
	view = m.View()
	for _, want := range []string{"[ ] Buy milk", "[x] Walk dog", "Total 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "No tasks") {
		t.Error("empty state shown with tasks present")
	}
}
