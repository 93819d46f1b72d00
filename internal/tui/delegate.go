package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskify/internal/model"
	"github.com/idilsaglam/taskify/internal/ui"
)

// row adapts a task and its presenter state to bubbles/list.Item.
type row struct {
	task    model.Task
	editing bool
	editor  string // inline editor view while editing
}

func (r row) FilterValue() string { return r.task.Title }

// Custom delegate to control how rows render (single line)
type rowDelegate struct {
	theme ui.Theme
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := d.theme

	box := t.Muted.Render(t.BoxUnchecked)
	text := r.task.Title
	switch {
	case r.editing:
		text = r.editor
	case r.task.Completed:
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
