// Package presenter implements the per-task view state: a task is either
// being viewed or having its title edited in place.
package presenter

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/taskify/internal/model"
)

// Mode is the presentation state of a single task.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	}
	return "unknown"
}

// Store is the subset of the task list a presenter mutates through.
type Store interface {
	Get(id uuid.UUID) (model.Task, bool)
	Edit(id uuid.UUID, title string)
	ToggleCompleted(id uuid.UUID)
	Delete(id uuid.UUID)
}

// Presenter drives one task row. It owns the editable text while editing
// and hands every mutation back to the Store.
type Presenter struct {
	id    uuid.UUID
	store Store
	mode  Mode
	input textinput.Model
}

// New returns a presenter in Viewing mode.
func New(id uuid.UUID, store Store, charLimit int) *Presenter {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Edit task..."
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return &Presenter{id: id, store: store, input: ti}
}

func (p *Presenter) ID() uuid.UUID { return p.id }
func (p *Presenter) Mode() Mode    { return p.mode }
func (p *Presenter) Editing() bool { return p.mode == Editing }

// Task returns the record this presenter shows.
func (p *Presenter) Task() (model.Task, bool) { return p.store.Get(p.id) }

// CanEdit reports whether the edit action is available. Completed or
// removed tasks cannot enter Editing.
func (p *Presenter) CanEdit() bool {
	if p.mode == Editing {
		return true
	}
	t, ok := p.store.Get(p.id)
	return ok && !t.Completed
}

// Edit is the edit action. From Viewing it enters Editing, seeded with the
// current title and focused. From Editing it writes the edited text back to
// the store and returns to Viewing. It returns false when the action is
// unavailable.
func (p *Presenter) Edit() bool {
	if p.mode == Editing {
		p.store.Edit(p.id, p.input.Value())
		p.exit()
		return true
	}
	if !p.CanEdit() {
		return false
	}
	t, _ := p.store.Get(p.id)
	p.mode = Editing
	p.input.SetValue(t.Title)
	p.input.CursorEnd()
	p.input.Focus()
	return true
}

// Cancel leaves Editing without writing anything back.
func (p *Presenter) Cancel() {
	if p.mode == Editing {
		p.exit()
	}
}

// ToggleCompleted flips the task's completed flag. Uncommitted edits are
// dropped first.
func (p *Presenter) ToggleCompleted() {
	p.Cancel()
	p.store.ToggleCompleted(p.id)
}

// Delete removes the task. Uncommitted edits are dropped first.
func (p *Presenter) Delete() {
	p.Cancel()
	p.store.Delete(p.id)
}

// SetText replaces the editable text. It has no effect while Viewing.
func (p *Presenter) SetText(s string) {
	if p.mode == Editing {
		p.input.SetValue(s)
	}
}

// Text returns what the row currently displays: the editable text while
// Editing, the stored title otherwise.
func (p *Presenter) Text() string {
	if p.mode == Editing {
		return p.input.Value()
	}
	t, _ := p.store.Get(p.id)
	return t.Title
}

// Update feeds input events to the editor while Editing.
func (p *Presenter) Update(msg tea.Msg) tea.Cmd {
	if p.mode != Editing {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the inline editor. It is empty while Viewing.
func (p *Presenter) View() string {
	if p.mode != Editing {
		return ""
	}
	return p.input.View()
}

func (p *Presenter) exit() {
	p.mode = Viewing
	p.input.SetValue("")
	p.input.Blur()
}
