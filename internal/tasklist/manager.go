// Package tasklist owns the ordered collection of tasks.
//
// Every mutation replaces the collection with a new snapshot derived from
// the previous one; records are never updated in place. Lookups are by id,
// and an id that matches nothing leaves the snapshot unchanged.
package tasklist

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/idilsaglam/taskify/internal/model"
)

// Manager is the sole mutator of a task collection.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Manager struct {
	tasks    []model.Task
	logger   *slog.Logger
	onChange func([]model.Task)
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used to trace snapshot changes.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithOnChange registers fn to be called with every new snapshot.
func WithOnChange(fn func([]model.Task)) Option {
	return func(m *Manager) { m.onChange = fn }
}

// WithTasks seeds the collection.
func WithTasks(tasks []model.Task) Option {
	return func(m *Manager) { m.tasks = slices.Clone(tasks) }
}

// New returns an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		tasks:  []model.Task{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends t to the end of the collection.
func (m *Manager) Add(t model.Task) {
	m.replace("add", t.ID, Append(m.tasks, t))
}

// Edit sets the title of the task with the given id.
func (m *Manager) Edit(id uuid.UUID, title string) {
	m.replace("edit", id, Rename(m.tasks, id, title))
}

// ToggleCompleted flips the completed flag of the task with the given id.
func (m *Manager) ToggleCompleted(id uuid.UUID) {
	m.replace("toggle", id, Toggle(m.tasks, id))
}

// Delete removes the task with the given id.
func (m *Manager) Delete(id uuid.UUID) {
	m.replace("delete", id, Remove(m.tasks, id))
}

// Tasks returns the current snapshot. The caller owns the returned slice.
func (m *Manager) Tasks() []model.Task {
	return slices.Clone(m.tasks)
}

// Get returns the task with the given id.
func (m *Manager) Get(id uuid.UUID) (model.Task, bool) {
	i := slices.IndexFunc(m.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, false
	}
	return m.tasks[i], true
}

// Len reports the number of tasks.
func (m *Manager) Len() int { return len(m.tasks) }

// Stats counts completed and pending tasks.
func (m *Manager) Stats() (done, pending int) {
	for _, t := range m.tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (m *Manager) replace(op string, id uuid.UUID, next []model.Task) {
	m.tasks = next
	m.logger.Debug("task list changed",
		"op", op,
		"id", id,
		"count", len(next),
		"tasks", next,
	)
	if m.onChange != nil {
		m.onChange(slices.Clone(next))
	}
}
