// Package draft holds the text of a task that has not been submitted yet.
package draft

import (
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/taskify/internal/model"
)

// Appender receives newly created tasks.
type Appender interface {
	Add(model.Task)
}

// IDSource yields a fresh task id on every call.
type IDSource func() uuid.UUID

// Controller owns the draft value.
type Controller struct {
	value string
	newID IDSource
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDSource overrides how task ids are generated.
func WithIDSource(src IDSource) Option {
	return func(c *Controller) {
		if src != nil {
			c.newID = src
		}
	}
}

// New returns a Controller with an empty draft.
func New(opts ...Option) *Controller {
	c := &Controller{newID: newTimeOrderedID}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDraft replaces the draft. No validation happens here.
func (c *Controller) SetDraft(text string) { c.value = text }

// Value returns the current draft.
func (c *Controller) Value() string { return c.value }

// Submit turns the draft into a pending task and appends it to list.
// A blank draft is ignored and kept as is so the user can correct it;
// ok reports whether a task was created. The title keeps the draft's
// original spacing.
func (c *Controller) Submit(list Appender) (task model.Task, ok bool) {
	if strings.TrimSpace(c.value) == "" {
		return model.Task{}, false
	}
	task = model.NewTask(c.newID(), c.value)
	list.Add(task)
	c.value = ""
	return task, true
}

// UUIDv7 ids sort by creation time like the wall-clock ids they replace,
// but carry random bits so two tasks created in the same tick still differ.
func newTimeOrderedID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
