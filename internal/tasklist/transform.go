package tasklist

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/taskify/internal/model"
)

// The functions below never modify their input. Each returns a freshly
// allocated slice so callers can hold on to older snapshots.

// Append returns tasks with t added at the end.
func Append(tasks []model.Task, t model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, t)
}

// Rename returns tasks with the title of the matching task replaced.
func Rename(tasks []model.Task, id uuid.UUID, title string) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if t.ID == id {
			t.Title = title
		}
		return t
	})
}

// Toggle returns tasks with the completed flag of the matching task flipped.
func Toggle(tasks []model.Task, id uuid.UUID) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		return t
	})
}

// Remove returns tasks without the matching task.
func Remove(tasks []model.Task, id uuid.UUID) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func mapTasks(tasks []model.Task, fn func(model.Task) model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = fn(t)
	}
	return out
}
