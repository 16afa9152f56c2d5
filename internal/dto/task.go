package dto

import (
	"time"

	"github.com/sanchalak/sanchalak-api/internal/models"
)

// TaskView is the leader-facing task row with the assignee resolved.
type TaskView struct {
	ID            uint64              `json:"id"`
	Title         string              `json:"title"`
	Due           time.Time           `json:"due"`
	Priority      models.TaskPriority `json:"priority"`
	Status        models.TaskStatus   `json:"status"`
	AssignedTo    string              `json:"assignedTo"`
	AssigneeEmail string              `json:"assignee_email"`
}

// ToTaskView flattens a task and its preloaded assignee. A missing
// assignee (removed user) resolves to empty strings rather than failing.
func ToTaskView(task models.Task) TaskView {
	view := TaskView{
		ID:       task.ID,
		Title:    task.Title,
		Due:      task.Deadline,
		Priority: task.Priority,
		Status:   task.Status,
	}
	if task.AssignedTo != nil {
		view.AssignedTo = task.AssignedTo.Name
		view.AssigneeEmail = task.AssignedTo.Email
	}
	return view
}

// ToTaskViews converts a slice of tasks.
func ToTaskViews(tasks []models.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, ToTaskView(task))
	}
	return views
}
