package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sanchalak/sanchalak-api/internal/mailer"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskFieldsRequired = errors.New("all task fields are required")
	ErrInvalidAssignee    = errors.New("assigned user must be a valid team member")
	ErrInvalidPriority    = errors.New("priority must be Low, Medium or High")
	ErrTaskNotFound       = errors.New("task not found")
	ErrStatusRequired     = errors.New("status field is required")
	ErrInvalidStatus      = errors.New("unknown task status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrNotTaskAssignee    = errors.New("not authorized to update this task")
)

// TaskService handles the task store and the status state machine.
type TaskService struct {
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityLogRepository
	mail         mailer.Mailer
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, activityRepo repository.ActivityLogRepository, mail mailer.Mailer) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		mail:         mail,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title        string
	Description  string
	Deadline     time.Time
	Priority     string
	AssignedToID uint64
}

// CreateTask persists a new Pending task created by the leader, notifies
// the assignee by mail and records the activity.
func (s *TaskService) CreateTask(leader *models.User, input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" || input.Description == "" || input.Deadline.IsZero() || input.AssignedToID == 0 {
		return nil, ErrTaskFieldsRequired
	}

	priority, ok := models.ParseTaskPriority(input.Priority)
	if !ok {
		return nil, ErrInvalidPriority
	}

	assignee, err := s.userRepo.FindByID(input.AssignedToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAssignee
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	task := &models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Deadline:     input.Deadline,
		Priority:     priority,
		Status:       models.TaskStatusPending,
		AssignedToID: assignee.ID,
		CreatedByID:  leader.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	mailer.Send(s.mail, mailer.AssignmentMessage(assignee, leader.Name, task))

	recordActivity(s.activityRepo, leader.ID, models.ActivityRoleLeader,
		"Created a new task", fmt.Sprintf("Task %s -> %s", task.Title, assignee.Name))

	return task, nil
}

// DeleteTask permanently removes a task. Any leader may delete any task;
// the route is role-gated but deletion is not tied to the creator.
func (s *TaskService) DeleteTask(actor *models.User, taskID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	recordActivity(s.activityRepo, actor.ID, models.ActivityRoleLeader,
		"Deleted a task", fmt.Sprintf("Task %s", task.Title))

	return nil
}

// ListAllTasks returns every task with its assignee resolved.
func (s *TaskService) ListAllTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListMyTasks returns the tasks assigned to a user.
func (s *TaskService) ListMyTasks(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus transitions a task through the status state machine. Only
// the assignee may move their own task; that check runs before transition
// validation so an outsider never learns whether a transition was legal.
// Completion notifies the task's creator.
func (s *TaskService) UpdateStatus(actor *models.User, taskID uint64, status string) (*models.Task, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	task, err := s.taskRepo.FindByID(taskID, "CreatedBy")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.AssignedToID != actor.ID {
		return nil, ErrNotTaskAssignee
	}

	newStatus, ok := models.ParseTaskStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	if !task.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, task.Status, newStatus)
	}

	task.Status = newStatus
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	recordActivity(s.activityRepo, actor.ID, models.ActivityRoleMember,
		"Updated a task", fmt.Sprintf("Task %s status -> %s", task.Title, newStatus))

	if newStatus == models.TaskStatusCompleted && task.CreatedBy != nil {
		mailer.Send(s.mail, mailer.CompletionMessage(task.CreatedBy, actor.Name, task))
	}

	return task, nil
}
