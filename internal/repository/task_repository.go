package repository

import (
	"github.com/sanchalak/sanchalak-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListAll retrieves every task with the assignee resolved
func (r *GormTaskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("AssignedTo").Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByAssignee retrieves tasks assigned to a user, soonest deadline first
func (r *GormTaskRepository) ListByAssignee(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("CreatedBy").
		Where("assigned_to_id = ?", userID).
		Order("deadline ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByCreator retrieves tasks created by a leader
func (r *GormTaskRepository) ListByCreator(leaderID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("created_by_id = ?", leaderID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete permanently removes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Unscoped().Delete(&models.Task{}, id).Error
}
