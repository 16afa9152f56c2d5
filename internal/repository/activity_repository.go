package repository

import (
	"time"

	"github.com/sanchalak/sanchalak-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityLogRepository is a GORM implementation of ActivityLogRepository
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Create appends a new entry
func (r *GormActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// List returns entries newest-first, optionally filtered
func (r *GormActivityLogRepository) List(filter ActivityFilter) ([]models.ActivityLog, error) {
	query := r.db.Model(&models.ActivityLog{}).Preload("User")

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", *filter.To)
	}

	var logs []models.ActivityLog
	if err := query.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListRecentByUsers returns the most recent entries for a set of actors
func (r *GormActivityLogRepository) ListRecentByUsers(userIDs []uint64, limit int) ([]models.ActivityLog, error) {
	if len(userIDs) == 0 {
		return []models.ActivityLog{}, nil
	}

	var logs []models.ActivityLog
	err := r.db.Preload("User").
		Where("user_id IN ?", userIDs).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// CountByUsersSince counts entries for a set of actors newer than since
func (r *GormActivityLogRepository) CountByUsersSince(userIDs []uint64, since time.Time) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.ActivityLog{}).
		Where("user_id IN ? AND timestamp >= ?", userIDs, since).
		Count(&count).Error
	return count, err
}
