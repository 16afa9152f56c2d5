package repository

import (
	"github.com/sanchalak/sanchalak-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByTeamLeader lists all users whose team leader is the given leader
func (r *GormUserRepository) ListByTeamLeader(leaderID uint64) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("team_leader_id = ?", leaderID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete permanently removes a user. Tasks referencing the user are left
// in place; the directory does not cascade.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Unscoped().Delete(&models.User{}, id).Error
}
