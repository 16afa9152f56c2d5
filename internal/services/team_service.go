package services

import (
	"errors"
	"fmt"

	"github.com/sanchalak/sanchalak-api/internal/mailer"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
	"github.com/sanchalak/sanchalak-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMemberFieldsRequired = errors.New("please provide name, email, and role")
	ErrInvalidRole          = errors.New("role must be leader or member")
	ErrMemberNotFound       = errors.New("team member not found")
	ErrNotLeader            = errors.New("only team leaders can perform this action")
	ErrSelfRemoval          = errors.New("you cannot remove yourself")
)

// TeamService handles the user/team directory and the activity log feed.
type TeamService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityLogRepository
	mail         mailer.Mailer
}

// NewTeamService creates a new TeamService.
func NewTeamService(userRepo repository.UserRepository, activityRepo repository.ActivityLogRepository, mail mailer.Mailer) *TeamService {
	return &TeamService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		mail:         mail,
	}
}

// AddMemberInput represents input for adding a team member.
type AddMemberInput struct {
	Name  string
	Email string
	Role  models.Role
}

// AddMember creates a user under the acting leader with a generated
// one-time password. The password is mailed to the member and never
// returned or stored in plaintext.
func (s *TeamService) AddMember(leader *models.User, input AddMemberInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Role == "" {
		return nil, ErrMemberFieldsRequired
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	password, err := utils.GeneratePassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	member := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         input.Role,
		TeamLeaderID: &leader.ID,
	}

	if err := s.userRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	mailer.Send(s.mail, mailer.WelcomeMessage(member, leader.Name, password))

	recordActivity(s.activityRepo, leader.ID, models.ActivityRoleLeader,
		"Added a new team member", fmt.Sprintf("Member: %s", member.Name))

	return member, nil
}

// RemoveMember deletes a user from the directory. Leaders cannot remove
// themselves. Tasks referencing the removed user are left untouched.
func (s *TeamService) RemoveMember(actor *models.User, memberID uint64) error {
	if actor.Role != models.RoleLeader {
		return ErrNotLeader
	}

	member, err := s.userRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	if member.ID == actor.ID {
		return ErrSelfRemoval
	}

	if err := s.userRepo.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	recordActivity(s.activityRepo, actor.ID, models.ActivityRoleLeader,
		"Removed a team member", fmt.Sprintf("Member: %s", member.Name))

	return nil
}

// ListTeamMembers returns every user whose team leader is the given leader.
func (s *TeamService) ListTeamMembers(leaderID uint64) ([]models.User, error) {
	members, err := s.userRepo.ListByTeamLeader(leaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// ListActivityLogs returns activity log entries newest-first with
// optional actor, role and time-range filters.
func (s *TeamService) ListActivityLogs(filter repository.ActivityFilter) ([]models.ActivityLog, error) {
	logs, err := s.activityRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return logs, nil
}
