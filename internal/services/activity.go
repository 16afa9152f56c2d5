package services

import (
	"log"

	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
)

// recordActivity appends an audit entry for a mutation that has already
// committed. Append failures are logged and swallowed: the primary
// mutation is authoritative even if its audit entry is lost.
func recordActivity(repo repository.ActivityLogRepository, userID uint64, role models.ActivityRole, action, target string) {
	entry := &models.ActivityLog{
		UserID: userID,
		Role:   role,
		Action: action,
		Target: target,
	}

	if err := repo.Create(entry); err != nil {
		log.Printf("Failed to log activity: %v", err)
	}
}
