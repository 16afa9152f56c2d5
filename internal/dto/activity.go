package dto

import (
	"time"

	"github.com/sanchalak/sanchalak-api/internal/models"
)

// ActivityLogDTO is a log entry with the actor resolved.
type ActivityLogDTO struct {
	ID        uint64              `json:"id"`
	User      string              `json:"user"`
	UserEmail string              `json:"user_email,omitempty"`
	Role      models.ActivityRole `json:"role"`
	Action    string              `json:"action"`
	Target    string              `json:"target"`
	Timestamp time.Time           `json:"timestamp"`
}

// ToActivityLogDTO resolves the actor of an entry. Entries whose actor
// was removed keep their audit data with an empty user name.
func ToActivityLogDTO(entry models.ActivityLog) ActivityLogDTO {
	dto := ActivityLogDTO{
		ID:        entry.ID,
		Role:      entry.Role,
		Action:    entry.Action,
		Target:    entry.Target,
		Timestamp: entry.Timestamp,
	}
	if entry.User != nil {
		dto.User = entry.User.Name
		dto.UserEmail = entry.User.Email
	}
	return dto
}

// ToActivityLogDTOs converts a slice of entries.
func ToActivityLogDTOs(entries []models.ActivityLog) []ActivityLogDTO {
	dtos := make([]ActivityLogDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, ToActivityLogDTO(entry))
	}
	return dtos
}
