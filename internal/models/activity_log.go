package models

import "time"

// ActivityRole is the role the actor asserted when the action was
// performed, recorded as-is rather than re-derived from the user row.
type ActivityRole string

const (
	ActivityRoleLeader ActivityRole = "Leader"
	ActivityRoleMember ActivityRole = "Member"
)

// ActivityLog is an append-only audit record. The application exposes no
// update or delete path for it.
type ActivityLog struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	UserID    uint64       `gorm:"not null;index" json:"user_id"`
	Role      ActivityRole `gorm:"type:varchar(20);not null" json:"role"`
	Action    string       `gorm:"not null" json:"action"`
	Target    string       `gorm:"not null" json:"target"`
	Timestamp time.Time    `gorm:"autoCreateTime;index" json:"timestamp"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
