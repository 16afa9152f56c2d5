package models

import (
	"time"
)

type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleLeader || r == RoleMember
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	TeamLeaderID *uint64   `gorm:"index" json:"team_leader_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	TeamLeader    *User  `gorm:"foreignKey:TeamLeaderID" json:"-"`
	AssignedTasks []Task `gorm:"foreignKey:AssignedToID" json:"-"`
	CreatedTasks  []Task `gorm:"foreignKey:CreatedByID" json:"-"`
}
