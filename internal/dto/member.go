package dto

import "github.com/sanchalak/sanchalak-api/internal/models"

// MemberDTO is the public projection of a user. It never carries
// password material.
type MemberDTO struct {
	ID    uint64      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// ToMemberDTO projects a user to its public fields.
func ToMemberDTO(user models.User) MemberDTO {
	return MemberDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// ToMemberDTOs converts a slice of users.
func ToMemberDTOs(users []models.User) []MemberDTO {
	dtos := make([]MemberDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, ToMemberDTO(user))
	}
	return dtos
}
