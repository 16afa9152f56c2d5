package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sanchalak/sanchalak-api/internal/dto"
	apierrors "github.com/sanchalak/sanchalak-api/internal/errors"
	"github.com/sanchalak/sanchalak-api/internal/middleware"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
	"github.com/sanchalak/sanchalak-api/internal/services"
)

// LeaderHandler coordinates team directory and activity log endpoints.
type LeaderHandler struct {
	teamService *services.TeamService
}

// NewLeaderHandler creates a new LeaderHandler.
func NewLeaderHandler(teamService *services.TeamService) *LeaderHandler {
	return &LeaderHandler{
		teamService: teamService,
	}
}

// AddMember creates a team member under the acting leader. The generated
// password is mailed once and never included in the response.
func (h *LeaderHandler) AddMember(c *gin.Context) {
	leader, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddMemberRequest struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Please provide name, email, and role")
		return
	}

	member, err := h.teamService.AddMember(leader, services.AddMemberInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.Role(req.Role),
	})
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Team member added successfully. Email sent.",
		"member":  dto.ToMemberDTO(*member),
	})
}

// RemoveMember deletes a team member.
func (h *LeaderHandler) RemoveMember(c *gin.Context) {
	leader, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	memberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid member id")
		return
	}

	if err := h.teamService.RemoveMember(leader, memberID); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team member removed successfully",
	})
}

// GetTeamMembers lists the acting leader's team.
func (h *LeaderHandler) GetTeamMembers(c *gin.Context) {
	leader, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	members, err := h.teamService.ListTeamMembers(leader.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(members),
		"teamMembers": dto.ToMemberDTOs(members),
	})
}

// GetActivityLogs returns the audit trail, optionally filtered by actor,
// role and time range.
func (h *LeaderHandler) GetActivityLogs(c *gin.Context) {
	var filter repository.ActivityFilter

	if userStr := c.Query("user"); userStr != "" {
		userID, err := strconv.ParseUint(userStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user filter")
			return
		}
		filter.UserID = &userID
	}
	if roleStr := c.Query("role"); roleStr != "" {
		role := models.ActivityRole(roleStr)
		filter.Role = &role
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseLogTime(fromStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid from filter")
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseLogTime(toStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid to filter")
			return
		}
		filter.To = &to
	}

	logs, err := h.teamService.ListActivityLogs(filter)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logs":    dto.ToActivityLogDTOs(logs),
	})
}

func parseLogTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemberFieldsRequired),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotLeader),
		errors.Is(err, services.ErrSelfRemoval):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
