package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/impact_hub/src/internal/application/badges"
	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Badge handlers
// ===========================

type BadgeHandler struct {
	assign badges.AssignBadgeUseCase
	list   badges.ListBadgesUseCase
	check  badges.CheckBadgesUseCase
}

func NewBadgeHandler(assign badges.AssignBadgeUseCase, list badges.ListBadgesUseCase, check badges.CheckBadgesUseCase) *BadgeHandler {
	return &BadgeHandler{assign: assign, list: list, check: check}
}

// List GET /users/:uuid/badges
func (h *BadgeHandler) List(c *gin.Context) {
	userID := c.Param("uuid")
	ids, err := h.list.Execute(userID)
	if err != nil {
		respondInternal(c)
		return
	}
	payload := make([]BadgePayload, 0, len(ids))
	for _, id := range ids {
		payload = append(payload, BadgePayload{UUID: userID, BadgeID: string(id)})
	}
	c.JSON(http.StatusOK, gin.H{"badges": payload})
}

// Assign POST /users/:uuid/badges
func (h *BadgeHandler) Assign(c *gin.Context) {
	var req AssignBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BadgeID == "" {
		respondBadRequest(c, "badge_id is required")
		return
	}

	result, err := h.assign.Execute(badges.AssignBadgeCommand{UserID: c.Param("uuid"), BadgeID: req.BadgeID})
	switch {
	case err == nil:
	case errors.Is(err, badge.ErrUnknownBadge):
		respondBadRequest(c, "Unknown badge_id")
		return
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	if result.AlreadyAssigned {
		respondOK(c, "Badge already assigned", nil)
		return
	}
	respondOK(c, "Badge assigned", nil)
}

// Check POST /users/:uuid/badges/check
func (h *BadgeHandler) Check(c *gin.Context) {
	result, err := h.check.Execute(c.Param("uuid"))
	switch {
	case err == nil:
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	newly := make([]string, 0, len(result.NewlyEarned))
	for _, id := range result.NewlyEarned {
		newly = append(newly, string(id))
	}
	held := make([]string, 0, len(result.Held))
	for _, id := range result.Held {
		held = append(held, string(id))
	}
	respondOK(c, "Badges checked", gin.H{"newly_earned": newly, "badges": held})
}
