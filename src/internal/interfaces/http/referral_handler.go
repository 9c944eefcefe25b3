package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/impact_hub/src/internal/application/referrals"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Referral handler
// ===========================

type ReferralHandler struct {
	info referrals.ReferralInfoUseCase
}

func NewReferralHandler(info referrals.ReferralInfoUseCase) *ReferralHandler {
	return &ReferralHandler{info: info}
}

// Info GET /users/:uuid/referrals
func (h *ReferralHandler) Info(c *gin.Context) {
	result, err := h.info.Execute(c.Param("uuid"))
	switch {
	case err == nil:
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"referral_code": result.Code,
		"referrals":     toReferralPayloads(result.Referred),
		"donated_count": result.DonatedCount,
	})
}
