package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/application/giving"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Giving handlers
// ===========================

type GivingHandler struct {
	donate        giving.RecordDonationUseCase
	volunteer     giving.RecordVolunteerUseCase
	userDonations giving.ListUserDonationsUseCase
	allDonations  giving.ListDonationsUseCase
}

func NewGivingHandler(
	donate giving.RecordDonationUseCase,
	volunteer giving.RecordVolunteerUseCase,
	userDonations giving.ListUserDonationsUseCase,
	allDonations giving.ListDonationsUseCase,
) *GivingHandler {
	return &GivingHandler{
		donate:        donate,
		volunteer:     volunteer,
		userDonations: userDonations,
		allDonations:  allDonations,
	}
}

// Donate POST /donate
func (h *GivingHandler) Donate(c *gin.Context) {
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "amount, path and uuid are required")
		return
	}
	if req.UUID == "" || req.Amount == nil || req.Path == "" {
		respondBadRequest(c, "amount, path and uuid are required")
		return
	}

	_, err := h.donate.Execute(giving.RecordDonationCommand{
		UserID:       req.UUID,
		Amount:       decimal.NewFromFloat(*req.Amount),
		Path:         req.Path,
		ReferralCode: req.ReferralCode,
	})
	switch {
	case err == nil:
	case errors.Is(err, donation.ErrInvalidPath), errors.Is(err, donation.ErrNegativeAmount):
		respondBadRequest(c, err.Error())
		return
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	respondOK(c, "Donation recorded!", nil)
}

// Volunteer POST /volunteer
func (h *GivingHandler) Volunteer(c *gin.Context) {
	var req VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "hours must be a number")
		return
	}
	if req.UUID == "" || req.Hours == nil {
		respondBadRequest(c, "uuid and hours are required")
		return
	}

	_, err := h.volunteer.Execute(giving.RecordVolunteerCommand{
		UserID: req.UUID,
		Hours:  decimal.NewFromFloat(*req.Hours),
		Date:   req.Date,
	})
	switch {
	case err == nil:
	case errors.Is(err, donation.ErrNegativeHours):
		respondBadRequest(c, err.Error())
		return
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	respondOK(c, "Volunteer hours recorded", nil)
}

// UserDonations GET /users/:uuid/donations
func (h *GivingHandler) UserDonations(c *gin.Context) {
	result, err := h.userDonations.Execute(c.Param("uuid"))
	if err != nil {
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"donations":    toDonationPayloads(result.Donations),
		"total_points": result.TotalPoints.InexactFloat64(),
		"total_hours":  result.TotalHours.InexactFloat64(),
	})
}

// Donations GET /donations?path=
func (h *GivingHandler) Donations(c *gin.Context) {
	rows, err := h.allDonations.Execute(c.Query("path"))
	if err != nil {
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": toDonationPayloads(rows)})
}
