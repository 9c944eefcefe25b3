package referrals

import (
	"errors"

	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Referral info use case
// ===========================

// ReferredEntry is one person the user referred, resolved to a display name
// when the referred account still exists.
type ReferredEntry struct {
	UserID      string
	DisplayName string
	HasDonated  bool
}

type ReferralInfoResult struct {
	// Code is the user's shareable referral code.
	Code string

	Referred []ReferredEntry

	// DonatedCount counts referred users whose first donation has landed,
	// each of which granted one flat bonus.
	DonatedCount int
}

// ReferralInfoUseCase assembles a user's referral code and outcomes. The code
// is derived, not stored: the fixed prefix plus the user id.
type ReferralInfoUseCase interface {
	Execute(userID string) (*ReferralInfoResult, error)
}

type referralInfoUseCase struct {
	referrals referral.ReferralRepository
	users     user.UserRepository
}

func NewReferralInfoUseCase(referrals referral.ReferralRepository, users user.UserRepository) ReferralInfoUseCase {
	return &referralInfoUseCase{referrals: referrals, users: users}
}

func (uc *referralInfoUseCase) Execute(userID string) (*ReferralInfoResult, error) {
	if _, err := uc.users.FindByID(userID); err != nil {
		return nil, err
	}

	rows, err := uc.referrals.FindByReferrer(userID)
	if err != nil {
		return nil, err
	}

	result := &ReferralInfoResult{Code: referral.CodePrefix + userID}
	for _, row := range rows {
		entry := ReferredEntry{
			UserID:      row.ReferredID(),
			DisplayName: row.ReferredID(),
			HasDonated:  row.HasDonated(),
		}
		referred, err := uc.users.FindByID(row.ReferredID())
		switch {
		case err == nil:
			entry.DisplayName = referred.DisplayName()
		case !errors.Is(err, user.ErrUserNotFound):
			return nil, err
		}
		if entry.HasDonated {
			result.DonatedCount++
		}
		result.Referred = append(result.Referred, entry)
	}
	return result, nil
}
