package giving

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Record donation use case
// ===========================

// RecordDonationCommand carries a monetary gift. Any client-computed impact
// value is ignored; points are derived server-side from the amount.
type RecordDonationCommand struct {
	UserID       string
	Amount       decimal.Decimal
	Path         string
	ReferralCode string
}

type RecordDonationResult struct {
	Donation *donation.Donation

	// BonusGranted reports whether a referral bonus row was appended to a
	// referrer's history as part of this donation.
	BonusGranted bool
}

// RecordDonationUseCase appends a donation row and runs the referral flow.
//
// Referral rules:
// 1. a code only counts on the donor's first-ever donation (count taken
//    before the new row is written)
// 2. the code's embedded id must name a real user for the bonus to fire
// 3. the (referred, code) row is upserted either way, so an unresolvable
//    code is still recorded
// 4. a row that already has hasDonated set never fires a second bonus
type RecordDonationUseCase interface {
	Execute(cmd RecordDonationCommand) (*RecordDonationResult, error)
}

type recordDonationUseCase struct {
	donations donation.DonationRepository
	referrals referral.ReferralRepository
	users     user.UserRepository
	now       Clock
}

func NewRecordDonationUseCase(
	donations donation.DonationRepository,
	referrals referral.ReferralRepository,
	users user.UserRepository,
	now Clock,
) RecordDonationUseCase {
	return &recordDonationUseCase{donations: donations, referrals: referrals, users: users, now: now}
}

func (uc *recordDonationUseCase) Execute(cmd RecordDonationCommand) (*RecordDonationResult, error) {
	path, err := donation.ParsePath(cmd.Path)
	if err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByID(cmd.UserID); err != nil {
		return nil, err
	}

	countBefore, err := uc.donations.CountByUser(cmd.UserID)
	if err != nil {
		return nil, err
	}

	createdAt := uc.now().UTC().Format(time.RFC3339)
	d, err := donation.NewMonetaryDonation(cmd.UserID, cmd.Amount, path, createdAt)
	if err != nil {
		return nil, err
	}
	if err := uc.donations.Append(d); err != nil {
		return nil, err
	}

	bonus := false
	if cmd.ReferralCode != "" && countBefore == 0 {
		bonus, err = uc.applyReferral(cmd.UserID, cmd.ReferralCode, createdAt)
		if err != nil {
			return nil, err
		}
	}

	return &RecordDonationResult{Donation: d, BonusGranted: bonus}, nil
}

func (uc *recordDonationUseCase) applyReferral(referredID, code, createdAt string) (bool, error) {
	existing, err := uc.referrals.FindByReferredAndCode(referredID, code)
	if err != nil && !errors.Is(err, referral.ErrReferralNotFound) {
		return false, err
	}
	if existing != nil && existing.HasDonated() {
		return false, nil
	}

	referrerID := ""
	if candidate := referral.CandidateReferrerID(code); candidate != "" {
		if _, err := uc.users.FindByID(candidate); err == nil {
			referrerID = candidate
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return false, err
		}
	}

	row := existing
	if row == nil {
		row, err = referral.NewReferral(referrerID, referredID, code, false)
		if err != nil {
			return false, err
		}
	}
	row.MarkDonated(referrerID)
	if err := uc.referrals.Save(row); err != nil {
		return false, err
	}

	if referrerID == "" {
		return false, nil
	}
	bonus, err := donation.NewReferralBonus(referrerID, createdAt)
	if err != nil {
		return false, err
	}
	if err := uc.donations.Append(bonus); err != nil {
		return false, err
	}
	return true, nil
}
