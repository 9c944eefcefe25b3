package giving

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Record volunteer hours use case
// ===========================

// RecordVolunteerCommand carries a volunteer time entry. Date is the
// client-supplied service date; empty means now.
type RecordVolunteerCommand struct {
	UserID string
	Hours  decimal.Decimal
	Date   string
}

type RecordVolunteerResult struct {
	Donation *donation.Donation
}

// RecordVolunteerUseCase appends volunteer hours as a zero-amount SERVICE
// row. Volunteer entries never trigger the referral flow.
type RecordVolunteerUseCase interface {
	Execute(cmd RecordVolunteerCommand) (*RecordVolunteerResult, error)
}

type recordVolunteerUseCase struct {
	donations donation.DonationRepository
	users     user.UserRepository
	now       Clock
}

func NewRecordVolunteerUseCase(
	donations donation.DonationRepository,
	users user.UserRepository,
	now Clock,
) RecordVolunteerUseCase {
	return &recordVolunteerUseCase{donations: donations, users: users, now: now}
}

func (uc *recordVolunteerUseCase) Execute(cmd RecordVolunteerCommand) (*RecordVolunteerResult, error) {
	if _, err := uc.users.FindByID(cmd.UserID); err != nil {
		return nil, err
	}

	date := cmd.Date
	if date == "" {
		date = uc.now().UTC().Format(time.RFC3339)
	}

	d, err := donation.NewVolunteerEntry(cmd.UserID, cmd.Hours, date)
	if err != nil {
		return nil, err
	}
	if err := uc.donations.Append(d); err != nil {
		return nil, err
	}

	return &RecordVolunteerResult{Donation: d}, nil
}
