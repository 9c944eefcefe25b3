package giving

import (
	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
)

// ===========================
// Donation listing use cases
// ===========================

// UserGivingResult is one user's full giving history with derived totals.
type UserGivingResult struct {
	Donations   []*donation.Donation
	TotalPoints decimal.Decimal
	TotalHours  decimal.Decimal
}

// ListUserDonationsUseCase returns a user's rows in insertion order, with
// points and volunteer hours summed across them.
type ListUserDonationsUseCase interface {
	Execute(userID string) (*UserGivingResult, error)
}

type listUserDonationsUseCase struct {
	donations donation.DonationRepository
}

func NewListUserDonationsUseCase(donations donation.DonationRepository) ListUserDonationsUseCase {
	return &listUserDonationsUseCase{donations: donations}
}

func (uc *listUserDonationsUseCase) Execute(userID string) (*UserGivingResult, error) {
	rows, err := uc.donations.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return &UserGivingResult{
		Donations:   rows,
		TotalPoints: donation.TotalPoints(rows),
		TotalHours:  donation.TotalHours(rows),
	}, nil
}

// ListDonationsUseCase returns the whole donation table, optionally filtered
// to one path. An unknown path filter simply matches nothing.
type ListDonationsUseCase interface {
	Execute(path string) ([]*donation.Donation, error)
}

type listDonationsUseCase struct {
	donations donation.DonationRepository
}

func NewListDonationsUseCase(donations donation.DonationRepository) ListDonationsUseCase {
	return &listDonationsUseCase{donations: donations}
}

func (uc *listDonationsUseCase) Execute(path string) ([]*donation.Donation, error) {
	rows, err := uc.donations.FindAll()
	if err != nil {
		return nil, err
	}
	return donation.FilterByPath(rows, path), nil
}
