package sqlstore

import (
	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/shared"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// ===========================
// Domain <-> model mappers
// ===========================

const ErrCodeCorruptedRow shared.ErrorCode = "CORRUPTED_ROW"

// ErrCorruptedRow a stored row failed to parse back into its domain type.
var ErrCorruptedRow = &shared.DomainError{
	Code:    ErrCodeCorruptedRow,
	Message: "stored row is corrupted",
}

func userToModel(u *user.User) *UserModel {
	return &UserModel{
		UUID:     u.ID(),
		Email:    u.Email(),
		Password: u.PasswordHash(),
		Fname:    u.FirstName(),
		Lname:    u.LastName(),
		TeamID:   u.TeamID(),
	}
}

func userToDomain(m *UserModel) *user.User {
	return user.ReconstructUser(m.UUID, m.Email, m.Password, m.Fname, m.Lname, m.TeamID)
}

func donationToModel(d *donation.Donation) *DonationModel {
	return &DonationModel{
		UUID:         d.UserID(),
		Amount:       d.Amount().String(),
		Path:         string(d.Path()),
		ImpactPoints: d.ImpactPoints().String(),
		Hours:        d.Hours().String(),
		CreatedAt:    d.CreatedAt(),
	}
}

func donationToDomain(m *DonationModel) (*donation.Donation, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return nil, ErrCorruptedRow.WithContext("table", "donations", "column", "amount", "value", m.Amount)
	}
	points, err := decimal.NewFromString(m.ImpactPoints)
	if err != nil {
		return nil, ErrCorruptedRow.WithContext("table", "donations", "column", "impact_points", "value", m.ImpactPoints)
	}
	hours, err := decimal.NewFromString(m.Hours)
	if err != nil {
		return nil, ErrCorruptedRow.WithContext("table", "donations", "column", "hours", "value", m.Hours)
	}
	return donation.ReconstructDonation(m.UUID, amount, donation.Path(m.Path), points, hours, m.CreatedAt), nil
}

func donationsToDomain(models []DonationModel) ([]*donation.Donation, error) {
	out := make([]*donation.Donation, 0, len(models))
	for i := range models {
		d, err := donationToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func teamToModel(t *team.Team) *TeamModel {
	return &TeamModel{TeamID: t.ID(), Name: t.Name(), LeaderUUID: t.LeaderID()}
}

func teamToDomain(m *TeamModel) *team.Team {
	return team.ReconstructTeam(m.TeamID, m.Name, m.LeaderUUID)
}

func referralToModel(r *referral.Referral) *ReferralModel {
	return &ReferralModel{
		ReferrerID: r.ReferrerID(),
		ReferredID: r.ReferredID(),
		Code:       r.Code(),
		HasDonated: r.HasDonated(),
	}
}

func referralToDomain(m *ReferralModel) *referral.Referral {
	return referral.ReconstructReferral(m.ReferrerID, m.ReferredID, m.Code, m.HasDonated)
}

func messageToModel(m *wall.Message) *WallMessageModel {
	return &WallMessageModel{
		ID:          m.ID(),
		DisplayName: m.DisplayName(),
		Message:     m.Text(),
		Language:    m.Language(),
		CreatedAt:   m.CreatedAt(),
		Approved:    m.Approved(),
	}
}

func messageToDomain(m *WallMessageModel) *wall.Message {
	return wall.ReconstructMessage(m.ID, m.DisplayName, m.Message, m.Language, m.CreatedAt, m.Approved)
}
