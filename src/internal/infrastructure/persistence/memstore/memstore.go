// Package memstore provides in-memory repository implementations. It backs
// use-case tests and mirrors the flat-file store's semantics: linear scans,
// wholesale replacement on save, no locking.
package memstore

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// ===========================
// UserRepository
// ===========================

type UserRepository struct {
	rows []*user.User
}

func NewUserRepository() *UserRepository { return &UserRepository{} }

func (r *UserRepository) Save(u *user.User) error {
	for i, row := range r.rows {
		if row.ID() == u.ID() {
			r.rows[i] = u
			return nil
		}
	}
	r.rows = append(r.rows, u)
	return nil
}

func (r *UserRepository) FindByID(id string) (*user.User, error) {
	for _, row := range r.rows {
		if row.ID() == id {
			return row, nil
		}
	}
	return nil, user.ErrUserNotFound.WithContext("user_id", id)
}

func (r *UserRepository) FindByEmail(email string) (*user.User, error) {
	for _, row := range r.rows {
		if row.Email() == email {
			return row, nil
		}
	}
	return nil, user.ErrUserNotFound.WithContext("email", email)
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	for _, row := range r.rows {
		if row.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) FindAll() ([]*user.User, error) {
	out := make([]*user.User, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// ===========================
// DonationRepository
// ===========================

type DonationRepository struct {
	rows []*donation.Donation
}

func NewDonationRepository() *DonationRepository { return &DonationRepository{} }

func (r *DonationRepository) Append(d *donation.Donation) error {
	r.rows = append(r.rows, d)
	return nil
}

func (r *DonationRepository) FindByUser(userID string) ([]*donation.Donation, error) {
	var out []*donation.Donation
	for _, row := range r.rows {
		if row.UserID() == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *DonationRepository) FindAll() ([]*donation.Donation, error) {
	out := make([]*donation.Donation, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *DonationRepository) CountByUser(userID string) (int, error) {
	count := 0
	for _, row := range r.rows {
		if row.UserID() == userID {
			count++
		}
	}
	return count, nil
}

// ===========================
// TeamRepository
// ===========================

type TeamRepository struct {
	rows []*team.Team
}

func NewTeamRepository() *TeamRepository { return &TeamRepository{} }

func (r *TeamRepository) Save(t *team.Team) error {
	for i, row := range r.rows {
		if row.ID() == t.ID() {
			r.rows[i] = t
			return nil
		}
	}
	r.rows = append(r.rows, t)
	return nil
}

func (r *TeamRepository) FindByID(id string) (*team.Team, error) {
	for _, row := range r.rows {
		if row.ID() == id {
			return row, nil
		}
	}
	return nil, team.ErrTeamNotFound.WithContext("team_id", id)
}

func (r *TeamRepository) FindByLeader(leaderID string) (*team.Team, error) {
	for _, row := range r.rows {
		if row.LeaderID() == leaderID {
			return row, nil
		}
	}
	return nil, team.ErrTeamNotFound.WithContext("leader_id", leaderID)
}

func (r *TeamRepository) FindAll() ([]*team.Team, error) {
	out := make([]*team.Team, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// ===========================
// ReferralRepository
// ===========================

type ReferralRepository struct {
	rows []*referral.Referral
}

func NewReferralRepository() *ReferralRepository { return &ReferralRepository{} }

func (r *ReferralRepository) Save(ref *referral.Referral) error {
	for i, row := range r.rows {
		if row.ReferredID() == ref.ReferredID() && row.Code() == ref.Code() {
			r.rows[i] = ref
			return nil
		}
	}
	r.rows = append(r.rows, ref)
	return nil
}

func (r *ReferralRepository) FindByReferredAndCode(referredID, code string) (*referral.Referral, error) {
	for _, row := range r.rows {
		if row.ReferredID() == referredID && row.Code() == code {
			return row, nil
		}
	}
	return nil, referral.ErrReferralNotFound.WithContext("referred_id", referredID)
}

func (r *ReferralRepository) FindByReferrer(referrerID string) ([]*referral.Referral, error) {
	var out []*referral.Referral
	for _, row := range r.rows {
		if row.ReferrerID() == referrerID {
			out = append(out, row)
		}
	}
	return out, nil
}

// ===========================
// Badge AssignmentRepository
// ===========================

type BadgeRepository struct {
	rows []*badge.Assignment
}

func NewBadgeRepository() *BadgeRepository { return &BadgeRepository{} }

func (r *BadgeRepository) Append(a *badge.Assignment) error {
	r.rows = append(r.rows, a)
	return nil
}

func (r *BadgeRepository) Exists(userID string, badgeID badge.ID) (bool, error) {
	for _, row := range r.rows {
		if row.UserID() == userID && row.BadgeID() == badgeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BadgeRepository) FindByUser(userID string) ([]*badge.Assignment, error) {
	var out []*badge.Assignment
	for _, row := range r.rows {
		if row.UserID() == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

// ===========================
// Wall MessageRepository
// ===========================

type WallRepository struct {
	rows []*wall.Message
}

func NewWallRepository() *WallRepository { return &WallRepository{} }

func (r *WallRepository) Append(m *wall.Message) error {
	r.rows = append(r.rows, m)
	return nil
}

func (r *WallRepository) FindApproved() ([]*wall.Message, error) {
	var out []*wall.Message
	for _, row := range r.rows {
		if row.Approved() {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *WallRepository) FindAll() ([]*wall.Message, error) {
	out := make([]*wall.Message, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
