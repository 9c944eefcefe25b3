package http

import (
	"time"

	"github.com/hopeworks/impact_hub/src/internal/application/referrals"
	"github.com/hopeworks/impact_hub/src/internal/application/teams"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/leaderboard"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// ===========================
// Request DTOs
// ===========================
//
// Field names match the wire format the web client already sends. Pointer
// fields distinguish "missing" from zero for the endpoints that must reject
// incomplete bodies.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	ConfirmPass string `json:"confirmpass"`
	Fname       string `json:"fname"`
	Lname       string `json:"lname"`
}

type DonateRequest struct {
	UUID   string   `json:"uuid"`
	Amount *float64 `json:"amount"`
	Path   string   `json:"path"`

	// Impact is accepted for backward compatibility and ignored: points are
	// always derived server-side from the amount.
	Impact       *float64 `json:"impact"`
	ReferralCode string   `json:"referral_code"`
}

type VolunteerRequest struct {
	UUID  string   `json:"uuid"`
	Hours *float64 `json:"hours"`
	Date  string   `json:"date"`
}

type AssignBadgeRequest struct {
	BadgeID string `json:"badge_id"`
}

type CreateTeamRequest struct {
	Name       string `json:"name"`
	LeaderUUID string `json:"leader_uuid"`
}

type JoinTeamRequest struct {
	TeamID     string `json:"team_id"`
	MemberUUID string `json:"member_uuid"`
}

type LeaveTeamRequest struct {
	MemberUUID string `json:"member_uuid"`
}

type TransferLeadershipRequest struct {
	TeamID        string `json:"team_id"`
	NewLeaderUUID string `json:"new_leader_uuid"`
}

type PostWallMessageRequest struct {
	DisplayName string `json:"display_name"`
	Message     string `json:"message"`
	Language    string `json:"language"`
}

// ===========================
// Response DTOs
// ===========================

type UserPayload struct {
	UUID   string `json:"uuid"`
	Email  string `json:"email"`
	Fname  string `json:"fname"`
	Lname  string `json:"lname"`
	TeamID string `json:"team_id"`
}

func toUserPayload(u *user.User) UserPayload {
	return UserPayload{
		UUID:   u.ID(),
		Email:  u.Email(),
		Fname:  u.FirstName(),
		Lname:  u.LastName(),
		TeamID: u.TeamID(),
	}
}

type DonationPayload struct {
	UUID         string  `json:"uuid"`
	Amount       float64 `json:"amount"`
	Path         string  `json:"path"`
	ImpactPoints float64 `json:"impact_points"`
	Hours        float64 `json:"hours"`
	CreatedAt    string  `json:"created_at"`
}

func toDonationPayloads(rows []*donation.Donation) []DonationPayload {
	out := make([]DonationPayload, 0, len(rows))
	for _, d := range rows {
		out = append(out, DonationPayload{
			UUID:         d.UserID(),
			Amount:       d.Amount().InexactFloat64(),
			Path:         string(d.Path()),
			ImpactPoints: d.ImpactPoints().InexactFloat64(),
			Hours:        d.Hours().InexactFloat64(),
			CreatedAt:    d.CreatedAt(),
		})
	}
	return out
}

type BadgePayload struct {
	UUID    string `json:"uuid"`
	BadgeID string `json:"badge_id"`
}

type TeamPayload struct {
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	LeaderUUID  string `json:"leader_uuid"`
	LeaderName  string `json:"leader_name"`
	MemberCount int    `json:"member_count"`
}

func toTeamPayload(view *teams.TeamView) TeamPayload {
	return TeamPayload{
		TeamID:      view.Team.ID(),
		Name:        view.Team.Name(),
		LeaderUUID:  view.Team.LeaderID(),
		LeaderName:  view.LeaderName,
		MemberCount: view.MemberCount,
	}
}

type ReferralPayload struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
	HasDonated  bool   `json:"hasDonated"`
}

func toReferralPayloads(entries []referrals.ReferredEntry) []ReferralPayload {
	out := make([]ReferralPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, ReferralPayload{UUID: e.UserID, DisplayName: e.DisplayName, HasDonated: e.HasDonated})
	}
	return out
}

type SupporterEntryPayload struct {
	UUID           string  `json:"uuid"`
	DisplayName    string  `json:"display_name"`
	PrimaryPath    string  `json:"primary_path"`
	TotalPoints    float64 `json:"total_points"`
	TotalAmount    float64 `json:"total_amount"`
	TotalDonations int     `json:"total_donations"`
}

func toSupporterPayloads(entries []leaderboard.SupporterEntry) []SupporterEntryPayload {
	out := make([]SupporterEntryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, SupporterEntryPayload{
			UUID:           e.UserID,
			DisplayName:    e.DisplayName,
			PrimaryPath:    e.PrimaryPath,
			TotalPoints:    e.TotalPoints.InexactFloat64(),
			TotalAmount:    e.TotalAmount.InexactFloat64(),
			TotalDonations: e.TotalDonations,
		})
	}
	return out
}

type TeamEntryPayload struct {
	TeamID      string  `json:"team_id"`
	Name        string  `json:"name"`
	LeaderName  string  `json:"leader_name"`
	MemberCount int     `json:"member_count"`
	TotalPoints float64 `json:"total_points"`
}

func toTeamEntryPayloads(entries []leaderboard.TeamEntry) []TeamEntryPayload {
	out := make([]TeamEntryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, TeamEntryPayload{
			TeamID:      e.TeamID,
			Name:        e.Name,
			LeaderName:  e.LeaderName,
			MemberCount: e.MemberCount,
			TotalPoints: e.TotalPoints.InexactFloat64(),
		})
	}
	return out
}

type WallMessagePayload struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Message     string `json:"message"`
	Language    string `json:"language"`
	CreatedAt   string `json:"created_at"`
}

func toWallMessagePayloads(messages []*wall.Message) []WallMessagePayload {
	out := make([]WallMessagePayload, 0, len(messages))
	for _, m := range messages {
		out = append(out, WallMessagePayload{
			ID:          m.ID(),
			DisplayName: m.DisplayName(),
			Message:     m.Text(),
			Language:    m.Language(),
			CreatedAt:   m.CreatedAt().UTC().Format(time.RFC3339),
		})
	}
	return out
}
