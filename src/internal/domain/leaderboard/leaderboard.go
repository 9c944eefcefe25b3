package leaderboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Leaderboard aggregation
// ===========================
//
// Both rankings are recomputed from scratch per call over in-memory tables.
// No caching, no pagination.

// SupporterEntry is one row of the supporter ranking.
type SupporterEntry struct {
	UserID         string
	DisplayName    string
	PrimaryPath    string
	TotalPoints    decimal.Decimal
	TotalAmount    decimal.Decimal
	TotalDonations int
}

// TeamEntry is one row of the team ranking.
type TeamEntry struct {
	TeamID      string
	Name        string
	LeaderName  string
	MemberCount int
	TotalPoints decimal.Decimal
}

// RankSupporters groups the donation table by user, optionally filtered by
// path, and returns entries sorted by total points descending.
//
// Primary path is the path with the highest donation count for the user;
// ties break lexicographically by path name so the result is deterministic.
// Display name joins "first last" from the user table, falling back to the
// email when either name part is missing, and to the raw user id when the
// user row is gone.
func RankSupporters(donations []*donation.Donation, users []*user.User, path string) []SupporterEntry {
	donations = donation.FilterByPath(donations, path)

	byUser := make(map[string]*user.User, len(users))
	for _, u := range users {
		byUser[u.ID()] = u
	}

	type group struct {
		points     decimal.Decimal
		amount     decimal.Decimal
		count      int
		pathCounts map[string]int
	}
	groups := make(map[string]*group)
	var order []string

	for _, d := range donations {
		g, ok := groups[d.UserID()]
		if !ok {
			g = &group{points: decimal.Zero, amount: decimal.Zero, pathCounts: make(map[string]int)}
			groups[d.UserID()] = g
			order = append(order, d.UserID())
		}
		g.points = g.points.Add(d.ImpactPoints())
		g.amount = g.amount.Add(d.Amount())
		g.count++
		g.pathCounts[string(d.Path())]++
	}

	entries := make([]SupporterEntry, 0, len(groups))
	for _, userID := range order {
		g := groups[userID]

		displayName := userID
		if u, ok := byUser[userID]; ok {
			displayName = u.DisplayName()
		}

		entries = append(entries, SupporterEntry{
			UserID:         userID,
			DisplayName:    displayName,
			PrimaryPath:    primaryPath(g.pathCounts),
			TotalPoints:    g.points,
			TotalAmount:    g.amount,
			TotalDonations: g.count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TotalPoints.Equal(entries[j].TotalPoints) {
			return entries[i].TotalPoints.GreaterThan(entries[j].TotalPoints)
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})
	return entries
}

// primaryPath picks the path with the highest count; ties break
// lexicographically by path name.
func primaryPath(counts map[string]int) string {
	best := ""
	bestCount := -1
	for p, c := range counts {
		if c > bestCount || (c == bestCount && p < best) {
			best = p
			bestCount = c
		}
	}
	return best
}

// RankTeams computes per-team totals: members are users whose team_id
// matches, and a team's points are the sum of its members' donation points
// across the whole table. Sorted by total points descending.
func RankTeams(teams []*team.Team, users []*user.User, donations []*donation.Donation) []TeamEntry {
	pointsByUser := make(map[string]decimal.Decimal)
	for _, d := range donations {
		pointsByUser[d.UserID()] = pointsByUser[d.UserID()].Add(d.ImpactPoints())
	}

	byUser := make(map[string]*user.User, len(users))
	for _, u := range users {
		byUser[u.ID()] = u
	}

	entries := make([]TeamEntry, 0, len(teams))
	for _, t := range teams {
		total := decimal.Zero
		memberCount := 0
		for _, u := range users {
			if u.TeamID() != t.ID() {
				continue
			}
			memberCount++
			total = total.Add(pointsByUser[u.ID()])
		}

		leaderName := ""
		if leader, ok := byUser[t.LeaderID()]; ok {
			leaderName = leader.DisplayName()
		}

		entries = append(entries, TeamEntry{
			TeamID:      t.ID(),
			Name:        t.Name(),
			LeaderName:  leaderName,
			MemberCount: memberCount,
			TotalPoints: total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TotalPoints.Equal(entries[j].TotalPoints) {
			return entries[i].TotalPoints.GreaterThan(entries[j].TotalPoints)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
