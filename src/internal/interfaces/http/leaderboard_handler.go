package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/impact_hub/src/internal/application/rankings"
)

// ===========================
// Leaderboard handlers
// ===========================

type LeaderboardHandler struct {
	supporters rankings.SupporterLeaderboardUseCase
	teams      rankings.TeamLeaderboardUseCase
}

func NewLeaderboardHandler(supporters rankings.SupporterLeaderboardUseCase, teams rankings.TeamLeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{supporters: supporters, teams: teams}
}

// Supporters GET /leaderboard/supporters?path=
func (h *LeaderboardHandler) Supporters(c *gin.Context) {
	entries, err := h.supporters.Execute(c.Query("path"))
	if err != nil {
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": toSupporterPayloads(entries)})
}

// Teams GET /leaderboard/teams
func (h *LeaderboardHandler) Teams(c *gin.Context) {
	entries, err := h.teams.Execute()
	if err != nil {
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": toTeamEntryPayloads(entries)})
}
