package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/impact_hub/src/internal/application/teams"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Team handlers
// ===========================

type TeamHandler struct {
	create   teams.CreateTeamUseCase
	join     teams.JoinTeamUseCase
	leave    teams.LeaveTeamUseCase
	transfer teams.TransferLeadershipUseCase
	get      teams.GetTeamUseCase
	list     teams.ListTeamsUseCase
}

func NewTeamHandler(
	create teams.CreateTeamUseCase,
	join teams.JoinTeamUseCase,
	leave teams.LeaveTeamUseCase,
	transfer teams.TransferLeadershipUseCase,
	get teams.GetTeamUseCase,
	list teams.ListTeamsUseCase,
) *TeamHandler {
	return &TeamHandler{create: create, join: join, leave: leave, transfer: transfer, get: get, list: list}
}

// Create POST /create_team (also POST /teams)
func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.LeaderUUID == "" {
		respondBadRequest(c, "name and leader_uuid are required")
		return
	}

	result, err := h.create.Execute(teams.CreateTeamCommand{Name: req.Name, LeaderID: req.LeaderUUID})
	switch {
	case err == nil:
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	view, err := h.get.Execute(result.Team.ID())
	if err != nil {
		respondInternal(c)
		return
	}
	respondOK(c, "Team created", gin.H{"team": toTeamPayload(view)})
}

// Join POST /join_team
func (h *TeamHandler) Join(c *gin.Context) {
	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TeamID == "" || req.MemberUUID == "" {
		respondBadRequest(c, "team_id and member_uuid are required")
		return
	}

	err := h.join.Execute(teams.JoinTeamCommand{TeamID: req.TeamID, UserID: req.MemberUUID})
	switch {
	case err == nil:
	case errors.Is(err, team.ErrTeamNotFound):
		respondNotFound(c, "Team not found")
		return
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	respondOK(c, "Joined team", nil)
}

// Leave POST /leave_team
func (h *TeamHandler) Leave(c *gin.Context) {
	var req LeaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberUUID == "" {
		respondBadRequest(c, "member_uuid is required")
		return
	}

	err := h.leave.Execute(teams.LeaveTeamCommand{UserID: req.MemberUUID})
	switch {
	case err == nil:
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	respondOK(c, "Left team", nil)
}

// Transfer POST /transfer_team_leadership
func (h *TeamHandler) Transfer(c *gin.Context) {
	var req TransferLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TeamID == "" || req.NewLeaderUUID == "" {
		respondBadRequest(c, "team_id and new_leader_uuid are required")
		return
	}

	err := h.transfer.Execute(teams.TransferLeadershipCommand{TeamID: req.TeamID, NewLeaderID: req.NewLeaderUUID})
	switch {
	case err == nil:
	case errors.Is(err, team.ErrTeamNotFound):
		respondNotFound(c, "Team not found")
		return
	case errors.Is(err, user.ErrUserNotFound):
		respondNotFound(c, "User not found")
		return
	default:
		respondInternal(c)
		return
	}

	respondOK(c, "Leadership transferred", nil)
}

// Get GET /teams/:team_id
func (h *TeamHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(c.Param("team_id"))
	switch {
	case err == nil:
	case errors.Is(err, team.ErrTeamNotFound):
		respondNotFound(c, "Team not found")
		return
	default:
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": toTeamPayload(view)})
}

// List GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	views, err := h.list.Execute()
	if err != nil {
		respondInternal(c)
		return
	}
	payload := make([]TeamPayload, 0, len(views))
	for _, v := range views {
		payload = append(payload, toTeamPayload(v))
	}
	c.JSON(http.StatusOK, gin.H{"teams": payload})
}
