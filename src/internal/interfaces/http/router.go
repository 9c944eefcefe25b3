// Package http is the gin interface layer: request binding, the session
// cookie and the status-in-body response contract the web client expects.
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Giving      *GivingHandler
	Badges      *BadgeHandler
	Teams       *TeamHandler
	Referrals   *ReferralHandler
	Leaderboard *LeaderboardHandler
	Wall        *WallHandler
}

// NewRouter builds the gin engine with CORS for the browser client.
// Credentials must be allowed: the session cookie rides on every call.
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	r.POST("/login", h.Auth.Login)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/me", h.Auth.Me)

	r.POST("/donate", h.Giving.Donate)
	r.POST("/volunteer", h.Giving.Volunteer)
	r.GET("/donations", h.Giving.Donations)
	r.GET("/users/:uuid/donations", h.Giving.UserDonations)

	r.GET("/users/:uuid/badges", h.Badges.List)
	r.POST("/users/:uuid/badges", h.Badges.Assign)
	r.POST("/users/:uuid/badges/check", h.Badges.Check)

	r.GET("/users/:uuid/referrals", h.Referrals.Info)

	r.GET("/teams", h.Teams.List)
	r.POST("/teams", h.Teams.Create)
	r.GET("/teams/:team_id", h.Teams.Get)
	r.POST("/create_team", h.Teams.Create)
	r.POST("/join_team", h.Teams.Join)
	r.POST("/leave_team", h.Teams.Leave)
	r.POST("/transfer_team_leadership", h.Teams.Transfer)

	r.GET("/leaderboard/supporters", h.Leaderboard.Supporters)
	r.GET("/leaderboard/teams", h.Leaderboard.Teams)

	r.GET("/hope_wall/messages", h.Wall.List)
	r.POST("/hope_wall/messages", h.Wall.Post)

	return r
}
