package main

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hopeworks/impact_hub/src/internal/application/auth"
	"github.com/hopeworks/impact_hub/src/internal/application/badges"
	"github.com/hopeworks/impact_hub/src/internal/application/giving"
	"github.com/hopeworks/impact_hub/src/internal/application/hopewall"
	"github.com/hopeworks/impact_hub/src/internal/application/rankings"
	"github.com/hopeworks/impact_hub/src/internal/application/referrals"
	"github.com/hopeworks/impact_hub/src/internal/application/teams"
	"github.com/hopeworks/impact_hub/src/internal/conf"
	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/shared"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
	"github.com/hopeworks/impact_hub/src/internal/infrastructure/persistence/csvstore"
	"github.com/hopeworks/impact_hub/src/internal/infrastructure/persistence/sqlstore"
	"github.com/hopeworks/impact_hub/src/internal/infrastructure/security"
	httpapi "github.com/hopeworks/impact_hub/src/internal/interfaces/http"
)

type repositories struct {
	users     user.UserRepository
	donations donation.DonationRepository
	teams     team.TeamRepository
	referrals referral.ReferralRepository
	badges    badge.AssignmentRepository
	wall      wall.MessageRepository
}

func openRepositories(cfg *conf.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case conf.DriverSQLite:
		db, err := sqlstore.Open(sqlite.Open(cfg.Store.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:     sqlstore.NewUserRepository(db),
			donations: sqlstore.NewDonationRepository(db),
			teams:     sqlstore.NewTeamRepository(db),
			referrals: sqlstore.NewReferralRepository(db),
			badges:    sqlstore.NewBadgeRepository(db),
			wall:      sqlstore.NewWallRepository(db),
		}, nil
	default:
		dir := cfg.Store.DataDir
		return &repositories{
			users:     csvstore.NewUserRepository(dir),
			donations: csvstore.NewDonationRepository(dir),
			teams:     csvstore.NewTeamRepository(dir),
			referrals: csvstore.NewReferralRepository(dir),
			badges:    csvstore.NewBadgeRepository(dir),
			wall:      csvstore.NewWallRepository(dir),
		}, nil
	}
}

func main() {
	cfg := conf.LoadConfig()

	repos, err := openRepositories(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	hasher := security.NewBcryptHasher()
	newID := func(length int) string { return shared.GenerateShortID(length, cfg.App.IDSalt) }
	now := time.Now

	handlers := httpapi.Handlers{
		Auth: httpapi.NewAuthHandler(
			auth.NewSignupUseCase(repos.users, hasher, newID),
			auth.NewLoginUseCase(repos.users, hasher),
			auth.NewCurrentUserUseCase(repos.users),
		),
		Giving: httpapi.NewGivingHandler(
			giving.NewRecordDonationUseCase(repos.donations, repos.referrals, repos.users, now),
			giving.NewRecordVolunteerUseCase(repos.donations, repos.users, now),
			giving.NewListUserDonationsUseCase(repos.donations),
			giving.NewListDonationsUseCase(repos.donations),
		),
		Badges: httpapi.NewBadgeHandler(
			badges.NewAssignBadgeUseCase(repos.badges, repos.users),
			badges.NewListBadgesUseCase(repos.badges),
			badges.NewCheckBadgesUseCase(repos.badges, repos.donations, repos.users, repos.teams),
		),
		Teams: httpapi.NewTeamHandler(
			teams.NewCreateTeamUseCase(repos.teams, repos.users, newID),
			teams.NewJoinTeamUseCase(repos.teams, repos.users),
			teams.NewLeaveTeamUseCase(repos.users),
			teams.NewTransferLeadershipUseCase(repos.teams, repos.users),
			teams.NewGetTeamUseCase(repos.teams, repos.users),
			teams.NewListTeamsUseCase(repos.teams, repos.users),
		),
		Referrals: httpapi.NewReferralHandler(
			referrals.NewReferralInfoUseCase(repos.referrals, repos.users),
		),
		Leaderboard: httpapi.NewLeaderboardHandler(
			rankings.NewSupporterLeaderboardUseCase(repos.donations, repos.users),
			rankings.NewTeamLeaderboardUseCase(repos.teams, repos.users, repos.donations),
		),
		Wall: httpapi.NewWallHandler(
			hopewall.NewListWallUseCase(repos.wall, now),
			hopewall.NewPostMessageUseCase(repos.wall, newID, now),
		),
	}

	router := httpapi.NewRouter(handlers, cfg.HTTP.CORSOrigins)

	log.Printf("impact hub listening on :%s (store driver: %s)", cfg.App.Port, cfg.Store.Driver)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
