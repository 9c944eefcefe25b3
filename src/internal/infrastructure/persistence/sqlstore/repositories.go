package sqlstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// Open connects and migrates every table.
func Open(dialector gorm.Dialector, opts ...gorm.Option) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, opts...)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, err
	}
	return db, nil
}

// ===========================
// GORM UserRepository
// ===========================

type GORMUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.UserRepository {
	return &GORMUserRepository{db: db}
}

func (r *GORMUserRepository) Save(u *user.User) error {
	return r.db.Save(userToModel(u)).Error
}

func (r *GORMUserRepository) FindByID(id string) (*user.User, error) {
	var m UserModel
	if err := r.db.First(&m, "uuid = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound.WithContext("user_id", id)
		}
		return nil, err
	}
	return userToDomain(&m), nil
}

func (r *GORMUserRepository) FindByEmail(email string) (*user.User, error) {
	var m UserModel
	if err := r.db.First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound.WithContext("email", email)
		}
		return nil, err
	}
	return userToDomain(&m), nil
}

func (r *GORMUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GORMUserRepository) FindAll() ([]*user.User, error) {
	var models []UserModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*user.User, 0, len(models))
	for i := range models {
		out = append(out, userToDomain(&models[i]))
	}
	return out, nil
}

// ===========================
// GORM DonationRepository
// ===========================

type GORMDonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) donation.DonationRepository {
	return &GORMDonationRepository{db: db}
}

func (r *GORMDonationRepository) Append(d *donation.Donation) error {
	return r.db.Create(donationToModel(d)).Error
}

func (r *GORMDonationRepository) FindByUser(userID string) ([]*donation.Donation, error) {
	var models []DonationModel
	if err := r.db.Where("uuid = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return donationsToDomain(models)
}

func (r *GORMDonationRepository) FindAll() ([]*donation.Donation, error) {
	var models []DonationModel
	if err := r.db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return donationsToDomain(models)
}

func (r *GORMDonationRepository) CountByUser(userID string) (int, error) {
	var count int64
	if err := r.db.Model(&DonationModel{}).Where("uuid = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// ===========================
// GORM TeamRepository
// ===========================

type GORMTeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.TeamRepository {
	return &GORMTeamRepository{db: db}
}

func (r *GORMTeamRepository) Save(t *team.Team) error {
	return r.db.Save(teamToModel(t)).Error
}

func (r *GORMTeamRepository) FindByID(id string) (*team.Team, error) {
	var m TeamModel
	if err := r.db.First(&m, "team_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrTeamNotFound.WithContext("team_id", id)
		}
		return nil, err
	}
	return teamToDomain(&m), nil
}

func (r *GORMTeamRepository) FindByLeader(leaderID string) (*team.Team, error) {
	var m TeamModel
	if err := r.db.First(&m, "leader_uuid = ?", leaderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrTeamNotFound.WithContext("leader_id", leaderID)
		}
		return nil, err
	}
	return teamToDomain(&m), nil
}

func (r *GORMTeamRepository) FindAll() ([]*team.Team, error) {
	var models []TeamModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*team.Team, 0, len(models))
	for i := range models {
		out = append(out, teamToDomain(&models[i]))
	}
	return out, nil
}

// ===========================
// GORM ReferralRepository
// ===========================

type GORMReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) referral.ReferralRepository {
	return &GORMReferralRepository{db: db}
}

func (r *GORMReferralRepository) Save(ref *referral.Referral) error {
	var existing ReferralModel
	err := r.db.First(&existing, "referred_id = ? AND code = ?", ref.ReferredID(), ref.Code()).Error
	switch {
	case err == nil:
		m := referralToModel(ref)
		m.ID = existing.ID
		return r.db.Save(m).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(referralToModel(ref)).Error
	default:
		return err
	}
}

func (r *GORMReferralRepository) FindByReferredAndCode(referredID, code string) (*referral.Referral, error) {
	var m ReferralModel
	if err := r.db.First(&m, "referred_id = ? AND code = ?", referredID, code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referral.ErrReferralNotFound.WithContext("referred_id", referredID)
		}
		return nil, err
	}
	return referralToDomain(&m), nil
}

func (r *GORMReferralRepository) FindByReferrer(referrerID string) ([]*referral.Referral, error) {
	var models []ReferralModel
	if err := r.db.Where("referrer_id = ?", referrerID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*referral.Referral, 0, len(models))
	for i := range models {
		out = append(out, referralToDomain(&models[i]))
	}
	return out, nil
}

// ===========================
// GORM badge AssignmentRepository
// ===========================

type GORMBadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) badge.AssignmentRepository {
	return &GORMBadgeRepository{db: db}
}

func (r *GORMBadgeRepository) Append(a *badge.Assignment) error {
	return r.db.Create(&BadgeModel{UUID: a.UserID(), BadgeID: string(a.BadgeID())}).Error
}

func (r *GORMBadgeRepository) Exists(userID string, badgeID badge.ID) (bool, error) {
	var count int64
	err := r.db.Model(&BadgeModel{}).
		Where("uuid = ? AND badge_id = ?", userID, string(badgeID)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GORMBadgeRepository) FindByUser(userID string) ([]*badge.Assignment, error) {
	var models []BadgeModel
	if err := r.db.Where("uuid = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*badge.Assignment, 0, len(models))
	for _, m := range models {
		out = append(out, badge.ReconstructAssignment(m.UUID, badge.ID(m.BadgeID)))
	}
	return out, nil
}

// ===========================
// GORM wall MessageRepository
// ===========================

type GORMWallRepository struct {
	db *gorm.DB
}

func NewWallRepository(db *gorm.DB) wall.MessageRepository {
	return &GORMWallRepository{db: db}
}

func (r *GORMWallRepository) Append(m *wall.Message) error {
	return r.db.Create(messageToModel(m)).Error
}

func (r *GORMWallRepository) FindApproved() ([]*wall.Message, error) {
	var models []WallMessageModel
	if err := r.db.Where("approved = ?", true).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*wall.Message, 0, len(models))
	for i := range models {
		out = append(out, messageToDomain(&models[i]))
	}
	return out, nil
}

func (r *GORMWallRepository) FindAll() ([]*wall.Message, error) {
	var models []WallMessageModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*wall.Message, 0, len(models))
	for i := range models {
		out = append(out, messageToDomain(&models[i]))
	}
	return out, nil
}
