// Package sqlstore is the database-backed store, mirroring the flat-file
// tables one to one. Decimal columns are stored as strings to keep the
// exact values written by the domain.
package sqlstore

import "time"

// ===========================
// GORM models
// ===========================

type UserModel struct {
	UUID     string `gorm:"primaryKey;column:uuid"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Fname    string
	Lname    string
	TeamID   string `gorm:"index;column:team_id"`
}

func (UserModel) TableName() string { return "users" }

type DonationModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	UUID         string `gorm:"index;column:uuid;not null"`
	Amount       string `gorm:"not null"`
	Path         string `gorm:"not null"`
	ImpactPoints string `gorm:"column:impact_points;not null"`
	Hours        string `gorm:"not null"`
	CreatedAt    string `gorm:"column:created_at"`
}

func (DonationModel) TableName() string { return "donations" }

type TeamModel struct {
	TeamID     string `gorm:"primaryKey;column:team_id"`
	Name       string `gorm:"not null"`
	LeaderUUID string `gorm:"index;column:leader_uuid;not null"`
}

func (TeamModel) TableName() string { return "teams" }

type ReferralModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	ReferrerID string `gorm:"index;column:referrer_id"`
	ReferredID string `gorm:"index;column:referred_id;not null"`
	Code       string `gorm:"not null"`
	HasDonated bool   `gorm:"column:has_donated;not null"`
}

func (ReferralModel) TableName() string { return "referrals" }

type BadgeModel struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	UUID    string `gorm:"index;column:uuid;not null"`
	BadgeID string `gorm:"column:badge_id;not null"`
}

func (BadgeModel) TableName() string { return "has_badges" }

type WallMessageModel struct {
	ID          string    `gorm:"primaryKey"`
	DisplayName string    `gorm:"column:display_name"`
	Message     string    `gorm:"not null"`
	Language    string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	Approved    bool      `gorm:"not null"`
}

func (WallMessageModel) TableName() string { return "hope_wall" }

// Models lists every table for automigration.
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&DonationModel{},
		&TeamModel{},
		&ReferralModel{},
		&BadgeModel{},
		&WallMessageModel{},
	}
}
