package badge

// ===========================
// Badge identifiers
// ===========================

// ID is one of the 11 fixed badge identifiers.
type ID string

const (
	FirstDonation       ID = "first_donation"
	WisdomSupporter     ID = "wisdom_supporter"
	CourageSupporter    ID = "courage_supporter"
	ProtectionSupporter ID = "protection_supporter"
	ServiceSupporter    ID = "service_supporter"
	AllPaths            ID = "all_paths"
	HundredClub         ID = "hundred_club"
	FiveHundredClub     ID = "five_hundred_club"
	ServiceVolunteer    ID = "service_volunteer"
	TeamPlayer          ID = "team_player"
	TeamLeader          ID = "team_leader"
)

// AllBadgeIDs lists every badge in award-evaluation order.
var AllBadgeIDs = []ID{
	FirstDonation,
	WisdomSupporter,
	CourageSupporter,
	ProtectionSupporter,
	ServiceSupporter,
	AllPaths,
	HundredClub,
	FiveHundredClub,
	ServiceVolunteer,
	TeamPlayer,
	TeamLeader,
}

// IsKnown reports whether the identifier names a defined badge.
func IsKnown(id ID) bool {
	for _, b := range AllBadgeIDs {
		if b == id {
			return true
		}
	}
	return false
}

// ===========================
// Badge assignment
// ===========================

// Assignment records that a user holds a badge. A badge once assigned is
// never removed, even if the user later stops qualifying.
type Assignment struct {
	userID  string
	badgeID ID
}

// NewAssignment creates a user-badge assignment.
func NewAssignment(userID string, badgeID ID) (*Assignment, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !IsKnown(badgeID) {
		return nil, ErrUnknownBadge.WithContext("badge_id", string(badgeID))
	}
	return &Assignment{userID: userID, badgeID: badgeID}, nil
}

// ReconstructAssignment rebuilds an assignment loaded from storage.
func ReconstructAssignment(userID string, badgeID ID) *Assignment {
	return &Assignment{userID: userID, badgeID: badgeID}
}

func (a *Assignment) UserID() string { return a.userID }
func (a *Assignment) BadgeID() ID    { return a.badgeID }
