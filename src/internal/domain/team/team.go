package team

// ===========================
// Team entity
// ===========================

// TeamIDLength is the generated identifier length for team records.
const TeamIDLength = 8

// Team is a named group of supporters.
//
// Membership is not stored here: users carry a denormalized team_id, so a
// team's member list is computed by scanning the user table. The leader id
// may reference a user who is not on the team; this is not validated.
type Team struct {
	id       string
	name     string
	leaderID string
}

// NewTeam creates a team led by the given user.
func NewTeam(id, name, leaderID string) (*Team, error) {
	if name == "" {
		return nil, ErrInvalidTeamName
	}
	if leaderID == "" {
		return nil, ErrInvalidLeaderID
	}
	return &Team{id: id, name: name, leaderID: leaderID}, nil
}

// ReconstructTeam rebuilds a team loaded from storage.
func ReconstructTeam(id, name, leaderID string) *Team {
	return &Team{id: id, name: name, leaderID: leaderID}
}

func (t *Team) ID() string       { return t.id }
func (t *Team) Name() string     { return t.name }
func (t *Team) LeaderID() string { return t.leaderID }

// TransferLeadership hands the team to a new leader.
func (t *Team) TransferLeadership(newLeaderID string) error {
	if newLeaderID == "" {
		return ErrInvalidLeaderID
	}
	t.leaderID = newLeaderID
	return nil
}

// IsLedBy reports whether the given user leads this team.
func (t *Team) IsLedBy(userID string) bool {
	return t.leaderID == userID
}
