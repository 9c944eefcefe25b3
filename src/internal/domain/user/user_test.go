package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("id1", "", "hash", "A", "B")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("id1", "a@example.com", "", "A", "B")
	assert.ErrorIs(t, err, ErrInvalidPasswordHash)

	u, err := NewUser("id1", "a@example.com", "hash", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "id1", u.ID())
	assert.False(t, u.HasTeam())
}

func TestDisplayName_FallsBackToEmail(t *testing.T) {
	full := ReconstructUser("id1", "a@example.com", "h", "Ada", "Lovelace", "")
	assert.Equal(t, "Ada Lovelace", full.DisplayName())

	noLast := ReconstructUser("id1", "a@example.com", "h", "Ada", "", "")
	assert.Equal(t, "a@example.com", noLast.DisplayName())

	noFirst := ReconstructUser("id1", "a@example.com", "h", "", "Lovelace", "")
	assert.Equal(t, "a@example.com", noFirst.DisplayName())

	blank := ReconstructUser("id1", "a@example.com", "h", "  ", "Lovelace", "")
	assert.Equal(t, "a@example.com", blank.DisplayName())
}

func TestJoinAndLeaveTeam(t *testing.T) {
	u := ReconstructUser("id1", "a@example.com", "h", "A", "B", "")

	require.NoError(t, u.JoinTeam("team1"))
	assert.True(t, u.HasTeam())
	assert.Equal(t, "team1", u.TeamID())

	assert.ErrorIs(t, u.JoinTeam(""), ErrInvalidTeamID)

	u.LeaveTeam()
	assert.False(t, u.HasTeam())

	// Leaving twice is harmless
	u.LeaveTeam()
	assert.Equal(t, "", u.TeamID())
}
