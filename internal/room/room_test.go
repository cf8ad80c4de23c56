package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseCanAdvanceTo(t *testing.T) {
	t.Parallel()

	forward := []Phase{PhaseWaiting, PhaseRevealing, PhaseTimer, PhaseVoting, PhaseResults}
	for i, from := range forward {
		for j, to := range forward {
			want := j == i+1
			assert.Equal(t, want, from.CanAdvanceTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusWaiting, StatusFor(PhaseWaiting))
	assert.Equal(t, StatusPlaying, StatusFor(PhaseRevealing))
	assert.Equal(t, StatusPlaying, StatusFor(PhaseTimer))
	assert.Equal(t, StatusPlaying, StatusFor(PhaseVoting))
	assert.Equal(t, StatusFinished, StatusFor(PhaseResults))
}

func TestTallyVotes(t *testing.T) {
	t.Parallel()

	players := []string{"ana", "ben", "cleo"}

	testCases := []struct {
		desc     string
		votes    []Vote
		wantName string
		wantOK   bool
	}{
		{
			desc:   "no votes",
			wantOK: false,
		},
		{
			desc: "clear majority",
			votes: []Vote{
				{VoterName: "ana", VotedForName: "ben"},
				{VoterName: "ben", VotedForName: "ana"},
				{VoterName: "cleo", VotedForName: "ben"},
			},
			wantName: "ben",
			wantOK:   true,
		},
		{
			desc: "tie breaks towards earlier roster slot",
			votes: []Vote{
				{VoterName: "ana", VotedForName: "cleo"},
				{VoterName: "ben", VotedForName: "ana"},
			},
			wantName: "ana",
			wantOK:   true,
		},
		{
			desc: "votes for strangers never win",
			votes: []Vote{
				{VoterName: "ana", VotedForName: "zorro"},
				{VoterName: "ben", VotedForName: "cleo"},
			},
			wantName: "cleo",
			wantOK:   true,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			name, ok := TallyVotes(players, tC.votes)
			assert.Equal(t, tC.wantOK, ok)
			if tC.wantOK {
				assert.Equal(t, tC.wantName, name)
			}
		})
	}
}

func TestSpyWins(t *testing.T) {
	t.Parallel()

	players := []string{"ana", "ben", "cleo"}
	votes := []Vote{
		{VoterName: "ana", VotedForName: "ben"},
		{VoterName: "ben", VotedForName: "ana"},
		{VoterName: "cleo", VotedForName: "ben"},
	}

	assert.False(t, SpyWins(players, votes, "ben"), "majority caught the spy")
	assert.True(t, SpyWins(players, votes, "cleo"), "majority voted an innocent")
}

func TestAllVoted(t *testing.T) {
	t.Parallel()

	r := &Room{Players: []string{"ana", "ben"}}
	assert.False(t, r.AllVoted())

	r.Votes = []Vote{{VoterName: "ana", VotedForName: "ben"}}
	assert.False(t, r.AllVoted())

	// A vote from a non-member does not complete the quorum.
	r.Votes = append(r.Votes, Vote{VoterName: "zorro", VotedForName: "ana"})
	assert.False(t, r.AllVoted())

	r.Votes = append(r.Votes, Vote{VoterName: "ben", VotedForName: "ana"})
	assert.True(t, r.AllVoted())
}

func TestAllConfirmed(t *testing.T) {
	t.Parallel()

	r := &Room{}
	assert.False(t, r.AllConfirmed(), "no roles means no quorum")

	r.PlayerRoles = []PlayerRole{
		{PlayerName: "ana", HasConfirmed: true},
		{PlayerName: "ben"},
	}
	assert.False(t, r.AllConfirmed())

	r.PlayerRoles[1].HasConfirmed = true
	assert.True(t, r.AllConfirmed())
}
