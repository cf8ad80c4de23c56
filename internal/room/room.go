package room

import (
	"context"
	"time"

	"findthespy/internal/words"
)

// Status is the coarse room lifecycle.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Phase is the fine-grained step within an active game.
type Phase string

const (
	PhaseWaiting   Phase = "waiting"
	PhaseRevealing Phase = "revealing"
	PhaseTimer     Phase = "timer"
	PhaseVoting    Phase = "voting"
	PhaseResults   Phase = "results"
)

// CanAdvanceTo reports whether the forward edge p -> next exists. Restart is
// the only backward edge and is handled separately by the Manager.
func (p Phase) CanAdvanceTo(next Phase) bool {
	switch p {
	case PhaseWaiting:
		return next == PhaseRevealing
	case PhaseRevealing:
		return next == PhaseTimer
	case PhaseTimer:
		return next == PhaseVoting
	case PhaseVoting:
		return next == PhaseResults
	default:
		return false
	}
}

// StatusFor maps a phase to the coarse status it implies.
func StatusFor(p Phase) Status {
	switch p {
	case PhaseWaiting:
		return StatusWaiting
	case PhaseResults:
		return StatusFinished
	default:
		return StatusPlaying
	}
}

// Settings is immutable room configuration, fixed at creation.
type Settings struct {
	TimerDuration int      `json:"timerDuration"` // minutes, advisory only
	IncludeRoles  bool     `json:"includeRoles"`
	Language      string   `json:"language"`
	Categories    []string `json:"categories,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

// PlayerRole is one player's secret assignment for the current round.
type PlayerRole struct {
	PlayerName   string `json:"playerName"`
	IsSpy        bool   `json:"isSpy"`
	Role         string `json:"role,omitempty"`
	HasConfirmed bool   `json:"hasConfirmed"`
}

// Vote records one player's accusation. At most one entry per voter.
type Vote struct {
	VoterName    string `json:"voterName"`
	VotedForName string `json:"votedForName"`
}

// Room is the authoritative multiplayer game record, stored as one document
// keyed by its code. Round-specific fields are nil while Status is waiting.
type Room struct {
	ID            string          `json:"id"`
	HostID        string          `json:"hostId"`
	Players       []string        `json:"players"`
	Settings      Settings        `json:"settings"`
	Status        Status          `json:"status"`
	Phase         Phase           `json:"gamePhase"`
	SecretItem    *words.Location `json:"secretItem,omitempty"`
	PlayerRoles   []PlayerRole    `json:"playerRoles,omitempty"`
	Votes         []Vote          `json:"votes,omitempty"`
	GameStartTime *time.Time      `json:"gameStartTime,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HasPlayer reports whether name is in the roster.
func (r *Room) HasPlayer(name string) bool {
	for _, p := range r.Players {
		if p == name {
			return true
		}
	}
	return false
}

// RoleOf returns the PlayerRole entry for name, if the game has started.
func (r *Room) RoleOf(name string) (PlayerRole, bool) {
	for _, pr := range r.PlayerRoles {
		if pr.PlayerName == name {
			return pr, true
		}
	}
	return PlayerRole{}, false
}

// AllConfirmed reports whether every player has confirmed their role.
// False for a room whose game has not started.
func (r *Room) AllConfirmed() bool {
	if len(r.PlayerRoles) == 0 {
		return false
	}
	for _, pr := range r.PlayerRoles {
		if !pr.HasConfirmed {
			return false
		}
	}
	return true
}

// AllVoted reports whether every name in the roster has a vote recorded.
// Votes from names outside the roster never count towards the quorum.
func (r *Room) AllVoted() bool {
	if len(r.Players) == 0 {
		return false
	}
	for _, p := range r.Players {
		found := false
		for _, v := range r.Votes {
			if v.VoterName == p {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SpyName returns the name of the spy for the current round.
func (r *Room) SpyName() string {
	for _, pr := range r.PlayerRoles {
		if pr.IsSpy {
			return pr.PlayerName
		}
	}
	return ""
}

// TallyVotes returns the player with the most votes, counting in roster
// order so that ties break towards the earlier-joined player. ok is false
// when no votes were cast for any roster member.
func TallyVotes(players []string, votes []Vote) (name string, ok bool) {
	best := -1
	for _, p := range players {
		n := 0
		for _, v := range votes {
			if v.VotedForName == p {
				n++
			}
		}
		if n > best && n > 0 {
			best = n
			name = p
			ok = true
		}
	}
	return name, ok
}

// SpyWins decides the multi-device outcome from final state: the spy wins
// iff the majority-voted player is not the spy.
func SpyWins(players []string, votes []Vote, spyName string) bool {
	voted, ok := TallyVotes(players, votes)
	if !ok {
		return true
	}
	return voted != spyName
}

// Store is the persistence abstraction the Manager depends on. Update must
// apply mutate atomically with respect to concurrent callers: the guard
// checks inside mutate and the resulting write are one indivisible
// operation, and a mutate error leaves the stored room untouched.
type Store interface {
	Create(ctx context.Context, r *Room) error
	Get(ctx context.Context, id string) (*Room, error)
	Update(ctx context.Context, id string, mutate func(*Room) error) (*Room, error)
}
