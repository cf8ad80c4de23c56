package room

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"findthespy/internal/words"
)

const minPlayers = 3

// Manager enforces the room lifecycle: phase transitions, role assignment,
// confirmation and voting quorums. Every mutation is a single atomic store
// update, so concurrent callers cannot both pass a guard.
type Manager struct {
	store    Store
	provider words.Provider
}

func NewManager(s Store, p words.Provider) *Manager {
	return &Manager{store: s, provider: p}
}

// Create allocates a fresh room with the host as the only player.
func (m *Manager) Create(ctx context.Context, hostID, hostName string, settings Settings) (*Room, error) {
	if hostID == "" || hostName == "" || settings.TimerDuration <= 0 {
		return nil, ErrValidation
	}
	if settings.Language == "" {
		settings.Language = "en"
	}

	// Code collisions are rare with a 32^6 space; retry a few times anyway.
	for attempt := 0; attempt < 5; attempt++ {
		r := &Room{
			ID:        randCode(6),
			HostID:    hostID,
			Players:   []string{hostName},
			Settings:  settings,
			Status:    StatusWaiting,
			Phase:     PhaseWaiting,
			CreatedAt: time.Now(),
		}
		err := m.store.Create(ctx, r)
		if err == nil {
			log.Info().Str("room", r.ID).Str("host", hostName).Msg("room created")
			return r, nil
		}
		if !errors.Is(err, ErrRoomExists) {
			return nil, err
		}
	}
	return nil, ErrRoomExists
}

// Get returns a read-only snapshot for polling clients.
func (m *Manager) Get(ctx context.Context, id string) (*Room, error) {
	return m.store.Get(ctx, id)
}

// Join appends playerName to the roster iff the room is still waiting.
// Joining with a name already on the roster is an idempotent success. The
// guard and the append run inside one atomic store update, so a join racing
// a concurrent Start can never slip a player into a running game.
func (m *Manager) Join(ctx context.Context, id, playerName string) (*Room, error) {
	if playerName == "" {
		return nil, ErrValidation
	}
	return m.store.Update(ctx, id, func(r *Room) error {
		if r.Status != StatusWaiting {
			return ErrInvalidPhase
		}
		if r.HasPlayer(playerName) {
			return nil // already joined
		}
		r.Players = append(r.Players, playerName)
		return nil
	})
}

// Start begins a round: picks the spy uniformly at random, selects the
// secret item, assigns sub-roles and moves the room to the revealing phase.
func (m *Manager) Start(ctx context.Context, id string) (*Room, error) {
	return m.store.Update(ctx, id, func(r *Room) error {
		if r.Status != StatusWaiting {
			return ErrInvalidPhase
		}
		if len(r.Players) < minPlayers {
			return ErrInsufficientPlayers
		}

		item, err := m.provider.Select(r.Settings.Categories, r.Settings.Difficulty)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		spyIdx := rng.Intn(len(r.Players))

		r.PlayerRoles = assignRoles(rng, r.Players, spyIdx, item, r.Settings.IncludeRoles)
		r.SecretItem = &item
		r.Status = StatusPlaying
		r.Phase = PhaseRevealing
		r.GameStartTime = nil
		r.Votes = nil
		return nil
	})
}

// assignRoles builds the PlayerRoles slice. Non-spy players draw sub-roles
// without replacement until the item's role list is exhausted, then draws
// repeat so a large roster never blocks the game.
func assignRoles(rng *rand.Rand, players []string, spyIdx int, item words.Location, includeRoles bool) []PlayerRole {
	roles := make([]PlayerRole, len(players))
	remaining := append([]string(nil), item.Roles...)
	for i, name := range players {
		pr := PlayerRole{PlayerName: name, IsSpy: i == spyIdx}
		if includeRoles && !pr.IsSpy && len(item.Roles) > 0 {
			if len(remaining) > 0 {
				j := rng.Intn(len(remaining))
				pr.Role = remaining[j]
				remaining = append(remaining[:j], remaining[j+1:]...)
			} else {
				pr.Role = item.Roles[rng.Intn(len(item.Roles))]
			}
		}
		roles[i] = pr
	}
	return roles
}

// ConfirmResult reports the confirmation quorum after a ConfirmRole call.
type ConfirmResult struct {
	AllConfirmed bool  `json:"allConfirmed"`
	Phase        Phase `json:"gamePhase"`
}

// ConfirmRole marks the player's role as seen. When the last player
// confirms, the same atomic update advances the phase to timer and stamps
// the game start time, so a last-confirmer race can neither stall the phase
// nor stamp the clock twice.
func (m *Manager) ConfirmRole(ctx context.Context, id, playerName string) (ConfirmResult, error) {
	if playerName == "" {
		return ConfirmResult{}, ErrValidation
	}
	r, err := m.store.Update(ctx, id, func(r *Room) error {
		if len(r.PlayerRoles) == 0 {
			return ErrInvalidPhase
		}
		found := false
		for i := range r.PlayerRoles {
			if r.PlayerRoles[i].PlayerName == playerName {
				r.PlayerRoles[i].HasConfirmed = true
				found = true
				break
			}
		}
		if !found {
			return ErrPlayerNotFound
		}
		if r.AllConfirmed() && r.Phase == PhaseRevealing {
			now := time.Now()
			r.Phase = PhaseTimer
			r.GameStartTime = &now
		}
		return nil
	})
	if err != nil {
		return ConfirmResult{}, err
	}
	return ConfirmResult{AllConfirmed: r.AllConfirmed(), Phase: r.Phase}, nil
}

// StartVoting moves the room from the timer phase to voting. The host may
// call this before the advisory timer runs out; the server never enforces
// the timer itself.
func (m *Manager) StartVoting(ctx context.Context, id string) (*Room, error) {
	return m.store.Update(ctx, id, func(r *Room) error {
		if r.Phase != PhaseTimer {
			return ErrInvalidPhase
		}
		r.Phase = PhaseVoting
		r.Votes = []Vote{}
		return nil
	})
}

// VoteResult reports the voting quorum after a CastVote call.
type VoteResult struct {
	AllVoted bool  `json:"allVoted"`
	Phase    Phase `json:"gamePhase"`
}

// CastVote upserts the voter's accusation: voting again replaces the earlier
// vote rather than adding a second entry. Both voter and target must be on
// the roster. When the last roster member votes, the same atomic update
// moves the room to results and finishes the game.
func (m *Manager) CastVote(ctx context.Context, id, voterName, votedForName string) (VoteResult, error) {
	if voterName == "" || votedForName == "" {
		return VoteResult{}, ErrValidation
	}
	r, err := m.store.Update(ctx, id, func(r *Room) error {
		if r.Phase != PhaseVoting {
			return ErrInvalidPhase
		}
		if !r.HasPlayer(voterName) || !r.HasPlayer(votedForName) {
			return ErrPlayerNotFound
		}
		upserted := false
		for i := range r.Votes {
			if r.Votes[i].VoterName == voterName {
				r.Votes[i].VotedForName = votedForName
				upserted = true
				break
			}
		}
		if !upserted {
			r.Votes = append(r.Votes, Vote{VoterName: voterName, VotedForName: votedForName})
		}
		if r.AllVoted() {
			r.Phase = PhaseResults
			r.Status = StatusFinished
		}
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}
	return VoteResult{AllVoted: r.AllVoted(), Phase: r.Phase}, nil
}

// Restart resets the room to waiting for a new round with the same roster.
// Host only.
func (m *Manager) Restart(ctx context.Context, id, callerID string) (*Room, error) {
	if callerID == "" {
		return nil, ErrValidation
	}
	return m.store.Update(ctx, id, func(r *Room) error {
		if r.HostID != callerID {
			return ErrNotHost
		}
		r.Status = StatusWaiting
		r.Phase = PhaseWaiting
		r.SecretItem = nil
		r.PlayerRoles = nil
		r.Votes = nil
		r.GameStartTime = nil
		return nil
	})
}

// PlayerView is what a single player is allowed to see about their own
// assignment. The secret item is withheld from the spy.
type PlayerView struct {
	PlayerName   string          `json:"playerName"`
	IsSpy        bool            `json:"isSpy"`
	Role         string          `json:"role,omitempty"`
	SecretItem   *words.Location `json:"secretItem"`
	HasConfirmed bool            `json:"hasConfirmed"`
	Phase        Phase           `json:"gamePhase"`
}

// PlayerRole returns the named player's own view of the current round.
func (m *Manager) PlayerRole(ctx context.Context, id, playerName string) (PlayerView, error) {
	if playerName == "" {
		return PlayerView{}, ErrValidation
	}
	r, err := m.store.Get(ctx, id)
	if err != nil {
		return PlayerView{}, err
	}
	if len(r.PlayerRoles) == 0 {
		return PlayerView{}, ErrInvalidPhase
	}
	pr, ok := r.RoleOf(playerName)
	if !ok {
		return PlayerView{}, ErrPlayerNotFound
	}
	view := PlayerView{
		PlayerName:   pr.PlayerName,
		IsSpy:        pr.IsSpy,
		Role:         pr.Role,
		HasConfirmed: pr.HasConfirmed,
		Phase:        r.Phase,
	}
	if !pr.IsSpy {
		view.SecretItem = r.SecretItem
	}
	return view, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
