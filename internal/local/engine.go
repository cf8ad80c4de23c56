// Package local is the single-device, pass-and-play analogue of the room
// lifecycle: the same game semantics collapsed into one in-memory engine
// with no storage and no concurrent callers. The operator holding the
// device decides when each phase ends, so there are no quorums here: the
// first recorded vote or spy guess finishes the game.
package local

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"findthespy/internal/words"
)

type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhaseReveal  Phase = "reveal"
	PhasePlaying Phase = "playing"
	PhaseVoting  Phase = "voting"
	PhaseResults Phase = "results"
)

var (
	ErrInvalidPhase        = errors.New("operation not allowed in the current phase")
	ErrInsufficientPlayers = errors.New("at least 3 players required")
	ErrPlayerNotFound      = errors.New("no such player")
)

// Player is ephemeral per-session state, destroyed on Reset.
type Player struct {
	ID          string
	Name        string
	IsSpy       bool
	HasSeenRole bool
	Role        string
}

// Settings mirrors the multi-device room settings.
type Settings struct {
	TimerDuration time.Duration
	IncludeRoles  bool
	Language      string
	Categories    []string
	Difficulty    string
}

// Outcome is the final verdict of a local game.
type Outcome struct {
	SpyWins bool
	SpyName string
	// Exactly one of the following is set, depending on how voting ended.
	VotedName   string
	GuessedItem string
}

// Engine runs one pass-and-play session. Not safe for concurrent use; the
// single device is the only caller.
type Engine struct {
	phase       Phase
	settings    Settings
	players     []Player
	secret      *words.Location
	spyID       string
	revealIndex int
	gameStart   time.Time
	votedID     string
	spyGuess    string
	provider    words.Provider
	rng         *rand.Rand
}

func NewEngine(provider words.Provider, settings Settings) *Engine {
	if settings.Language == "" {
		settings.Language = "en"
	}
	return &Engine{
		phase:    PhaseSetup,
		settings: settings,
		provider: provider,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *Engine) Phase() Phase      { return e.phase }
func (e *Engine) Players() []Player { return e.players }

// SecretItem is only visible once the game has started.
func (e *Engine) SecretItem() *words.Location { return e.secret }

// SetPlayers replaces the roster. Only valid before the game starts.
func (e *Engine) SetPlayers(names []string) error {
	if e.phase != PhaseSetup {
		return ErrInvalidPhase
	}
	e.players = make([]Player, len(names))
	for i, name := range names {
		e.players[i] = Player{ID: uuid.NewString(), Name: name}
	}
	return nil
}

// Start assigns the spy and sub-roles and enters the reveal phase.
func (e *Engine) Start() error {
	if e.phase != PhaseSetup {
		return ErrInvalidPhase
	}
	if len(e.players) < 3 {
		return ErrInsufficientPlayers
	}
	item, err := e.provider.Select(e.settings.Categories, e.settings.Difficulty)
	if err != nil {
		return err
	}

	spyIdx := e.rng.Intn(len(e.players))
	remaining := append([]string(nil), item.Roles...)
	for i := range e.players {
		p := &e.players[i]
		p.IsSpy = i == spyIdx
		p.HasSeenRole = false
		p.Role = ""
		if e.settings.IncludeRoles && !p.IsSpy && len(item.Roles) > 0 {
			if len(remaining) > 0 {
				j := e.rng.Intn(len(remaining))
				p.Role = remaining[j]
				remaining = append(remaining[:j], remaining[j+1:]...)
			} else {
				p.Role = item.Roles[e.rng.Intn(len(item.Roles))]
			}
		}
	}
	e.secret = &item
	e.spyID = e.players[spyIdx].ID
	e.revealIndex = 0
	e.phase = PhaseReveal
	return nil
}

// CurrentReveal returns the player whose turn it is to look at their card.
func (e *Engine) CurrentReveal() (*Player, error) {
	if e.phase != PhaseReveal {
		return nil, ErrInvalidPhase
	}
	return &e.players[e.revealIndex], nil
}

// NextReveal marks the current player as having seen their role and hands
// the device to the next one. Reaching the end of the roster starts the
// playing phase and the advisory timer.
func (e *Engine) NextReveal() error {
	if e.phase != PhaseReveal {
		return ErrInvalidPhase
	}
	e.players[e.revealIndex].HasSeenRole = true
	e.revealIndex++
	if e.revealIndex >= len(e.players) {
		e.phase = PhasePlaying
		e.gameStart = time.Now()
	}
	return nil
}

// Deadline reports when the advisory timer runs out. The engine never
// enforces it; display only.
func (e *Engine) Deadline() (time.Time, bool) {
	if e.gameStart.IsZero() {
		return time.Time{}, false
	}
	return e.gameStart.Add(e.settings.TimerDuration), true
}

// EndGame closes discussion and opens voting.
func (e *Engine) EndGame() error {
	if e.phase != PhasePlaying {
		return ErrInvalidPhase
	}
	e.phase = PhaseVoting
	return nil
}

// VoteForSpy records the table's verdict and ends the game immediately.
func (e *Engine) VoteForSpy(playerID string) error {
	if e.phase != PhaseVoting {
		return ErrInvalidPhase
	}
	found := false
	for _, p := range e.players {
		if p.ID == playerID {
			found = true
			break
		}
	}
	if !found {
		return ErrPlayerNotFound
	}
	e.votedID = playerID
	e.phase = PhaseResults
	return nil
}

// GuessItem records the spy's guess of the secret item and ends the game
// immediately.
func (e *Engine) GuessItem(name string) error {
	if e.phase != PhaseVoting {
		return ErrInvalidPhase
	}
	e.spyGuess = name
	e.phase = PhaseResults
	return nil
}

// Outcome computes the verdict from the final state: the spy wins if the
// table voted for somebody else, or if the spy's guess matches the secret
// item's canonical name.
func (e *Engine) Outcome() (Outcome, error) {
	if e.phase != PhaseResults {
		return Outcome{}, ErrInvalidPhase
	}
	out := Outcome{}
	for _, p := range e.players {
		if p.IsSpy {
			out.SpyName = p.Name
		}
	}
	if e.votedID != "" {
		out.SpyWins = e.votedID != e.spyID
		for _, p := range e.players {
			if p.ID == e.votedID {
				out.VotedName = p.Name
			}
		}
		return out, nil
	}
	out.GuessedItem = e.spyGuess
	canonical := e.secret.Name("en")
	out.SpyWins = strings.EqualFold(strings.TrimSpace(e.spyGuess), canonical)
	return out, nil
}

// Reset discards the whole session, roster included.
func (e *Engine) Reset() {
	e.phase = PhaseSetup
	e.players = nil
	e.secret = nil
	e.spyID = ""
	e.revealIndex = 0
	e.gameStart = time.Time{}
	e.votedID = ""
	e.spyGuess = ""
}
