// Package poll is the pull side of the multi-device protocol: a client that
// snapshots a room on a fixed interval and reacts to phase changes. It holds
// no authority; a missed intermediate state is caught up on the next poll.
package poll

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"findthespy/internal/room"
)

// ErrRoomGone means the server reported the room missing on consecutive
// polls; the caller should stop and return the user to a safe entry point.
var ErrRoomGone = errors.New("room no longer exists")

// ErrRequestFailed wraps non-2xx mutation responses.
var ErrRequestFailed = errors.New("request rejected")

// notFoundTolerance is how many consecutive 404s Watch absorbs before
// giving up, so one transient miss does not kill a session.
const notFoundTolerance = 3

// Client talks to a find-the-spy server. Each Client carries its own opaque
// session id, generated once, which doubles as the hostId when this client
// creates a room.
type Client struct {
	base     string
	http     *http.Client
	interval time.Duration
	playerID string
}

func NewClient(base string, interval time.Duration) *Client {
	return &Client{
		base:     base,
		http:     &http.Client{Timeout: 10 * time.Second},
		interval: interval,
		playerID: uuid.NewString(),
	}
}

// PlayerID is this client's session identity.
func (c *Client) PlayerID() string { return c.playerID }

type roomEnvelope struct {
	Room *room.Room `json:"room"`
}

// GetRoom fetches one snapshot.
func (c *Client) GetRoom(ctx context.Context, id string) (*room.Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/rooms/"+id, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, room.ErrRoomNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	var env roomEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	return env.Room, nil
}

// Watch polls the room until ctx is cancelled and invokes onChange whenever
// the phase or status differs from the previous snapshot. Transient fetch
// errors are retried on the next tick; repeated NotFound ends the watch
// with ErrRoomGone.
func (c *Client) Watch(ctx context.Context, id string, onChange func(*room.Room)) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	var lastPhase room.Phase
	var lastStatus room.Status
	misses := 0

	for {
		r, err := c.GetRoom(ctx, id)
		switch {
		case errors.Is(err, room.ErrRoomNotFound):
			misses++
			if misses >= notFoundTolerance {
				return ErrRoomGone
			}
		case err != nil:
			// transient; retry on the next tick
		default:
			misses = 0
			if r.Phase != lastPhase || r.Status != lastStatus {
				lastPhase = r.Phase
				lastStatus = r.Status
				onChange(r)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// CreateRoom creates a room with this client as host.
func (c *Client) CreateRoom(ctx context.Context, hostName string, settings room.Settings) (*room.Room, error) {
	var env roomEnvelope
	err := c.post(ctx, "/rooms", map[string]any{
		"hostId":   c.playerID,
		"hostName": hostName,
		"settings": settings,
	}, &env)
	return env.Room, err
}

// Join adds a player to the room's roster.
func (c *Client) Join(ctx context.Context, id, playerName string) (*room.Room, error) {
	var env roomEnvelope
	err := c.post(ctx, "/rooms/"+id+"/join", map[string]any{"playerName": playerName}, &env)
	return env.Room, err
}

// ConfirmRole acknowledges the player has seen their role.
func (c *Client) ConfirmRole(ctx context.Context, id, playerName string) (room.ConfirmResult, error) {
	var res room.ConfirmResult
	err := c.post(ctx, "/rooms/"+id+"/confirm-role", map[string]any{"playerName": playerName}, &res)
	return res, err
}

// CastVote submits or replaces the player's vote.
func (c *Client) CastVote(ctx context.Context, id, voterName, votedForName string) (room.VoteResult, error) {
	var res room.VoteResult
	err := c.post(ctx, "/rooms/"+id+"/cast-vote", map[string]any{
		"voterName":    voterName,
		"votedForName": votedForName,
	}, &res)
	return res, err
}

// Restart asks the server to reset the room; only succeeds for the host.
func (c *Client) Restart(ctx context.Context, id string) (*room.Room, error) {
	var env roomEnvelope
	err := c.post(ctx, "/rooms/"+id+"/restart", map[string]any{"playerId": c.playerID}, &env)
	return env.Room, err
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return room.ErrRoomNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
