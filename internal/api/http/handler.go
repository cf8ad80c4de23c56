package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"findthespy/internal/room"
	"findthespy/internal/words"
)

// CreateRoomHandler handles POST /rooms.
func CreateRoomHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		r, err := m.Create(c.Request.Context(), req.HostID, req.HostName, req.Settings)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// GetRoomHandler handles GET /rooms/:id, the polling snapshot read.
func GetRoomHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := m.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// JoinRoomHandler handles POST /rooms/:id/join.
func JoinRoomHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		r, err := m.Join(c.Request.Context(), c.Param("id"), req.PlayerName)
		if err != nil {
			// A join rejected for any reason reads the same to the player:
			// the room is gone or the game already started.
			if errors.Is(err, room.ErrInvalidPhase) || errors.Is(err, room.ErrRoomNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "room not found or already started"})
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// StartGameHandler handles POST /rooms/:id/start.
func StartGameHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := m.Start(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// ConfirmRoleHandler handles POST /rooms/:id/confirm-role.
func ConfirmRoleHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmRoleRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		res, err := m.ConfirmRole(c.Request.Context(), c.Param("id"), req.PlayerName)
		if err != nil {
			if errors.Is(err, room.ErrInvalidPhase) {
				c.JSON(http.StatusNotFound, gin.H{"error": "room not found or game not started"})
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"allConfirmed": res.AllConfirmed, "gamePhase": res.Phase})
	}
}

// CastVoteHandler handles POST /rooms/:id/cast-vote.
func CastVoteHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CastVoteRequest
		if err := c.BindJSON(&req); err != nil || req.VoterName == "" || req.VotedForName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "voterName and votedForName required"})
			return
		}
		res, err := m.CastVote(c.Request.Context(), c.Param("id"), req.VoterName, req.VotedForName)
		if err != nil {
			if errors.Is(err, room.ErrInvalidPhase) {
				c.JSON(http.StatusNotFound, gin.H{"error": "room not found or not in voting phase"})
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"allVoted": res.AllVoted, "gamePhase": res.Phase})
	}
}

// StartVotingHandler handles POST /rooms/:id/start-voting.
func StartVotingHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := m.StartVoting(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// RestartHandler handles POST /rooms/:id/restart.
func RestartHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RestartRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId required"})
			return
		}
		r, err := m.Restart(c.Request.Context(), c.Param("id"), req.PlayerID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// PlayerRoleHandler handles POST /rooms/:id/player-role. The response hides
// the secret item from the spy.
func PlayerRoleHandler(m *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayerRoleRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		view, err := m.PlayerRole(c.Request.Context(), c.Param("id"), req.PlayerName)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// writeError maps engine errors onto the HTTP contract.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, room.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, room.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, room.ErrInvalidPhase), errors.Is(err, room.ErrInsufficientPlayers):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, room.ErrNotHost):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, words.ErrNoMatch):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
