package room

import "errors"

var (
	ErrValidation          = errors.New("missing or invalid field")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomExists          = errors.New("room code already taken")
	ErrPlayerNotFound      = errors.New("player not found in this room")
	ErrInvalidPhase        = errors.New("operation not allowed in the current phase")
	ErrInsufficientPlayers = errors.New("at least 3 players required")
	ErrNotHost             = errors.New("only the host can restart the game")
)
