package http

import "findthespy/internal/room"

// CreateRoomRequest is the payload for POST /rooms.
type CreateRoomRequest struct {
	HostID   string        `json:"hostId"`
	HostName string        `json:"hostName"`
	Settings room.Settings `json:"settings"`
}

// JoinRoomRequest is the payload for POST /rooms/:id/join.
type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// ConfirmRoleRequest is the payload for POST /rooms/:id/confirm-role.
type ConfirmRoleRequest struct {
	PlayerName string `json:"playerName"`
}

// CastVoteRequest is the payload for POST /rooms/:id/cast-vote.
type CastVoteRequest struct {
	VoterName    string `json:"voterName"`
	VotedForName string `json:"votedForName"`
}

// RestartRequest is the payload for POST /rooms/:id/restart.
type RestartRequest struct {
	PlayerID string `json:"playerId"`
}

// PlayerRoleRequest is the payload for POST /rooms/:id/player-role.
type PlayerRoleRequest struct {
	PlayerName string `json:"playerName"`
}
