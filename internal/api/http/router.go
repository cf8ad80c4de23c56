package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"findthespy/internal/room"
)

// RouterOptions carries the transport-level knobs from config.
type RouterOptions struct {
	AllowedOrigins []string
	RateLimit      rate.Limit
	RateBurst      int
}

// SetupRouter wires the room endpoints.
func SetupRouter(m *room.Manager, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		}))
	}

	r.GET("/health", func(c *gin.Context) { c.String(200, "healthy") })

	rooms := r.Group("/rooms")
	if opts.RateLimit > 0 {
		rooms.Use(RateLimit(opts.RateLimit, opts.RateBurst))
	}

	rooms.POST("", CreateRoomHandler(m))
	rooms.GET("/:id", GetRoomHandler(m))
	rooms.POST("/:id/join", JoinRoomHandler(m))
	rooms.POST("/:id/start", StartGameHandler(m))
	rooms.POST("/:id/confirm-role", ConfirmRoleHandler(m))
	rooms.POST("/:id/cast-vote", CastVoteHandler(m))
	rooms.POST("/:id/start-voting", StartVotingHandler(m))
	rooms.POST("/:id/restart", RestartHandler(m))
	rooms.POST("/:id/player-role", PlayerRoleHandler(m))

	return r
}
