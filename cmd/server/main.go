package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	httpapi "findthespy/internal/api/http"
	"findthespy/internal/config"
	"findthespy/internal/room"
	"findthespy/internal/store"
	"findthespy/internal/words"
	"findthespy/migrations"
)

type roomStore interface {
	room.Store
	DeleteExpired(ctx context.Context) (int, error)
}

func main() {
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg := config.Load()

	var st roomStore
	if cfg.PostgresURL != "" {
		if err := migrations.Up(cfg.PostgresURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		pg, err := store.NewPostgresStore(context.Background(), cfg.PostgresURL, cfg.RoomRetention)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect failed")
		}
		defer pg.Close()
		st = pg
		log.Info().Msg("using postgres room store")
	} else {
		st = store.NewMemoryStore(cfg.RoomRetention)
		log.Info().Msg("using in-memory room store")
	}

	go janitor(st, cfg.CleanupInterval)

	m := room.NewManager(st, words.Default)
	r := httpapi.SetupRouter(m, httpapi.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      rate.Limit(cfg.RateLimitPerSec),
		RateBurst:      cfg.RateLimitBurst,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// janitor periodically reaps expired rooms. Expiry is already enforced on
// every read, so this only reclaims storage.
func janitor(st roomStore, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		n, err := st.DeleteExpired(context.Background())
		if err != nil {
			log.Warn().Err(err).Msg("cleanup failed")
			continue
		}
		if n > 0 {
			log.Info().Int("rooms", n).Msg("expired rooms removed")
		}
	}
}
