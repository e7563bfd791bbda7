package handlers

import (
	"net/http"
	"time"

	"zodis/internal/security"
	"zodis/internal/service"
)

// Router bundles the services behind the HTTP surface
type Router struct {
	Games      *service.GameService
	Stats      *service.StatsService
	Auth       *service.AuthService
	Production bool
}

// Handler builds the full request handler: method-routed endpoints, bearer
// auth, rate-limited auth routes and request logging.
func (rt *Router) Handler() http.Handler {
	gameHandler := NewGameHandler(rt.Games, rt.Production)
	statsHandler := NewStatisticsHandler(rt.Stats)
	authHandler := NewAuthHandler(rt.Auth)
	authLimiter := security.NewRateLimiter(20, time.Minute)

	mux := http.NewServeMux()

	mux.Handle("POST /api/game/{$}", OptionalAuth(rt.Auth, http.HandlerFunc(gameHandler.Create)))
	mux.Handle("PUT /api/game/{$}", OptionalAuth(rt.Auth, http.HandlerFunc(gameHandler.Update)))
	mux.Handle("POST /api/game/guess/{$}", OptionalAuth(rt.Auth, http.HandlerFunc(gameHandler.Guess)))

	// Everything else under /api/game/ is a JSON 404, whatever the method
	mux.HandleFunc("/api/game/", gameHandler.NotFound)

	mux.Handle("GET /api/statistics/{$}", RequireAuth(rt.Auth, http.HandlerFunc(statsHandler.Get)))

	mux.Handle("POST /api/auth/register/{$}", RateLimit(authLimiter, http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login/{$}", RateLimit(authLimiter, http.HandlerFunc(authHandler.Login)))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return Logging(mux)
}
