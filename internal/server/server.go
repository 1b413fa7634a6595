package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skunkedgame/skunkd/internal/crafting"
	"github.com/skunkedgame/skunkd/internal/handler"
	"github.com/skunkedgame/skunkd/internal/honey"
	"github.com/skunkedgame/skunkd/internal/inventory"
	"github.com/skunkedgame/skunkd/internal/logger"
	"github.com/skunkedgame/skunkd/internal/metrics"
	"github.com/skunkedgame/skunkd/internal/transport"
)

// Server hosts the player websocket gateway plus the admin/debug HTTP
// surface over the same request pipeline.
type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. Admin routes sit under /api/v1 behind the
// API key; the websocket endpoint and health/metrics are open.
func NewServer(port int, apiKey string, invService inventory.Service, honeyService honey.Service, recipes *crafting.Catalog, gateway *transport.Gateway) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Handle("/metrics", promhttp.Handler())

	// Player transport
	r.Get("/ws", gateway.HandleWS)

	// Admin / debug API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware(apiKey))

		r.Route("/player", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterPlayer(invService))
			r.Post("/position", handler.HandleSetPosition(invService))
			r.Get("/inventory", handler.HandleGetInventory(invService))
		})

		r.Route("/item", func(r chi.Router) {
			r.Post("/add-resource", handler.HandleAddResource(invService))
			r.Post("/add-weapon", handler.HandleAddWeapon(invService))
			r.Post("/add-key-item", handler.HandleAddKeyItem(invService))
			r.Post("/move", handler.HandleMoveStack(invService))
			r.Post("/use", handler.HandleUseSlot(invService))
			r.Post("/drop", handler.HandleDrop(invService))
			r.Post("/craft", handler.HandleCraft(invService))
			r.Post("/pickup", handler.HandlePickup(invService))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(recipes))
			r.Get("/by-name", handler.HandleGetRecipe(recipes))
		})

		r.Route("/hive", func(r chi.Router) {
			r.Post("/register", handler.HandleAddHive(honeyService))
			r.Post("/harvest", handler.HandleHarvest(honeyService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// authMiddleware guards the admin API with a static key. An empty
// configured key disables the guard (dev mode).
func authMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" && r.Header.Get("X-API-Key") != apiKey {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metric scrapes are noise
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
