package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/handler"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/middleware"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/notify"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/store"
	ws "github.com/NatalieStover/MyFridgeBuddy1/internal/websocket"
)

type Server struct {
	hub           *ws.Hub
	foodH         *handler.FoodItemHandler
	shoppingH     *handler.ShoppingListHandler
	notificationH *handler.NotificationHandler
	poller        *notify.Poller
	logger        *slog.Logger
}

// New wires the handlers, live-sync hub, and expiry poller over the given
// stores. The storage backend was already chosen by the caller; nothing
// here knows which one is active.
func New(items store.FoodItemStore, shopping store.ShoppingListStore, pollInterval time.Duration, windowDays int, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	poller := notify.NewPoller(items, hub, pollInterval, windowDays, logger.With("component", "notify"))

	return &Server{
		hub:           hub,
		foodH:         handler.NewFoodItemHandler(items, hub, logger.With("component", "food")),
		shoppingH:     handler.NewShoppingListHandler(shopping, hub, logger.With("component", "shopping")),
		notificationH: handler.NewNotificationHandler(poller, logger.With("component", "notifications")),
		poller:        poller,
		logger:        logger,
	}
}

// Poller returns the expiry poller so the caller can start and stop it.
func (s *Server) Poller() *notify.Poller {
	return s.poller
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Food item API routes
	mux.HandleFunc("GET /api/food-items", s.foodH.List)
	mux.HandleFunc("GET /api/food-items/category/{category}", s.foodH.ListByCategory)
	mux.HandleFunc("GET /api/food-items/expiring/{days}", s.foodH.ListExpiring)
	mux.HandleFunc("GET /api/food-items/{id}", s.foodH.Get)
	mux.HandleFunc("POST /api/food-items", s.foodH.Create)
	mux.HandleFunc("PATCH /api/food-items/{id}", s.foodH.Update)
	mux.HandleFunc("DELETE /api/food-items/{id}", s.foodH.Delete)

	// Expiring item notifications (reading marks items notified)
	mux.HandleFunc("GET /api/notifications", s.notificationH.List)

	// Shopping list API routes
	mux.HandleFunc("GET /api/shopping-list", s.shoppingH.List)
	mux.HandleFunc("POST /api/shopping-list", s.shoppingH.Create)
	mux.HandleFunc("PATCH /api/shopping-list/{id}", s.shoppingH.Update)
	mux.HandleFunc("DELETE /api/shopping-list/{id}", s.shoppingH.Delete)
	mux.HandleFunc("POST /api/shopping-list/{id}/toggle", s.shoppingH.ToggleCompleted)
	mux.HandleFunc("POST /api/shopping-list/clear-completed", s.shoppingH.ClearCompleted)

	mux.HandleFunc("GET /health", s.healthHandler)

	// WebSocket live sync
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
