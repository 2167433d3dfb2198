package handler

import (
	"log/slog"
	"net/http"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/notify"
)

type NotificationHandler struct {
	poller *notify.Poller
	logger *slog.Logger
}

func NewNotificationHandler(poller *notify.Poller, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{poller: poller, logger: logger}
}

// List returns the expiring items that have not been surfaced yet. Reading
// them marks them notified, so a repeat request returns an empty array
// until new items enter the window.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.poller.PollExpiring(notify.DefaultWindowDays)
	if err != nil {
		h.logger.Error("poll expiring", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch notifications"})
		return
	}
	if items == nil {
		items = []model.FoodItem{}
	}
	writeJSON(w, http.StatusOK, items)
}
