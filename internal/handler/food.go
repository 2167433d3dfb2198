package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/food"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/notify"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/store"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/websocket"
)

type FoodItemHandler struct {
	items  store.FoodItemStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewFoodItemHandler(items store.FoodItemStore, hub *websocket.Hub, logger *slog.Logger) *FoodItemHandler {
	return &FoodItemHandler{items: items, hub: hub, logger: logger}
}

func (h *FoodItemHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

func (h *FoodItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List()
	if err != nil {
		h.logger.Error("list food items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list food items"})
		return
	}
	if items == nil {
		items = []model.FoodItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FoodItemHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category is required"})
		return
	}

	items, err := h.items.ListByCategory(category)
	if err != nil {
		h.logger.Error("list food items by category", "category", category, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list food items"})
		return
	}
	if items == nil {
		items = []model.FoodItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FoodItemHandler) ListExpiring(w http.ResponseWriter, r *http.Request) {
	// Non-numeric or non-positive day counts fall back to the default window
	days, err := strconv.Atoi(r.PathValue("days"))
	if err != nil || days <= 0 {
		days = notify.DefaultWindowDays
	}

	items, err := h.items.ListExpiringWithin(days)
	if err != nil {
		h.logger.Error("list expiring food items", "days", days, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list expiring food items"})
		return
	}
	if items == nil {
		items = []model.FoodItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FoodItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	item, err := h.items.GetByID(id)
	if err != nil {
		h.logger.Error("get food item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get food item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "food item not found"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *FoodItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.InsertFoodItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// Auto-categorize if no category provided
	if req.Category == "" {
		req.Category = food.SuggestCategory(req.Name)
	}

	item, err := h.items.Create(req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("create food item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create food item"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityFoodItem, "created", item.ID, nil))

	writeJSON(w, http.StatusCreated, item)
}

func (h *FoodItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var patch model.FoodItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item, err := h.items.Update(id, patch)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("update food item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update food item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "food item not found"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityFoodItem, "updated", id, nil))

	writeJSON(w, http.StatusOK, item)
}

func (h *FoodItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existed, err := h.items.Delete(id)
	if err != nil {
		h.logger.Error("delete food item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete food item"})
		return
	}
	if !existed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "food item not found"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityFoodItem, "deleted", id, nil))

	w.WriteHeader(http.StatusNoContent)
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeValidationError(w http.ResponseWriter, verr *model.ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  verr.Error(),
		"fields": verr.Fields,
	})
}
