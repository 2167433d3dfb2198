package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/store"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/websocket"
)

type ShoppingListHandler struct {
	items  store.ShoppingListStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewShoppingListHandler(items store.ShoppingListStore, hub *websocket.Hub, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{items: items, hub: hub, logger: logger}
}

func (h *ShoppingListHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

func (h *ShoppingListHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List()
	if err != nil {
		h.logger.Error("list shopping items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list shopping items"})
		return
	}
	if items == nil {
		items = []model.ShoppingListItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ShoppingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.InsertShoppingListItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item, err := h.items.Create(req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("create shopping item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create shopping item"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityShoppingItem, "created", item.ID, nil))

	writeJSON(w, http.StatusCreated, item)
}

func (h *ShoppingListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var patch model.ShoppingListItemPatch
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
		h.logger.Error("update shopping item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update shopping item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "shopping item not found"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityShoppingItem, "updated", id, nil))

	writeJSON(w, http.StatusOK, item)
}

func (h *ShoppingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existed, err := h.items.Delete(id)
	if err != nil {
		h.logger.Error("delete shopping item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete shopping item"})
		return
	}
	if !existed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "shopping item not found"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityShoppingItem, "deleted", id, nil))

	w.WriteHeader(http.StatusNoContent)
}

func (h *ShoppingListHandler) ToggleCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	item, err := h.items.ToggleCompleted(id)
	if err != nil {
		h.logger.Error("toggle shopping item", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to toggle shopping item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "shopping item not found"})
		return
	}

	h.broadcast(websocket.NewMessage(websocket.EntityShoppingItem, "toggled", id, nil))

	writeJSON(w, http.StatusOK, item)
}

func (h *ShoppingListHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	count, err := h.items.ClearCompleted()
	if err != nil {
		h.logger.Error("clear completed shopping items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear completed items"})
		return
	}

	if count > 0 {
		h.broadcast(websocket.NewMessage(websocket.EntityShoppingItem, "cleared", 0, map[string]any{"cleared": count}))
	}

	writeJSON(w, http.StatusOK, map[string]int64{"cleared": count})
}
