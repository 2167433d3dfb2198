package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/store"
)

func setupTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(store.NewMemoryFoodStore(), store.NewMemoryShoppingStore(), time.Hour, 3, logger)
	return srv.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func isoDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestFoodItemLifecycle(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "POST", "/api/food-items", map[string]any{
		"name":            "Milk",
		"category":        "dairy",
		"quantity":        1,
		"unit":            "l",
		"expiration_date": isoDate(5),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[model.FoodItem](t, rec)
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	rec = doJSON(t, h, "GET", fmt.Sprintf("/api/food-items/%d", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	got := decode[model.FoodItem](t, rec)
	if got.Name != "Milk" || got.Category != "dairy" {
		t.Errorf("got = %+v, want Milk/dairy", got)
	}

	rec = doJSON(t, h, "PATCH", fmt.Sprintf("/api/food-items/%d", created.ID), map[string]any{"quantity": 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body.String())
	}
	patched := decode[model.FoodItem](t, rec)
	if patched.Quantity != 2 || patched.Name != "Milk" {
		t.Errorf("patched = %+v, want quantity 2, name untouched", patched)
	}

	rec = doJSON(t, h, "DELETE", fmt.Sprintf("/api/food-items/%d", created.ID), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, h, "GET", fmt.Sprintf("/api/food-items/%d", created.ID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestFoodItemListEmptyIsArray(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "GET", "/api/food-items", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestFoodItemCreateValidationError(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "", "quantity": -1})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decode[struct {
		Error  string             `json:"error"`
		Fields []model.FieldError `json:"fields"`
	}](t, rec)
	if resp.Error == "" {
		t.Error("expected error message")
	}
	fields := make(map[string]bool)
	for _, f := range resp.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"name", "quantity", "expiration_date"} {
		if !fields[want] {
			t.Errorf("missing field error for %q in %+v", want, resp.Fields)
		}
	}
}

func TestFoodItemCreateInvalidJSON(t *testing.T) {
	h := setupTestServer(t)

	req := httptest.NewRequest("POST", "/api/food-items", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestFoodItemAutoCategory(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "POST", "/api/food-items", map[string]any{
		"name":            "Whole Milk",
		"expiration_date": isoDate(4),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[model.FoodItem](t, rec)
	if created.Category != model.CategoryDairy {
		t.Errorf("category = %q, want auto-suggested %q", created.Category, model.CategoryDairy)
	}
}

func TestFoodItemListByCategory(t *testing.T) {
	h := setupTestServer(t)

	doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "Milk", "category": "dairy", "expiration_date": isoDate(3)})
	doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "Carrot", "category": "vegetables", "expiration_date": isoDate(6)})

	rec := doJSON(t, h, "GET", "/api/food-items/category/dairy", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	items := decode[[]model.FoodItem](t, rec)
	if len(items) != 1 || items[0].Name != "Milk" {
		t.Errorf("items = %+v, want just Milk", items)
	}
}

func TestFoodItemExpiringRoute(t *testing.T) {
	h := setupTestServer(t)

	doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "Chicken", "expiration_date": isoDate(1)})
	doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "Rice", "expiration_date": isoDate(30)})

	rec := doJSON(t, h, "GET", "/api/food-items/expiring/2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	items := decode[[]model.FoodItem](t, rec)
	if len(items) != 1 || items[0].Name != "Chicken" {
		t.Errorf("items = %+v, want just Chicken", items)
	}

	// Non-numeric and zero day counts fall back to the default window.
	for _, path := range []string{"/api/food-items/expiring/soon", "/api/food-items/expiring/0"} {
		rec = doJSON(t, h, "GET", path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		items = decode[[]model.FoodItem](t, rec)
		if len(items) != 1 {
			t.Errorf("%s items = %+v, want just Chicken", path, items)
		}
	}
}

func TestFoodItemBadID(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "GET", "/api/food-items/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("get status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, h, "DELETE", "/api/food-items/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete status = %d, want 404", rec.Code)
	}
	rec = doJSON(t, h, "PATCH", "/api/food-items/999", map[string]any{"quantity": 1})
	if rec.Code != http.StatusNotFound {
		t.Errorf("patch status = %d, want 404", rec.Code)
	}
}

func TestNotificationsMarkOnRead(t *testing.T) {
	h := setupTestServer(t)

	doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "Milk", "expiration_date": isoDate(1)})
	doJSON(t, h, "POST", "/api/food-items", map[string]any{"name": "Rice", "expiration_date": isoDate(30)})

	rec := doJSON(t, h, "GET", "/api/notifications", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	first := decode[[]model.FoodItem](t, rec)
	if len(first) != 1 || first[0].Name != "Milk" {
		t.Fatalf("first poll = %+v, want just Milk", first)
	}

	// Reading marked the item; the second poll is empty.
	rec = doJSON(t, h, "GET", "/api/notifications", nil)
	second := decode[[]model.FoodItem](t, rec)
	if len(second) != 0 {
		t.Errorf("second poll = %+v, want empty", second)
	}
}

func TestShoppingListLifecycle(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "POST", "/api/shopping-list", map[string]any{"name": "Bread", "unit": "loaf"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[model.ShoppingListItem](t, rec)
	if created.Completed {
		t.Error("new entry must not be completed")
	}

	rec = doJSON(t, h, "POST", fmt.Sprintf("/api/shopping-list/%d/toggle", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}
	toggled := decode[model.ShoppingListItem](t, rec)
	if !toggled.Completed {
		t.Error("expected completed after toggle")
	}

	rec = doJSON(t, h, "POST", "/api/shopping-list/clear-completed", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear status = %d", rec.Code)
	}
	cleared := decode[map[string]int64](t, rec)
	if cleared["cleared"] != 1 {
		t.Errorf("cleared = %d, want 1", cleared["cleared"])
	}

	rec = doJSON(t, h, "GET", "/api/shopping-list", nil)
	items := decode[[]model.ShoppingListItem](t, rec)
	if len(items) != 0 {
		t.Errorf("items = %+v, want empty list", items)
	}
}

func TestShoppingToggleMissing(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "POST", "/api/shopping-list/999/toggle", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	h := setupTestServer(t)

	rec := doJSON(t, h, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}
