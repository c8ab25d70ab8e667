package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodapp/internal/commons"
	"foodapp/internal/config"
	"foodapp/internal/diagnostics"
	"foodapp/internal/infrastructure/kafka"
	"foodapp/internal/menu"
	"foodapp/internal/order"
	"foodapp/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	mem := store.NewMemoryStore()
	logger := zap.NewNop()

	cfg := config.Config{
		Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		Store:  config.StoreConfig{Driver: config.DriverMemory, Name: "foodapp"},
		Menu:   config.MenuConfig{SeedOnEmpty: true},
	}

	return NewRouter(cfg.Server, Controllers{
		Diagnostics: diagnostics.NewModule(mem, cfg, logger),
		Menu:        menu.NewModule(mem, cfg.Menu, logger),
		Orders:      order.NewModule(mem, kafka.NopPublisher{}, logger),
	}, logger)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Root(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Food App API is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(commons.TraceHeader))
}

func TestRouter_TraceIDIsEchoed(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/orders?limit=0", nil)
	req.Header.Set(commons.TraceHeader, "given-trace")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "given-trace", w.Header().Get(commons.TraceHeader))
	assert.Contains(t, w.Body.String(), `"traceId":"given-trace"`)
}

func TestRouter_OrderFlow(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 4)

	ids := map[string]string{}
	for _, item := range items {
		ids[item["name"].(string)] = item["id"].(string)
	}

	body := `{"customer_name":"Ada","customer_phone":"555-0100","customer_address":"1 Loop Rd","items":[` +
		`{"menu_item_id":"` + ids["Margherita Pizza"] + `","quantity":2},` +
		`{"menu_item_id":"` + ids["Iced Lemon Tea"] + `","quantity":1}],"total":1}`
	w = do(t, h, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var receipt map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.Equal(t, 25.48, receipt["total"])
	assert.Equal(t, "pending", receipt["status"])

	w = do(t, h, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, receipt["id"], orders[0]["id"])
}

func TestRouter_CreateMenuItem(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/menu", `{"name":"Tiramisu","price":6.5,"category":"Desserts"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodPost, "/menu", `{"name":"Tiramisu","price":-1,"category":"Desserts"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"price"`)
}

func TestRouter_UnknownMenuItem(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/orders",
		`{"customer_name":"Ada","customer_phone":"555","customer_address":"1 Loop Rd","items":[{"menu_item_id":"nonexistent","quantity":1}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Menu item not found: nonexistent")
	assert.Contains(t, w.Body.String(), "MENU_ITEM_NOT_FOUND")
}

func TestRouter_DiagnosticsAndSchema(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connection_status":"Connected"`)

	w = do(t, h, http.MethodGet, "/schema", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"menuitem"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/orders", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodDelete, "/menu", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
