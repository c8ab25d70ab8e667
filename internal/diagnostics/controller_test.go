package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodapp/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestController() *Controller {
	return NewController(NewService(store.NewMemoryStore(), Settings{}), zap.NewNop())
}

func TestHandleRoot(t *testing.T) {
	w := httptest.NewRecorder()
	newTestController().HandleRoot(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Food App API is running"}`, w.Body.String())
}

func TestHandleSchema(t *testing.T) {
	w := httptest.NewRecorder()
	newTestController().HandleSchema(w, httptest.NewRequest(http.MethodGet, "/schema", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Schemas map[string]map[string]interface{} `json:"schemas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Schemas, 4)
	for _, kind := range []string{"user", "product", "menuitem", "order"} {
		assert.Contains(t, body.Schemas, kind)
	}
	assert.Contains(t, body.Schemas["order"]["properties"], "customer_name")
}

func TestHandleTest_NeverFails(t *testing.T) {
	c := NewController(NewService(&mockBackend{
		PingFunc: func(ctx context.Context) error { return errors.New("no reachable servers") },
	}, Settings{}), zap.NewNop())

	w := httptest.NewRecorder()
	c.HandleTest(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Equal(t, []interface{}{}, body["collections"])
	for _, key := range []string{"backend", "database", "database_url", "database_name"} {
		assert.Contains(t, body, key)
	}
}
