package diagnostics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"foodapp/internal/store"

	"github.com/stretchr/testify/assert"
)

type mockBackend struct {
	PingFunc            func(ctx context.Context) error
	ListCollectionsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockBackend) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

func (m *mockBackend) ListCollections(ctx context.Context) ([]string, error) {
	return m.ListCollectionsFunc(ctx)
}

func (m *mockBackend) Name() string { return "mock" }

func TestCheck_Connected(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	_, err := mem.Create(ctx, "menuitem", map[string]interface{}{"name": "Soup"})
	assert.NoError(t, err)

	resp := NewService(mem, Settings{URLConfigured: true, NameConfigured: true}).Check(ctx)

	assert.Equal(t, "Running", resp.Backend)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
	assert.Equal(t, "Connected & Working (memory)", resp.Database)
	assert.Equal(t, []string{"menuitem"}, resp.Collections)
	assert.Equal(t, "Set", resp.DatabaseURL)
	assert.Equal(t, "Set", resp.DatabaseName)
}

func TestCheck_NoBackend(t *testing.T) {
	resp := NewService(nil, Settings{}).Check(context.Background())

	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Equal(t, "Available but not initialized", resp.Database)
	assert.Equal(t, "Not Set", resp.DatabaseURL)
	assert.NotNil(t, resp.Collections)
}

func TestCheck_PingFailureIsTruncated(t *testing.T) {
	backend := &mockBackend{
		PingFunc: func(ctx context.Context) error {
			return errors.New(strings.Repeat("x", 80))
		},
	}

	resp := NewService(backend, Settings{}).Check(context.Background())

	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Equal(t, "Error: "+strings.Repeat("x", 50), resp.Database)
	assert.Empty(t, resp.Collections)
}

func TestCheck_ListFailure(t *testing.T) {
	backend := &mockBackend{
		PingFunc: func(ctx context.Context) error { return nil },
		ListCollectionsFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("not authorized on foodapp")
		},
	}

	resp := NewService(backend, Settings{}).Check(context.Background())

	assert.Equal(t, "Connected", resp.ConnectionStatus)
	assert.Equal(t, "Connected but Error: not authorized on foodapp", resp.Database)
}

func TestCheck_CapsCollections(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	backend := &mockBackend{
		PingFunc:            func(ctx context.Context) error { return nil },
		ListCollectionsFunc: func(ctx context.Context) ([]string, error) { return names, nil },
	}

	resp := NewService(backend, Settings{}).Check(context.Background())

	assert.Len(t, resp.Collections, 10)
	assert.Equal(t, "a", resp.Collections[0])
}

func TestCheck_SlowBackendTimesOut(t *testing.T) {
	backend := &mockBackend{
		PingFunc: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	svc := NewService(backend, Settings{}).(*service)
	svc.timeout = 20 * time.Millisecond

	resp := svc.Check(context.Background())

	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Equal(t, "Error: context deadline exceeded", resp.Database)
}

func TestTruncate_Runes(t *testing.T) {
	msg := strings.Repeat("é", 60)
	assert.Equal(t, strings.Repeat("é", 50), truncate(msg))
	assert.Equal(t, "short", truncate("short"))
}
