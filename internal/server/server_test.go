package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"foodapp/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_AppliesConfig(t *testing.T) {
	cfg := config.ServerConfig{
		Port:         9090,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 4 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	s := New(cfg, http.NotFoundHandler(), zap.NewNop())

	assert.Equal(t, ":9090", s.Addr())
	assert.Equal(t, 3*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 4*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.IdleTimeout)
}

func TestShutdown_BeforeStart(t *testing.T) {
	s := New(config.ServerConfig{Port: 0}, http.NotFoundHandler(), zap.NewNop())
	assert.NoError(t, s.Shutdown(context.Background()))
}
