package diagnostics

import (
	"context"
	"time"

	"foodapp/internal/dto"
)

const (
	checkTimeout       = 2 * time.Second
	maxCollections     = 10
	maxErrorLength     = 50
	statusConnected    = "Connected"
	statusDisconnected = "Not Connected"
	valueSet           = "Set"
	valueNotSet        = "Not Set"
)

type Settings struct {
	URLConfigured  bool
	NameConfigured bool
}

type service struct {
	backend  Backend
	settings Settings
	timeout  time.Duration
}

// NewService builds the connectivity checker. backend may be nil when no
// store was initialised.
func NewService(backend Backend, settings Settings) Checker {
	return &service{
		backend:  backend,
		settings: settings,
		timeout:  checkTimeout,
	}
}

// Check probes the store. It never fails: problems are reported in the
// returned fields.
func (s *service) Check(ctx context.Context) dto.DiagnosticsResponse {
	resp := dto.DiagnosticsResponse{
		Backend:          "Running",
		Database:         "Not Available",
		DatabaseURL:      setOrNot(s.settings.URLConfigured),
		DatabaseName:     setOrNot(s.settings.NameConfigured),
		ConnectionStatus: statusDisconnected,
		Collections:      []string{},
	}

	if s.backend == nil {
		resp.Database = "Available but not initialized"
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.backend.Ping(ctx); err != nil {
		resp.Database = "Error: " + truncate(err.Error())
		return resp
	}
	resp.ConnectionStatus = statusConnected

	collections, err := s.backend.ListCollections(ctx)
	if err != nil {
		resp.Database = "Connected but Error: " + truncate(err.Error())
		return resp
	}
	if len(collections) > maxCollections {
		collections = collections[:maxCollections]
	}
	if collections != nil {
		resp.Collections = collections
	}
	resp.Database = "Connected & Working (" + s.backend.Name() + ")"
	return resp
}

func setOrNot(ok bool) string {
	if ok {
		return valueSet
	}
	return valueNotSet
}

func truncate(msg string) string {
	r := []rune(msg)
	if len(r) > maxErrorLength {
		return string(r[:maxErrorLength])
	}
	return msg
}
