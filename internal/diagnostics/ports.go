package diagnostics

import (
	"context"

	"foodapp/internal/dto"
)

type Checker interface {
	Check(ctx context.Context) dto.DiagnosticsResponse
}

// Backend is the part of the document store the checker looks at.
type Backend interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	Name() string
}
