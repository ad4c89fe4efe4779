package interfaces

import (
	"context"

	"github.com/kaigouthro/pinelint/internal/model"
)

// WebClient executes a single HTTP exchange. Implementations own the
// transport; callers own the request and its context.
type WebClient interface {
	Do(ctx context.Context, req *model.Request) (*model.Response, error)

	Close() error
}
