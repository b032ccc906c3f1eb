package catalog

import (
	"context"
	"time"
)

// Archive is the optional write-through persistence port for the catalog.
// The in-memory store stays the source of truth; archive writes are
// best-effort and a failure never fails the catalog operation.
type Archive interface {
	SaveProduct(ctx context.Context, p *Product) error
	SaveMetrics(ctx context.Context, id string, m Metrics, updatedAt time.Time) error
}
