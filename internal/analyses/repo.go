package analyses

import "context"

// Repo keeps analyses for the lifetime of the process. Implementations may evict the oldest
// record once a capacity is reached, after which GetByID reports ErrNotFound for it.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	Len() int
}
