package repository

import (
	"context"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
)

// PoolRepository defines the interface for pool catalog operations.
// Pools are append-only; there is no update or delete.
type PoolRepository interface {
	Create(ctx context.Context, p *entity.Pool) error
	List(ctx context.Context) ([]entity.Pool, error)
}
