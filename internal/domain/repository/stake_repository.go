package repository

import (
	"context"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
)

// StakeRepository defines the interface for stake ledger operations.
type StakeRepository interface {
	Create(ctx context.Context, s *entity.Stake) error
	ListByUser(ctx context.Context, userID int64) ([]entity.StakeWithPool, error)
	// Claim marks the stake as claimed in a single conditional update that
	// folds the ownership and not-already-claimed checks into the WHERE
	// clause. It reports whether a row was affected.
	Claim(ctx context.Context, stakeID, userID int64) (bool, error)
}
