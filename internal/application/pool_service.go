package application

import (
	"context"
	"errors"
	"strings"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	repo "github.com/stakeflow/stakeflow/internal/domain/repository"
)

var ErrInvalidPool = errors.New("missing required pool data")

// PoolService reads and extends the pool catalog. Pools are immutable once
// created; only listing and admin creation exist.
type PoolService struct {
	Pools repo.PoolRepository
}

func NewPoolService(pools repo.PoolRepository) *PoolService {
	return &PoolService{Pools: pools}
}

func (s *PoolService) ListPools(ctx context.Context) ([]entity.Pool, error) {
	return s.Pools.List(ctx)
}

type CreatePoolInput struct {
	Name          string
	APYPercentage float64
	LockPeriod    int
	Risk          entity.RiskLevel
	Description   string
}

func (s *PoolService) CreatePool(ctx context.Context, in CreatePoolInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" || in.APYPercentage <= 0 || in.LockPeriod <= 0 {
		return 0, ErrInvalidPool
	}
	p := &entity.Pool{
		Name:          in.Name,
		APYPercentage: in.APYPercentage,
		MinLockPeriod: in.LockPeriod,
		RiskLevel:     in.Risk,
		Description:   in.Description,
	}
	if err := s.Pools.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}
