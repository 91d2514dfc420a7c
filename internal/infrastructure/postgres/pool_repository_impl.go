package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	"github.com/stakeflow/stakeflow/internal/domain/repository"
)

type PoolRepository struct {
	pool *pgxpool.Pool
}

func NewPoolRepository(pool *pgxpool.Pool) *PoolRepository {
	return &PoolRepository{pool: pool}
}

func (r *PoolRepository) Create(ctx context.Context, p *entity.Pool) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO pools (name, apy_percentage, min_lock_period, risk_level, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Name, p.APYPercentage, p.MinLockPeriod, p.RiskLevel, p.Description)

	return row.Scan(&p.ID)
}

func (r *PoolRepository) List(ctx context.Context) ([]entity.Pool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, apy_percentage, min_lock_period, risk_level, COALESCE(description, '')
		FROM pools
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pools := make([]entity.Pool, 0)
	for rows.Next() {
		var p entity.Pool
		if err := rows.Scan(&p.ID, &p.Name, &p.APYPercentage, &p.MinLockPeriod, &p.RiskLevel, &p.Description); err != nil {
			return nil, err
		}
		pools = append(pools, p)
	}
	return pools, rows.Err()
}

var _ repository.PoolRepository = (*PoolRepository)(nil)
