package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	"github.com/stakeflow/stakeflow/internal/domain/repository"
)

type StakeRepository struct {
	pool *pgxpool.Pool
}

func NewStakeRepository(pool *pgxpool.Pool) *StakeRepository {
	return &StakeRepository{pool: pool}
}

func (r *StakeRepository) Create(ctx context.Context, s *entity.Stake) error {
	if s.Status == "" {
		s.Status = entity.StakeActive
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stakes (user_id, pool_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, staked_at
	`, s.UserID, s.PoolID, s.Amount, s.Status)

	return row.Scan(&s.ID, &s.StakedAt)
}

func (r *StakeRepository) ListByUser(ctx context.Context, userID int64) ([]entity.StakeWithPool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT stakes.id, stakes.user_id, stakes.pool_id, stakes.amount, stakes.staked_at, stakes.status,
		       pools.name, pools.apy_percentage, pools.min_lock_period
		FROM stakes
		JOIN pools ON stakes.pool_id = pools.id
		WHERE stakes.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stakes := make([]entity.StakeWithPool, 0)
	for rows.Next() {
		var s entity.StakeWithPool
		if err := rows.Scan(&s.ID, &s.UserID, &s.PoolID, &s.Amount, &s.StakedAt, &s.Status,
			&s.PoolName, &s.APYPercentage, &s.MinLockPeriod); err != nil {
			return nil, err
		}
		stakes = append(stakes, s)
	}
	return stakes, rows.Err()
}

// Claim folds ownership and the not-already-claimed check into the update
// predicate so two racing claims cannot both succeed.
func (r *StakeRepository) Claim(ctx context.Context, stakeID, userID int64) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE stakes
		SET status = 'claimed'
		WHERE id = $1 AND user_id = $2 AND status <> 'claimed'
	`, stakeID, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.StakeRepository = (*StakeRepository)(nil)
