package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	repo "github.com/stakeflow/stakeflow/internal/domain/repository"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrStakeNotFound = errors.New("stake not found")
)

// StakingService creates stakes, projects their derived state at read time
// and settles claims.
type StakingService struct {
	Stakes repo.StakeRepository
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewStakingService(stakes repo.StakeRepository, logger *logrus.Logger) *StakingService {
	return &StakingService{Stakes: stakes, Logger: logger, Now: time.Now}
}

// CreateStake inserts an active stake with a server-assigned timestamp.
func (s *StakingService) CreateStake(ctx context.Context, userID, poolID int64, amount float64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	st := &entity.Stake{UserID: userID, PoolID: poolID, Amount: amount, Status: entity.StakeActive}
	if err := s.Stakes.Create(ctx, st); err != nil {
		return 0, err
	}
	return st.ID, nil
}

// StakeView is the read-time projection of a stake joined with its pool
// terms: reported status, unlock date and the fixed promised profit.
type StakeView struct {
	ID            int64              `json:"id"`
	PoolName      string             `json:"pool_name"`
	Amount        float64            `json:"amount"`
	APYPercentage float64            `json:"apy_percentage"`
	StakedAt      time.Time          `json:"staked_at"`
	UnlockDate    time.Time          `json:"unlock_date"`
	Status        entity.StakeStatus `json:"status"`
	Profit        string             `json:"profit"`
}

// ListStakes returns the caller's stakes with derived fields. A stake whose
// lock period has elapsed is reported as completed without touching the
// persisted row; only a claim changes stored state.
func (s *StakingService) ListStakes(ctx context.Context, userID int64) ([]StakeView, error) {
	rows, err := s.Stakes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.Now().UTC()

	views := make([]StakeView, 0, len(rows))
	for _, row := range rows {
		stakedAt := row.StakedAt.UTC()
		unlock := stakedAt.AddDate(0, 0, row.MinLockPeriod)
		status := row.Status
		if status == entity.StakeActive && now.After(unlock) {
			status = entity.StakeCompleted
		}
		views = append(views, StakeView{
			ID:            row.ID,
			PoolName:      row.PoolName,
			Amount:        row.Amount,
			APYPercentage: row.APYPercentage,
			StakedAt:      stakedAt,
			UnlockDate:    unlock,
			Status:        status,
			Profit:        Profit(row.Amount, row.APYPercentage, row.MinLockPeriod),
		})
	}
	return views, nil
}

// ClaimReward marks a stake claimed. Wrong id, wrong owner and an already
// claimed stake all collapse into ErrStakeNotFound, so a claim never
// reveals whether someone else's stake exists.
func (s *StakingService) ClaimReward(ctx context.Context, userID, stakeID int64) error {
	ok, err := s.Stakes.Claim(ctx, stakeID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStakeNotFound
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "stake_id": stakeID}).Info("stake claimed")
	}
	return nil
}

// Profit is the fixed promised return for the lock window:
// amount * apy/100 * lockDays/365, rounded half-up to 2 places. It depends
// only on the pool terms, not on how long the stake has been held.
func Profit(amount, apyPercentage float64, lockDays int) string {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(apyPercentage)).
		Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromInt(int64(lockDays))).
		Div(decimal.NewFromInt(365)).
		StringFixed(2)
}
