package entity

import (
	"time"
)

// StakeStatus is the lifecycle state of a stake.
// "completed" is derived at read time and only persisted indirectly when a
// claim moves the row to "claimed". "unstaked" is a reachable terminal
// state in the schema with no producing operation yet.
type StakeStatus string

const (
	StakeActive    StakeStatus = "active"
	StakeCompleted StakeStatus = "completed"
	StakeUnstaked  StakeStatus = "unstaked"
	StakeClaimed   StakeStatus = "claimed"
)

// Stake is a user's position in a pool.
type Stake struct {
	ID       int64       `json:"id"`
	UserID   int64       `json:"user_id"`
	PoolID   int64       `json:"pool_id"`
	Amount   float64     `json:"amount"`
	StakedAt time.Time   `json:"staked_at"`
	Status   StakeStatus `json:"status"`
}

// StakeWithPool is a stake joined with the pool terms needed to derive
// status, unlock date and profit.
type StakeWithPool struct {
	Stake
	PoolName      string
	APYPercentage float64
	MinLockPeriod int
}
