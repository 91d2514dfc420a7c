package entity

// RiskLevel classifies a pool's volatility tier.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Pool is a staking offer. Pools are created by admins and are immutable
// afterwards; there is no update or delete path.
type Pool struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	APYPercentage float64   `json:"apy_percentage"`
	MinLockPeriod int       `json:"min_lock_period"`
	RiskLevel     RiskLevel `json:"risk_level"`
	Description   string    `json:"description"`
}
