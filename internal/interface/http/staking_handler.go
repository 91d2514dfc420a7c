package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stakeflow/stakeflow/internal/application"
	"github.com/stakeflow/stakeflow/internal/interface/middleware"
	"github.com/stakeflow/stakeflow/pkg/helpers"
	"github.com/stakeflow/stakeflow/pkg/response"
	"github.com/stakeflow/stakeflow/pkg/validation"
)

type StakingHandler struct {
	Svc    *application.StakingService
	Logger *logrus.Logger
}

func NewStakingHandler(svc *application.StakingService, logger *logrus.Logger) *StakingHandler {
	return &StakingHandler{Svc: svc, Logger: logger}
}

type stakeRequest struct {
	PoolID int64   `json:"pool_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type claimRequest struct {
	StakeID int64 `json:"stakeId" binding:"required"`
}

// Stake POST /api/stake
func (h *StakingHandler) Stake(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	var req stakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Amount must be positive", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.CreateStake(c.Request.Context(), uid, req.PoolID, req.Amount)
	switch {
	case err == nil:
	case err == application.ErrInvalidAmount:
		response.Error(c, http.StatusBadRequest, "Amount must be positive", nil)
		return
	default:
		helpers.LogError(h.Logger, "stake failed", err, logrus.Fields{"user_id": uid, "pool_id": req.PoolID})
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Staked successfully", "stakeId": id})
}

// MyStakes GET /api/my-stakes
func (h *StakingHandler) MyStakes(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	stakes, err := h.Svc.ListStakes(c.Request.Context(), uid)
	if err != nil {
		helpers.LogError(h.Logger, "list stakes failed", err, logrus.Fields{"user_id": uid})
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"stakes": stakes})
}

// Claim POST /api/claim
func (h *StakingHandler) Claim(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.ClaimReward(c.Request.Context(), uid, req.StakeID)
	switch {
	case err == nil:
	case err == application.ErrStakeNotFound:
		response.Error(c, http.StatusNotFound, "Stake not found or already claimed", nil)
		return
	default:
		helpers.LogError(h.Logger, "claim failed", err, logrus.Fields{"user_id": uid, "stake_id": req.StakeID})
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Message(c, http.StatusOK, "Reward claimed successfully")
}
