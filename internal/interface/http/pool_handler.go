package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stakeflow/stakeflow/internal/application"
	"github.com/stakeflow/stakeflow/internal/domain/entity"
	"github.com/stakeflow/stakeflow/pkg/helpers"
	"github.com/stakeflow/stakeflow/pkg/response"
	"github.com/stakeflow/stakeflow/pkg/validation"
)

type PoolHandler struct {
	Svc    *application.PoolService
	Logger *logrus.Logger
}

func NewPoolHandler(svc *application.PoolService, logger *logrus.Logger) *PoolHandler {
	return &PoolHandler{Svc: svc, Logger: logger}
}

type createPoolRequest struct {
	Name        string  `json:"name" binding:"required"`
	APY         float64 `json:"apy" binding:"required,gt=0"`
	LockPeriod  int     `json:"lockPeriod" binding:"required,gt=0"`
	Risk        string  `json:"risk" binding:"required,risk"`
	Description string  `json:"desc"`
}

// List GET /api/pools
func (h *PoolHandler) List(c *gin.Context) {
	pools, err := h.Svc.ListPools(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "list pools failed", err, nil)
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"pools": pools})
}

// Create POST /api/pools (admin only; the role gate runs in middleware)
func (h *PoolHandler) Create(c *gin.Context) {
	var req createPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required pool data", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.CreatePool(c.Request.Context(), application.CreatePoolInput{
		Name:          req.Name,
		APYPercentage: req.APY,
		LockPeriod:    req.LockPeriod,
		Risk:          entity.RiskLevel(req.Risk),
		Description:   req.Description,
	})
	switch {
	case err == nil:
	case err == application.ErrInvalidPool:
		response.Error(c, http.StatusBadRequest, "Missing required pool data", nil)
		return
	default:
		helpers.LogError(h.Logger, "create pool failed", err, logrus.Fields{"name": req.Name})
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Pool created", "id": id})
}
