package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stakeflow/stakeflow/internal/interface/http"
	"github.com/stakeflow/stakeflow/internal/interface/middleware"
	"github.com/stakeflow/stakeflow/pkg/helpers"
)

// StakingModule wires the stake lifecycle routes, all bearer-protected:
// POST /api/stake, GET /api/my-stakes, POST /api/claim
type StakingModule struct {
	Handler *handlers.StakingHandler
	JWT     *helpers.JWTManager
}

func NewStakingModule(h *handlers.StakingHandler, jwt *helpers.JWTManager) *StakingModule {
	return &StakingModule{Handler: h, JWT: jwt}
}

func (m *StakingModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/stake", m.Handler.Stake)
		auth.GET("/my-stakes", m.Handler.MyStakes)
		auth.POST("/claim", m.Handler.Claim)
	}
}
