package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stakeflow/stakeflow/internal/interface/http"
	"github.com/stakeflow/stakeflow/internal/interface/middleware"
	"github.com/stakeflow/stakeflow/pkg/helpers"
)

// PoolModule wires the pool catalog.
// Public: GET /api/pools
// Admin: POST /api/pools
type PoolModule struct {
	Handler *handlers.PoolHandler
	JWT     *helpers.JWTManager
}

func NewPoolModule(h *handlers.PoolHandler, jwt *helpers.JWTManager) *PoolModule {
	return &PoolModule{Handler: h, JWT: jwt}
}

func (m *PoolModule) Register(rg *gin.RouterGroup) {
	rg.GET("/pools", m.Handler.List)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/pools", m.Handler.Create)
	}
}
