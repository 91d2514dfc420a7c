package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stakeflow/stakeflow/internal/container"
	handlers "github.com/stakeflow/stakeflow/internal/interface/http"
	"github.com/stakeflow/stakeflow/internal/interface/middleware"
	"github.com/stakeflow/stakeflow/pkg/helpers"
)

// AuthModule wires credential routes.
// Public: POST /api/register, POST /api/login
// Protected: PUT /api/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.PUT("/profile", m.Handler.UpdateProfile)
	}
}
