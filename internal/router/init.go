package router

import (
	"github.com/stakeflow/stakeflow/internal/application"
	"github.com/stakeflow/stakeflow/internal/container"
	pginfra "github.com/stakeflow/stakeflow/internal/infrastructure/postgres"
	handlers "github.com/stakeflow/stakeflow/internal/interface/http"
	"github.com/stakeflow/stakeflow/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	pools := pginfra.NewPoolRepository(pool)
	stakes := pginfra.NewStakeRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	poolSvc := application.NewPoolService(pools)
	stakingSvc := application.NewStakingService(stakes, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewPoolModule(handlers.NewPoolHandler(poolSvc, logger), jwt))
	r.Add(modules.NewStakingModule(handlers.NewStakingHandler(stakingSvc, logger), jwt))
}
