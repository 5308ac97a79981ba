package services

import (
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/platform/config"
)

// NewServiceContainer wires all services against the given repository
// provider and configuration.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:            NewAccountService(repos.AccountRepo),
		Goal:               NewGoalService(repos.GoalRepo, repos.AccountRepo),
		Summary:            NewSummaryService(repos.AccountRepo, repos.SnapshotRepo),
		Settings:           NewSettingsService(repos.SettingsRepo),
		User:               NewUserService(repos.UserRepo),
		Token:              NewTokenService(cfg),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}
