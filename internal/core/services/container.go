package services

import (
	portsrepo "github.com/paisatrack/pft_backend/internal/core/ports/repositories"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/platform/config"
)

// NewContainer creates a new service container with properly initialized
// dependencies.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Reporting:   NewReportingService(repos.TransactionRepo),
		User:        NewUserService(repos.UserRepo),
		GoogleAuth:  NewGoogleAuthService(cfg, repos.UserRepo),
	}
}
