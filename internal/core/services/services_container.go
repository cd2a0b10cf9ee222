package services

import (
	portsrepo "github.com/agrolink/agrolink-backend/internal/core/ports/repositories"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo, repos.FarmProfileRepo)
	container.Auth = NewAuthService(repos.UserRepo, repos.FarmProfileRepo, container.Token)
	container.Profile = NewProfileService(repos.FarmProfileRepo)

	container.Weather = NewWeatherService(cfg.OpenWeatherAPIKey)

	// One shared bucket gates every chat request; the memory store gives the
	// atomic check-and-set the old module-level timestamp lacked.
	chatGate := limiter.New(memory.NewStore(), limiter.Rate{Period: cfg.ChatMinInterval, Limit: 1})
	container.Chat = NewChatService(cfg.GeminiAPIKey, chatGate)

	container.Sustainability = NewSustainabilityService(NewExecScorer(cfg.ScorerCommand, cfg.ScorerScript))

	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
