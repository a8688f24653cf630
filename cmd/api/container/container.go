package container

import (
	"github.com/noobgg-team/noobgg/cmd/api/repository"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/bootstrap"
	"github.com/noobgg-team/noobgg/common/ratelimit"
)

// Container holds all initialized repositories and services (singleton pattern)
type Container struct {
	Components *bootstrap.Components

	// Repositories
	LanguageRepo      *repository.LanguageRepository
	GameRepo          *repository.GameRepository
	PlatformRepo      *repository.PlatformRepository
	DistributorRepo   *repository.DistributorRepository
	GameRankRepo      *repository.GameRankRepository
	GamePlatformRepo  *repository.GamePlatformRepository
	UserProfileRepo   *repository.UserProfileRepository
	FavoriteRepo      *repository.FavoriteRepository
	EventAttendeeRepo *repository.EventAttendeeRepository

	// Services
	LanguageService      *service.LanguageService
	UserProfileService   *service.UserProfileService
	FavoriteService      *service.FavoriteService
	EventAttendeeService *service.EventAttendeeService

	// Rate limiter, nil when Redis is disabled
	Limiter *ratelimit.Limiter
}

// NewContainer initializes all repositories and services once
func NewContainer(components *bootstrap.Components) *Container {
	log := components.Logger

	// Repositories
	languageRepo := repository.NewLanguageRepository(components.DB)
	gameRepo := repository.NewGameRepository(components.DB)
	platformRepo := repository.NewPlatformRepository(components.DB)
	distributorRepo := repository.NewDistributorRepository(components.DB)
	gameRankRepo := repository.NewGameRankRepository(components.DB)
	gamePlatformRepo := repository.NewGamePlatformRepository(components.DB)
	userProfileRepo := repository.NewUserProfileRepository(components.DB)
	favoriteRepo := repository.NewFavoriteRepository(components.DB)
	eventAttendeeRepo := repository.NewEventAttendeeRepository(components.DB)

	// Services
	languageService := service.NewLanguageService(languageRepo, log)
	userProfileService := service.NewUserProfileService(userProfileRepo, components.DB, log)
	favoriteService := service.NewFavoriteService(favoriteRepo, userProfileRepo, gameRepo, log)
	eventAttendeeService := service.NewEventAttendeeService(eventAttendeeRepo, userProfileRepo, log)

	var limiter *ratelimit.Limiter
	if components.Redis != nil {
		limiter = ratelimit.New(components.Redis.Underlying(), log)
	}

	return &Container{
		Components:           components,
		LanguageRepo:         languageRepo,
		GameRepo:             gameRepo,
		PlatformRepo:         platformRepo,
		DistributorRepo:      distributorRepo,
		GameRankRepo:         gameRankRepo,
		GamePlatformRepo:     gamePlatformRepo,
		UserProfileRepo:      userProfileRepo,
		FavoriteRepo:         favoriteRepo,
		EventAttendeeRepo:    eventAttendeeRepo,
		LanguageService:      languageService,
		UserProfileService:   userProfileService,
		FavoriteService:      favoriteService,
		EventAttendeeService: eventAttendeeService,
		Limiter:              limiter,
	}
}
