package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// UserProfileHandler handles user profile requests, including the versioned
// update protocol
type UserProfileHandler struct {
	profiles *service.UserProfileService
	log      *logger.Logger
}

// NewUserProfileHandler creates a new user profile handler
func NewUserProfileHandler(profiles *service.UserProfileService, log *logger.Logger) *UserProfileHandler {
	return &UserProfileHandler{profiles: profiles, log: log}
}

type createUserProfileRequest struct {
	UserKeycloakID string     `json:"userKeycloakId" validate:"required,max=100"`
	UserName       string     `json:"userName" validate:"required,min=3,max=50"`
	FirstName      *string    `json:"firstName" validate:"omitempty,max=60"`
	LastName       *string    `json:"lastName" validate:"omitempty,max=60"`
	ProfileImage   *string    `json:"profileImageUrl" validate:"omitempty,url,max=255"`
	BannerImage    *string    `json:"bannerImageUrl" validate:"omitempty,url,max=255"`
	Bio            *string    `json:"bio"`
	BirthDate      *time.Time `json:"birthDate"`

	Gender            *string `json:"gender" validate:"omitempty,oneof=male female unknown"`
	Region            *string `json:"region" validate:"omitempty,oneof=north_america south_america europe asia oceania middle_east africa russia_cis unknown"`
	FavoriteGameGenre *string `json:"favoriteGameGenre" validate:"omitempty,oneof=action adventure battle_royale fighting fps mmorpg moba platformer puzzle racing rpg rts simulation sports strategy survival unknown"`
	PlayerType        *string `json:"playerType" validate:"omitempty,oneof=casual competitive professional content_creator coach unknown"`
	IndustryRole      *string `json:"industryRole" validate:"omitempty,oneof=player developer publisher esports_org tournament_organizer content_creator journalist analyst coach manager unknown"`
	LookingFor        *string `json:"lookingFor" validate:"omitempty,oneof=teammates friends guild coach students scrims tournaments casual_play unknown"`
	PresenceStatus    *string `json:"presenceStatus" validate:"omitempty,oneof=online offline away do_not_disturb invisible unknown"`
}

type updateUserProfileRequest struct {
	RowVersion string `json:"rowVersion" validate:"required"`

	UserKeycloakID *string    `json:"userKeycloakId" validate:"omitempty,max=100"`
	UserName       *string    `json:"userName" validate:"omitempty,min=3,max=50"`
	FirstName      *string    `json:"firstName" validate:"omitempty,max=60"`
	LastName       *string    `json:"lastName" validate:"omitempty,max=60"`
	ProfileImage   *string    `json:"profileImageUrl" validate:"omitempty,url,max=255"`
	BannerImage    *string    `json:"bannerImageUrl" validate:"omitempty,url,max=255"`
	Bio            *string    `json:"bio"`
	BirthDate      *time.Time `json:"birthDate"`

	Gender            *string `json:"gender" validate:"omitempty,oneof=male female unknown"`
	Region            *string `json:"region" validate:"omitempty,oneof=north_america south_america europe asia oceania middle_east africa russia_cis unknown"`
	FavoriteGameGenre *string `json:"favoriteGameGenre" validate:"omitempty,oneof=action adventure battle_royale fighting fps mmorpg moba platformer puzzle racing rpg rts simulation sports strategy survival unknown"`
	PlayerType        *string `json:"playerType" validate:"omitempty,oneof=casual competitive professional content_creator coach unknown"`
	IndustryRole      *string `json:"industryRole" validate:"omitempty,oneof=player developer publisher esports_org tournament_organizer content_creator journalist analyst coach manager unknown"`
	LookingFor        *string `json:"lookingFor" validate:"omitempty,oneof=teammates friends guild coach students scrims tournaments casual_play unknown"`
	PresenceStatus    *string `json:"presenceStatus" validate:"omitempty,oneof=online offline away do_not_disturb invisible unknown"`
}

type deleteUserProfileRequest struct {
	RowVersion string `json:"rowVersion" validate:"required"`
}

// Get returns a profile by id. ?includeDeleted=true exposes tombstoned rows.
// GET /api/v1/user-profiles/:id
func (h *UserProfileHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	includeDeleted := c.QueryParam("includeDeleted") == "true"
	u, err := h.profiles.Get(c.Request().Context(), id, includeDeleted)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// GetByUserName returns a live profile by its unique username
// GET /api/v1/user-profiles/by-username/:username
func (h *UserProfileHandler) GetByUserName(c echo.Context) error {
	u, err := h.profiles.GetByUserName(c.Request().Context(), c.Param("username"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Create registers a profile
// POST /api/v1/user-profiles
func (h *UserProfileHandler) Create(c echo.Context) error {
	var req createUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	u := &models.UserProfile{
		UserKeycloakID:    req.UserKeycloakID,
		UserName:          req.UserName,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfileImageURL:   req.ProfileImage,
		BannerImageURL:    req.BannerImage,
		Bio:               req.Bio,
		BirthDate:         req.BirthDate,
		Gender:            models.GenderUnknown,
		Region:            models.RegionUnknown,
		FavoriteGameGenre: models.GenreUnknown,
		PlayerType:        models.PlayerUnknown,
		IndustryRole:      models.RoleUnknown,
		LookingFor:        models.LookingUnknown,
		PresenceStatus:    models.PresenceUnknown,
	}
	if req.Gender != nil {
		u.Gender = models.Gender(*req.Gender)
	}
	if req.Region != nil {
		u.Region = models.Region(*req.Region)
	}
	if req.FavoriteGameGenre != nil {
		u.FavoriteGameGenre = models.GameGenre(*req.FavoriteGameGenre)
	}
	if req.PlayerType != nil {
		u.PlayerType = models.PlayerType(*req.PlayerType)
	}
	if req.IndustryRole != nil {
		u.IndustryRole = models.IndustryRole(*req.IndustryRole)
	}
	if req.LookingFor != nil {
		u.LookingFor = models.LookingFor(*req.LookingFor)
	}
	if req.PresenceStatus != nil {
		u.PresenceStatus = models.PresenceStatus(*req.PresenceStatus)
	}

	created, err := h.profiles.Create(c.Request().Context(), u)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update guarded by the caller's rowVersion token
// PATCH /api/v1/user-profiles/:id
func (h *UserProfileHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req updateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	patch := models.UserProfilePatch{
		UserKeycloakID:  req.UserKeycloakID,
		UserName:        req.UserName,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImage,
		BannerImageURL:  req.BannerImage,
		Bio:             req.Bio,
		BirthDate:       req.BirthDate,
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		patch.Gender = &g
	}
	if req.Region != nil {
		r := models.Region(*req.Region)
		patch.Region = &r
	}
	if req.FavoriteGameGenre != nil {
		g := models.GameGenre(*req.FavoriteGameGenre)
		patch.FavoriteGameGenre = &g
	}
	if req.PlayerType != nil {
		p := models.PlayerType(*req.PlayerType)
		patch.PlayerType = &p
	}
	if req.IndustryRole != nil {
		r := models.IndustryRole(*req.IndustryRole)
		patch.IndustryRole = &r
	}
	if req.LookingFor != nil {
		l := models.LookingFor(*req.LookingFor)
		patch.LookingFor = &l
	}
	if req.PresenceStatus != nil {
		p := models.PresenceStatus(*req.PresenceStatus)
		patch.PresenceStatus = &p
	}

	updated, err := h.profiles.Update(c.Request().Context(), id, patch, req.RowVersion)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete soft deletes a profile under the same version protocol
// DELETE /api/v1/user-profiles/:id
func (h *UserProfileHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req deleteUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.profiles.Delete(c.Request().Context(), id, req.RowVersion); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User profile deleted successfully"})
}
