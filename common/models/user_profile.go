package models

import "time"

// UserProfile is a player's profile. It is the only entity under optimistic
// concurrency: RowVersion is a counter serialized as a string (string form
// avoids numeric-precision loss across transport), starts at "0" on insert
// and moves up by exactly 1 on every successful update or soft delete.
// Maps to: user_profiles table
type UserProfile struct {
	ID             ID     `db:"id" json:"id"`
	UserKeycloakID string `db:"user_keycloak_id" json:"userKeycloakId"`

	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deletedAt"`
	LastOnline time.Time  `db:"last_online" json:"lastOnline"`

	BirthDate       *time.Time `db:"birth_date" json:"birthDate"`
	UserName        string     `db:"user_name" json:"userName"`
	FirstName       *string    `db:"first_name" json:"firstName"`
	LastName        *string    `db:"last_name" json:"lastName"`
	ProfileImageURL *string    `db:"profile_image_url" json:"profileImageUrl"`
	BannerImageURL  *string    `db:"banner_image_url" json:"bannerImageUrl"`
	Bio             *string    `db:"bio" json:"bio"`

	Gender            Gender         `db:"gender" json:"gender"`
	Region            Region         `db:"region" json:"region"`
	FavoriteGameGenre GameGenre      `db:"favorite_game_genre" json:"favoriteGameGenre"`
	PlayerType        PlayerType     `db:"player_type" json:"playerType"`
	IndustryRole      IndustryRole   `db:"industry_role" json:"industryRole"`
	LookingFor        LookingFor     `db:"looking_for" json:"lookingFor"`
	PresenceStatus    PresenceStatus `db:"presence_status" json:"presenceStatus"`

	RowVersion string `db:"row_version" json:"rowVersion"`
}

// UserProfilePatch is a partial field set for the compare-and-swap update.
// Nil means "leave unchanged". HasChanges must be true for an update to be
// accepted; the version token itself does not count.
type UserProfilePatch struct {
	UserKeycloakID    *string
	UserName          *string
	FirstName         *string
	LastName          *string
	ProfileImageURL   *string
	BannerImageURL    *string
	Bio               *string
	BirthDate         *time.Time
	Gender            *Gender
	Region            *Region
	FavoriteGameGenre *GameGenre
	PlayerType        *PlayerType
	IndustryRole      *IndustryRole
	LookingFor        *LookingFor
	PresenceStatus    *PresenceStatus
}

// HasChanges reports whether at least one field is being assigned
func (p *UserProfilePatch) HasChanges() bool {
	return p.UserKeycloakID != nil ||
		p.UserName != nil ||
		p.FirstName != nil ||
		p.LastName != nil ||
		p.ProfileImageURL != nil ||
		p.BannerImageURL != nil ||
		p.Bio != nil ||
		p.BirthDate != nil ||
		p.Gender != nil ||
		p.Region != nil ||
		p.FavoriteGameGenre != nil ||
		p.PlayerType != nil ||
		p.IndustryRole != nil ||
		p.LookingFor != nil ||
		p.PresenceStatus != nil
}

// ApplyTo writes the assigned fields onto the profile
func (p *UserProfilePatch) ApplyTo(u *UserProfile) {
	if p.UserKeycloakID != nil {
		u.UserKeycloakID = *p.UserKeycloakID
	}
	if p.UserName != nil {
		u.UserName = *p.UserName
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.LastName != nil {
		u.LastName = p.LastName
	}
	if p.ProfileImageURL != nil {
		u.ProfileImageURL = p.ProfileImageURL
	}
	if p.BannerImageURL != nil {
		u.BannerImageURL = p.BannerImageURL
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	if p.BirthDate != nil {
		u.BirthDate = p.BirthDate
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Region != nil {
		u.Region = *p.Region
	}
	if p.FavoriteGameGenre != nil {
		u.FavoriteGameGenre = *p.FavoriteGameGenre
	}
	if p.PlayerType != nil {
		u.PlayerType = *p.PlayerType
	}
	if p.IndustryRole != nil {
		u.IndustryRole = *p.IndustryRole
	}
	if p.LookingFor != nil {
		u.LookingFor = *p.LookingFor
	}
	if p.PresenceStatus != nil {
		u.PresenceStatus = *p.PresenceStatus
	}
}
