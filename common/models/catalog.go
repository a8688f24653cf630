package models

import "time"

// Game is a title players team up for.
// Maps to: games table
type Game struct {
	ID          ID         `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description"`
	LogoURL     *string    `db:"logo_url" json:"logoUrl"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deletedAt"`
}

// Platform is a device family a game runs on (PC, PS5, ...).
// Maps to: platforms table
type Platform struct {
	ID        ID         `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt"`
}

// Distributor is a storefront games are sold on (Steam, Epic, ...).
// Maps to: distributors table
type Distributor struct {
	ID          ID         `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description"`
	Website     *string    `db:"website" json:"website"`
	LogoURL     *string    `db:"logo_url" json:"logoUrl"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deletedAt"`
}

// GameRank is a ladder tier within a game, ordered by RankOrder ascending.
// Maps to: game_ranks table
type GameRank struct {
	ID        ID         `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Image     string     `db:"image" json:"image"`
	RankOrder int        `db:"rank_order" json:"order"`
	GameID    ID         `db:"game_id" json:"gameId"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt"`
}

// GamePlatform links a game to a platform it is playable on. The pair is
// unique among live rows.
// Maps to: game_platforms table
type GamePlatform struct {
	ID         ID         `db:"id" json:"id"`
	GameID     ID         `db:"game_id" json:"gameId"`
	PlatformID ID         `db:"platform_id" json:"platformId"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deletedAt"`
}

// UserFavoriteGame links a profile to a game it favors. The pair is unique;
// favorites are the one entity removed with a hard delete.
// Maps to: user_favorite_games table
type UserFavoriteGame struct {
	ID            ID         `db:"id" json:"id"`
	UserProfileID ID         `db:"user_profile_id" json:"userProfileId"`
	GameID        ID         `db:"game_id" json:"gameId"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updatedAt"`
}

// FavoriteGameDetail is a favorite joined with its game's name for listings
type FavoriteGameDetail struct {
	ID        ID        `db:"id" json:"id"`
	GameID    ID        `db:"game_id" json:"gameId"`
	GameName  string    `db:"game_name" json:"gameName"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// EventAttendee records a profile joining an event. A profile can attend an
// event once; leaving is a soft delete, so rejoining creates a new row.
// Maps to: event_attendees table
type EventAttendee struct {
	ID            ID         `db:"id" json:"id"`
	EventID       ID         `db:"event_id" json:"eventId"`
	UserProfileID ID         `db:"user_profile_id" json:"userProfileId"`
	JoinedAt      time.Time  `db:"joined_at" json:"joinedAt"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt     *time.Time `db:"deleted_at" json:"deletedAt"`
}
