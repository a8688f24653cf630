// Command seed fills a development database with reference rows and a few
// demo profiles. It is idempotent in practice only against an empty
// database; rerunning it against seeded data trips the uniqueness checks.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/noobgg-team/noobgg/cmd/api/repository"
	"github.com/noobgg-team/noobgg/common/bootstrap"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/models"
)

func main() {
	ctx := context.Background()

	components, err := bootstrap.Setup(ctx, "seed",
		bootstrap.WithoutRedis(),
		bootstrap.WithDBInitHook(func(d *db.DB) error {
			return d.InitSchema(ctx)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap seed: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	if err := run(ctx, components.DB); err != nil {
		components.Logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	components.Logger.Info("seed complete")
}

func run(ctx context.Context, database *db.DB) error {
	languages := repository.NewLanguageRepository(database)
	games := repository.NewGameRepository(database)
	platforms := repository.NewPlatformRepository(database)
	ranks := repository.NewGameRankRepository(database)
	links := repository.NewGamePlatformRepository(database)
	profiles := repository.NewUserProfileRepository(database)

	for _, l := range []*models.Language{
		{Name: "English", Code: "en"},
		{Name: "Turkish", Code: "tr"},
		{Name: "German", Code: "de"},
		{Name: "Spanish", Code: "es"},
		{Name: "Portuguese", Code: "pt"},
	} {
		if err := languages.Insert(ctx, l); err != nil {
			return err
		}
	}

	gameNames := []string{"Valorant", "League of Legends", "Counter-Strike 2", "Dota 2"}
	gameIDs := make(map[string]models.ID, len(gameNames))
	for _, name := range gameNames {
		g := &models.Game{Name: name}
		if err := games.Insert(ctx, g); err != nil {
			return err
		}
		gameIDs[name] = g.ID
	}

	platformIDs := make([]models.ID, 0, 3)
	for _, name := range []string{"PC", "PlayStation 5", "Xbox Series X"} {
		p := &models.Platform{Name: name}
		if err := platforms.Insert(ctx, p); err != nil {
			return err
		}
		platformIDs = append(platformIDs, p.ID)
	}

	// Every seeded game is available on PC
	for _, gameID := range gameIDs {
		gp := &models.GamePlatform{GameID: gameID, PlatformID: platformIDs[0]}
		if err := links.Insert(ctx, gp); err != nil {
			return err
		}
	}

	valorantRanks := []string{"Iron", "Bronze", "Silver", "Gold", "Platinum", "Diamond", "Ascendant", "Immortal", "Radiant"}
	for i, name := range valorantRanks {
		gr := &models.GameRank{
			Name:      name,
			Image:     fmt.Sprintf("https://cdn.noob.gg/ranks/valorant/%d.png", i+1),
			RankOrder: i + 1,
			GameID:    gameIDs["Valorant"],
		}
		if err := ranks.Insert(ctx, gr); err != nil {
			return err
		}
	}

	// Demo profiles get throwaway Keycloak identities
	for _, userName := range []string{"demo_igl", "demo_duelist", "demo_support"} {
		u := &models.UserProfile{
			UserKeycloakID:    uuid.NewString(),
			UserName:          userName,
			Gender:            models.GenderUnknown,
			Region:            models.RegionEurope,
			FavoriteGameGenre: models.GenreFPS,
			PlayerType:        models.PlayerCasual,
			IndustryRole:      models.RolePlayer,
			LookingFor:        models.LookingTeammates,
			PresenceStatus:    models.PresenceOffline,
		}
		if err := profiles.Insert(ctx, u); err != nil {
			return err
		}
	}

	return nil
}
