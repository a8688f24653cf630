package models

// Profile enums. Every enum reserves 'unknown' as its default so a profile
// can be created without answering everything up front.

// Gender of a player
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Region a player queues from
type Region string

const (
	RegionNorthAmerica Region = "north_america"
	RegionSouthAmerica Region = "south_america"
	RegionEurope       Region = "europe"
	RegionAsia         Region = "asia"
	RegionOceania      Region = "oceania"
	RegionMiddleEast   Region = "middle_east"
	RegionAfrica       Region = "africa"
	RegionRussiaCIS    Region = "russia_cis"
	RegionUnknown      Region = "unknown"
)

// GameGenre a player favors
type GameGenre string

const (
	GenreAction       GameGenre = "action"
	GenreAdventure    GameGenre = "adventure"
	GenreBattleRoyale GameGenre = "battle_royale"
	GenreFighting     GameGenre = "fighting"
	GenreFPS          GameGenre = "fps"
	GenreMMORPG       GameGenre = "mmorpg"
	GenreMOBA         GameGenre = "moba"
	GenrePlatformer   GameGenre = "platformer"
	GenrePuzzle       GameGenre = "puzzle"
	GenreRacing       GameGenre = "racing"
	GenreRPG          GameGenre = "rpg"
	GenreRTS          GameGenre = "rts"
	GenreSimulation   GameGenre = "simulation"
	GenreSports       GameGenre = "sports"
	GenreStrategy     GameGenre = "strategy"
	GenreSurvival     GameGenre = "survival"
	GenreUnknown      GameGenre = "unknown"
)

// PlayerType describes how seriously someone plays
type PlayerType string

const (
	PlayerCasual         PlayerType = "casual"
	PlayerCompetitive    PlayerType = "competitive"
	PlayerProfessional   PlayerType = "professional"
	PlayerContentCreator PlayerType = "content_creator"
	PlayerCoach          PlayerType = "coach"
	PlayerUnknown        PlayerType = "unknown"
)

// IndustryRole within gaming
type IndustryRole string

const (
	RolePlayer              IndustryRole = "player"
	RoleDeveloper           IndustryRole = "developer"
	RolePublisher           IndustryRole = "publisher"
	RoleEsportsOrg          IndustryRole = "esports_org"
	RoleTournamentOrganizer IndustryRole = "tournament_organizer"
	RoleContentCreator      IndustryRole = "content_creator"
	RoleJournalist          IndustryRole = "journalist"
	RoleAnalyst             IndustryRole = "analyst"
	RoleCoach               IndustryRole = "coach"
	RoleManager             IndustryRole = "manager"
	RoleUnknown             IndustryRole = "unknown"
)

// LookingFor is what a player wants to find on the platform
type LookingFor string

const (
	LookingTeammates   LookingFor = "teammates"
	LookingFriends     LookingFor = "friends"
	LookingGuild       LookingFor = "guild"
	LookingCoach       LookingFor = "coach"
	LookingStudents    LookingFor = "students"
	LookingScrims      LookingFor = "scrims"
	LookingTournaments LookingFor = "tournaments"
	LookingCasualPlay  LookingFor = "casual_play"
	LookingUnknown     LookingFor = "unknown"
)

// PresenceStatus of a player
type PresenceStatus string

const (
	PresenceOnline       PresenceStatus = "online"
	PresenceOffline      PresenceStatus = "offline"
	PresenceAway         PresenceStatus = "away"
	PresenceDoNotDisturb PresenceStatus = "do_not_disturb"
	PresenceInvisible    PresenceStatus = "invisible"
	PresenceUnknown      PresenceStatus = "unknown"
)
