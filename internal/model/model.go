package model

type GameState = string

const (
	StateLobby   GameState = "lobby"
	StatePlaying GameState = "playing"
)

const EmptyCode string = ""

// CategoryAny draws uniformly across every category of the language.
const CategoryAny string = "any"

// Player is owned by its game's Players slice. ID and SocketID are both the
// connection identity of the joining socket; they stay equal for the lifetime
// of one connection.
type Player struct {
	ID           string `json:"_id" db:"id"`
	Name         string `json:"name" db:"name"`
	SocketID     string `json:"socketId" db:"socket_id"`
	IsGameMaster bool   `json:"isGameMaster" db:"is_game_master"`
}

// Settings carries the recognized lobby options. Zero value means the plain
// rule set in English with any category.
type Settings struct {
	Language       string `json:"language,omitempty"`
	Category       string `json:"category,omitempty"`
	ConfusedArtist bool   `json:"confusedArtist,omitempty"`
	AllFakeArtists bool   `json:"allFakeArtists,omitempty"`
	NoFakeArtist   bool   `json:"noFakeArtist,omitempty"`
	BetterStart    bool   `json:"betterStart,omitempty"`
}

// Game is the aggregate root for one session. Word, Category,
// FakeArtistID, ConfusedArtistWord and Timer are populated at round start
// and carry no meaning while State is lobby.
type Game struct {
	Code               string
	Players            []Player
	State              GameState
	Settings           Settings
	Word               string
	Category           string
	FakeArtistID       string
	ConfusedArtistWord string
	Timer              int
}

// Round carries the fields persisted on a lobby -> playing transition.
type Round struct {
	Word               string
	Category           string
	FakeArtistID       string
	ConfusedArtistWord string
	Timer              int
}

// PlayerBySocket returns the member joined from the given connection.
func (g *Game) PlayerBySocket(socketID string) (Player, bool) {
	for _, p := range g.Players {
		if p.SocketID == socketID {
			return p, true
		}
	}
	return Player{}, false
}

// IsGameMasterSocket reports whether the connection belongs to the member
// holding the game-master flag.
func (g *Game) IsGameMasterSocket(socketID string) bool {
	p, ok := g.PlayerBySocket(socketID)
	return ok && p.IsGameMaster
}
