package roles

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/humanbelnik/fakeartist/core/internal/model"
)

var (
	ErrNoPlayers        = errors.New("no players to assign roles to")
	ErrConfusedWordDraw = errors.New("failed to draw a distinct confused word")
)

type Role = string

const (
	RoleArtist     Role = "artist"
	RoleFakeArtist Role = "fake-artist"
)

const (
	// Chance of the allFakeArtists / noFakeArtist variants firing on a
	// given round.
	variantChance = 0.1

	// The confused word is re-drawn from the same category until it
	// differs from the secret word. With categories of n words a draw
	// collides with probability 1/n, so 32 attempts failing in a row
	// is (1/n)^32 — practically a broken single-word category.
	confusedDrawLimit = 32
)

//go:generate mockery --name=WordProvider --output=./mocks/words --filename=provider.go
type WordProvider interface {
	Draw(language, category string) (word string, drawnCategory string)
}

// Delivery is one member's private share of a round: their role and the
// word they are shown. A nil Word is withheld, the fake artist never
// receives one.
type Delivery struct {
	PlayerID string
	Role     Role
	Word     *string
}

// RoundResult is the outcome of a single assignment, computed once per
// game start. FakeArtistID is empty when the round has no single fake
// artist (noFakeArtist fired, or AllFake is set).
type RoundResult struct {
	Word         string
	Category     string
	ConfusedWord string
	FakeArtistID string
	AllFake      bool
	Deliveries   []Delivery
}

// Engine computes role assignments. Safe for concurrent use; rooms
// starting at the same time share one guarded rng.
type Engine struct {
	words WordProvider

	mu  sync.Mutex
	rng *rand.Rand
}

func New(words WordProvider) *Engine {
	return NewWithRand(words, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is used by tests that need a seeded sequence.
func NewWithRand(words WordProvider, rng *rand.Rand) *Engine {
	return &Engine{words: words, rng: rng}
}

// Assign draws the round's words and computes the per-member deliveries.
// Variant flags are evaluated in order: allFakeArtists, noFakeArtist,
// then normal selection (betterStart exempts the first joiner, the room
// creator, from being picked).
func (e *Engine) Assign(players []model.Player, settings model.Settings) (RoundResult, error) {
	if len(players) == 0 {
		return RoundResult{}, ErrNoPlayers
	}

	word, category := e.words.Draw(settings.Language, settings.Category)
	res := RoundResult{Word: word, Category: category}

	if settings.ConfusedArtist {
		confused, err := e.drawConfusedWord(settings.Language, category, word)
		if err != nil {
			return RoundResult{}, err
		}
		res.ConfusedWord = confused
	}

	switch {
	case settings.AllFakeArtists && e.chance(variantChance):
		res.AllFake = true
	case settings.NoFakeArtist && e.chance(variantChance):
		// Everyone holds the true word this round.
	default:
		candidates := players
		if settings.BetterStart {
			candidates = players[1:]
		}
		if len(candidates) > 0 {
			res.FakeArtistID = candidates[e.intn(len(candidates))].ID
		}
	}

	res.Deliveries = e.buildDeliveries(players, res)
	return res, nil
}

func (e *Engine) buildDeliveries(players []model.Player, res RoundResult) []Delivery {
	deliveries := make([]Delivery, 0, len(players))
	for _, p := range players {
		if res.AllFake || p.ID == res.FakeArtistID {
			deliveries = append(deliveries, Delivery{
				PlayerID: p.ID,
				Role:     RoleFakeArtist,
			})
			continue
		}

		word := res.Word
		// At most one confused artist in expectation; the draw is
		// independent per member, not a single guaranteed pick.
		if res.ConfusedWord != "" && e.chance(1/float64(len(players)-1)) {
			word = res.ConfusedWord
		}
		deliveries = append(deliveries, Delivery{
			PlayerID: p.ID,
			Role:     RoleArtist,
			Word:     &word,
		})
	}
	return deliveries
}

func (e *Engine) drawConfusedWord(language, category, word string) (string, error) {
	for i := 0; i < confusedDrawLimit; i++ {
		second, _ := e.words.Draw(language, category)
		if second != word {
			return second, nil
		}
	}
	return "", ErrConfusedWordDraw
}

func (e *Engine) chance(p float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64() < p
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
