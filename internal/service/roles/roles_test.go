package roles

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/humanbelnik/fakeartist/core/internal/model"
	"github.com/humanbelnik/fakeartist/core/internal/service/words"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type RolesUnitSuite struct {
	suite.Suite
}

// fakeWords cycles through a fixed list, so the confused-word redraw is
// guaranteed to terminate (or, with a single word, to exhaust).
type fakeWords struct {
	list []string
	i    int
}

func (f *fakeWords) Draw(language, category string) (string, string) {
	word := f.list[f.i%len(f.list)]
	f.i++
	if category == "" || category == model.CategoryAny {
		category = "fruits"
	}
	return word, category
}

func seededEngine(seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	return NewWithRand(words.NewWithRand(rng), rng)
}

func makePlayers(n int) []model.Player {
	players := make([]model.Player, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("socket-%d", i)
		players = append(players, model.Player{
			ID:           id,
			Name:         fmt.Sprintf("player-%d", i),
			SocketID:     id,
			IsGameMaster: i == 0,
		})
	}
	return players
}

func (suite *RolesUnitSuite) TestDefaultAssignment(t provider.T) {
	t.Parallel()

	engine := seededEngine(1)
	players := makePlayers(4)

	result, err := engine.Assign(players, model.Settings{})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Word)
	assert.NotEmpty(t, result.Category)
	assert.Empty(t, result.ConfusedWord)
	assert.False(t, result.AllFake)
	assert.Len(t, result.Deliveries, 4)

	fakes := 0
	for _, d := range result.Deliveries {
		if d.Role == RoleFakeArtist {
			fakes++
			assert.Equal(t, result.FakeArtistID, d.PlayerID)
			assert.Nil(t, d.Word)
		} else {
			if assert.NotNil(t, d.Word) {
				assert.Equal(t, result.Word, *d.Word)
			}
		}
	}
	assert.Equal(t, 1, fakes)
}

func (suite *RolesUnitSuite) TestEmptyPlayers(t provider.T) {
	t.Parallel()

	engine := seededEngine(2)

	_, err := engine.Assign(nil, model.Settings{})

	assert.ErrorIs(t, err, ErrNoPlayers)
}

func (suite *RolesUnitSuite) TestBetterStartNeverPicksCreator(t provider.T) {
	t.Parallel()

	engine := seededEngine(3)
	players := makePlayers(4)

	for i := 0; i < 1000; i++ {
		result, err := engine.Assign(players, model.Settings{BetterStart: true})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.FakeArtistID)
		assert.NotEqual(t, players[0].ID, result.FakeArtistID)
	}
}

func (suite *RolesUnitSuite) TestBetterStartAloneLeavesNoFake(t provider.T) {
	t.Parallel()

	engine := seededEngine(4)

	result, err := engine.Assign(makePlayers(1), model.Settings{BetterStart: true})

	assert.NoError(t, err)
	assert.Empty(t, result.FakeArtistID)
	assert.Equal(t, RoleArtist, result.Deliveries[0].Role)
}

func (suite *RolesUnitSuite) TestAllFakeArtistsRate(t provider.T) {
	t.Parallel()

	engine := seededEngine(5)
	players := makePlayers(4)

	const trials = 10000
	allFake := 0
	for i := 0; i < trials; i++ {
		result, err := engine.Assign(players, model.Settings{AllFakeArtists: true})
		assert.NoError(t, err)

		if result.AllFake {
			allFake++
			assert.Empty(t, result.FakeArtistID)
			for _, d := range result.Deliveries {
				assert.Equal(t, RoleFakeArtist, d.Role)
				assert.Nil(t, d.Word)
			}
		} else {
			assert.NotEmpty(t, result.FakeArtistID)
		}
	}

	rate := float64(allFake) / trials
	assert.InDelta(t, 0.1, rate, 0.02)
}

func (suite *RolesUnitSuite) TestNoFakeArtistRate(t provider.T) {
	t.Parallel()

	engine := seededEngine(6)
	players := makePlayers(4)

	const trials = 10000
	noFake := 0
	for i := 0; i < trials; i++ {
		result, err := engine.Assign(players, model.Settings{NoFakeArtist: true})
		assert.NoError(t, err)
		assert.False(t, result.AllFake)

		if result.FakeArtistID == "" {
			noFake++
			for _, d := range result.Deliveries {
				assert.Equal(t, RoleArtist, d.Role)
			}
		}
	}

	rate := float64(noFake) / trials
	assert.InDelta(t, 0.1, rate, 0.02)
}

func (suite *RolesUnitSuite) TestConfusedArtistOff(t provider.T) {
	t.Parallel()

	engine := seededEngine(7)
	players := makePlayers(5)

	for i := 0; i < 500; i++ {
		result, err := engine.Assign(players, model.Settings{})

		assert.NoError(t, err)
		assert.Empty(t, result.ConfusedWord)
		for _, d := range result.Deliveries {
			if d.Role == RoleArtist {
				assert.Equal(t, result.Word, *d.Word)
			}
		}
	}
}

func (suite *RolesUnitSuite) TestConfusedArtistOn(t provider.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	engine := NewWithRand(&fakeWords{list: []string{"apple", "pear"}}, rng)
	players := makePlayers(4)

	substitutions := 0
	for i := 0; i < 2000; i++ {
		result, err := engine.Assign(players, model.Settings{ConfusedArtist: true})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.ConfusedWord)
		assert.NotEqual(t, result.Word, result.ConfusedWord)

		for _, d := range result.Deliveries {
			if d.Role == RoleFakeArtist {
				// Withheld no matter what the substitution drew.
				assert.Nil(t, d.Word)
				continue
			}
			if assert.NotNil(t, d.Word) {
				assert.Contains(t, []string{result.Word, result.ConfusedWord}, *d.Word)
				if *d.Word == result.ConfusedWord {
					substitutions++
				}
			}
		}
	}

	// Per non-fake member p = 1/(n-1); with n=4 that is one substitution
	// per round in expectation. Zero over 2000 rounds means the draw is
	// not happening at all.
	assert.Greater(t, substitutions, 0)
}

func (suite *RolesUnitSuite) TestConfusedDrawExhaustsOnSingleWordCategory(t provider.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	engine := NewWithRand(&fakeWords{list: []string{"apple"}}, rng)

	_, err := engine.Assign(makePlayers(3), model.Settings{ConfusedArtist: true})

	assert.ErrorIs(t, err, ErrConfusedWordDraw)
}

func TestRolesSuite(t *testing.T) {
	suite.RunSuite(t, new(RolesUnitSuite))
}
