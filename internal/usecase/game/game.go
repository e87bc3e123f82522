package usecase_game

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/humanbelnik/fakeartist/core/internal/model"
	"github.com/humanbelnik/fakeartist/core/internal/service/roles"
	"github.com/humanbelnik/fakeartist/core/internal/service/words"
)

var (
	ErrCodeConflict    = errors.New("code conflict")
	ErrCodesExhausted  = errors.New("no available game codes")
	ErrGameNotFound    = errors.New("game not found")
	ErrNotGameMaster   = errors.New("not the game master")
	ErrAlreadyStarted  = errors.New("round already started")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrInternal        = errors.New("internal error")
)

//go:generate mockery --name=GameRepository --output=./mocks/game/repository --filename=repository.go
type GameRepository interface {
	Insert(ctx context.Context, game model.Game) error
	FindByCode(ctx context.Context, code string) (model.Game, error)
	FindBySocket(ctx context.Context, socketID string) (model.Game, error)
	AppendPlayer(ctx context.Context, code string, player model.Player) error
	RemovePlayer(ctx context.Context, code string, playerID string) error
	UpdateSettings(ctx context.Context, code string, settings model.Settings) error
	StartRound(ctx context.Context, code string, round model.Round) error
	DecrementTimer(ctx context.Context, code string) (int, error)
	DeleteByCode(ctx context.Context, code string) error
}

//go:generate mockery --name=CodeReserver --output=./mocks/game/codeset --filename=codeset.go
type CodeReserver interface {
	Reserve(code string) (bool, error)
	Release(code string) error
}

//go:generate mockery --name=RoleAssigner --output=./mocks/game/assigner --filename=assigner.go
type RoleAssigner interface {
	Assign(players []model.Player, settings model.Settings) (roles.RoundResult, error)
}

type Usecase struct {
	repo     GameRepository
	codes    CodeReserver
	assigner RoleAssigner

	codeLength   int
	roundSeconds int
}

func New(repo GameRepository, codes CodeReserver, assigner RoleAssigner, codeLength, roundSeconds int) *Usecase {
	if codeLength <= 0 {
		codeLength = 5 /* default */
	}
	if roundSeconds <= 0 {
		roundSeconds = 300 /* 5 minutes */
	}

	return &Usecase{
		repo:         repo,
		codes:        codes,
		assigner:     assigner,
		codeLength:   codeLength,
		roundSeconds: roundSeconds,
	}
}

// CreateGame allocates a fresh code and inserts a lobby with the creator as
// game master. The creator's player id is the connection id.
func (u *Usecase) CreateGame(ctx context.Context, socketID, playerName string) (model.Game, error) {
	game := model.Game{
		Players: []model.Player{{
			ID:           socketID,
			Name:         playerName,
			SocketID:     socketID,
			IsGameMaster: true,
		}},
		State: model.StateLobby,
	}

	code, err := u.insertWithFreshCode(ctx, game)
	if err != nil {
		return model.Game{}, err
	}
	game.Code = code
	return game, nil
}

// Assuming that codes can conflict.
// Reserve in the shared set first, then retry on insert clash.
func (u *Usecase) insertWithFreshCode(ctx context.Context, game model.Game) (string, error) {
	var retries = 3
	for retries > 0 {
		code := u.buildGameCode()

		free, err := u.codes.Reserve(code)
		if err != nil {
			return model.EmptyCode, errors.Join(ErrInternal, err)
		}
		if !free {
			retries--
			continue
		}

		game.Code = code
		if err := u.repo.Insert(ctx, game); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
				continue
			}
			_ = u.codes.Release(code)
			return model.EmptyCode, errors.Join(ErrInternal, err)
		}
		return code, nil
	}
	return model.EmptyCode, ErrCodesExhausted
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (u *Usecase) buildGameCode() string {
	var builder strings.Builder
	builder.Grow(u.codeLength)

	for i := 0; i < u.codeLength; i++ {
		builder.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}

	return builder.String()
}

// JoinGame appends a non-master player and returns the updated game.
func (u *Usecase) JoinGame(ctx context.Context, code, socketID, playerName string) (model.Game, error) {
	player := model.Player{
		ID:           socketID,
		Name:         playerName,
		SocketID:     socketID,
		IsGameMaster: false,
	}

	if err := u.repo.AppendPlayer(ctx, code, player); err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return model.Game{}, ErrGameNotFound
		}
		return model.Game{}, errors.Join(ErrInternal, err)
	}

	return u.GameByCode(ctx, code)
}

// StartGame transitions a lobby to playing. Game-master only: anyone else
// gets ErrNotGameMaster and the game is left untouched.
func (u *Usecase) StartGame(ctx context.Context, code, socketID string) (model.Game, roles.RoundResult, error) {
	game, err := u.GameByCode(ctx, code)
	if err != nil {
		return model.Game{}, roles.RoundResult{}, err
	}
	if !game.IsGameMasterSocket(socketID) {
		return model.Game{}, roles.RoundResult{}, ErrNotGameMaster
	}

	result, err := u.assigner.Assign(game.Players, game.Settings)
	if err != nil {
		return model.Game{}, roles.RoundResult{}, errors.Join(ErrInternal, err)
	}

	round := model.Round{
		Word:               result.Word,
		Category:           result.Category,
		FakeArtistID:       result.FakeArtistID,
		ConfusedArtistWord: result.ConfusedWord,
		Timer:              u.roundSeconds,
	}
	if err := u.repo.StartRound(ctx, code, round); err != nil {
		if errors.Is(err, ErrAlreadyStarted) || errors.Is(err, ErrGameNotFound) {
			return model.Game{}, roles.RoundResult{}, err
		}
		return model.Game{}, roles.RoundResult{}, errors.Join(ErrInternal, err)
	}

	updated, err := u.GameByCode(ctx, code)
	if err != nil {
		return model.Game{}, roles.RoundResult{}, err
	}
	return updated, result, nil
}

// RemovePlayer kicks a member. Game-master only. Removing an id that is not
// in the game is a no-op that still returns current state.
func (u *Usecase) RemovePlayer(ctx context.Context, code, socketID, playerID string) (model.Game, error) {
	game, err := u.GameByCode(ctx, code)
	if err != nil {
		return model.Game{}, err
	}
	if !game.IsGameMasterSocket(socketID) {
		return model.Game{}, ErrNotGameMaster
	}

	if err := u.repo.RemovePlayer(ctx, code, playerID); err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return model.Game{}, ErrGameNotFound
		}
		return model.Game{}, errors.Join(ErrInternal, err)
	}

	return u.GameByCode(ctx, code)
}

// UpdateSettings replaces the lobby settings. Game-master only, lobby only.
func (u *Usecase) UpdateSettings(ctx context.Context, code, socketID string, settings model.Settings) (model.Game, error) {
	if err := validateSettings(settings); err != nil {
		return model.Game{}, err
	}

	game, err := u.GameByCode(ctx, code)
	if err != nil {
		return model.Game{}, err
	}
	if !game.IsGameMasterSocket(socketID) {
		return model.Game{}, ErrNotGameMaster
	}

	if err := u.repo.UpdateSettings(ctx, code, settings); err != nil {
		if errors.Is(err, ErrGameNotFound) || errors.Is(err, ErrAlreadyStarted) {
			return model.Game{}, err
		}
		return model.Game{}, errors.Join(ErrInternal, err)
	}

	return u.GameByCode(ctx, code)
}

func validateSettings(s model.Settings) error {
	if s.Language != "" {
		known := false
		for _, lang := range words.Languages() {
			if lang == s.Language {
				known = true
				break
			}
		}
		if !known {
			return ErrInvalidSettings
		}
	}
	if s.Category != "" && s.Category != model.CategoryAny {
		known := false
		for _, cat := range words.Categories(s.Language) {
			if cat == s.Category {
				known = true
				break
			}
		}
		if !known {
			return ErrInvalidSettings
		}
	}
	return nil
}

// Leave handles a dropped connection. A socket that never joined a game is
// a silent no-op. When the last member leaves, the game is deleted and its
// code released; otherwise the updated game is returned for broadcast.
func (u *Usecase) Leave(ctx context.Context, socketID string) (*model.Game, error) {
	game, err := u.repo.FindBySocket(ctx, socketID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, nil
		}
		return nil, errors.Join(ErrInternal, err)
	}

	if err := u.repo.RemovePlayer(ctx, game.Code, socketID); err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, nil
		}
		return nil, errors.Join(ErrInternal, err)
	}

	updated, err := u.repo.FindByCode(ctx, game.Code)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, nil
		}
		return nil, errors.Join(ErrInternal, err)
	}

	if len(updated.Players) == 0 {
		if err := u.repo.DeleteByCode(ctx, game.Code); err != nil && !errors.Is(err, ErrGameNotFound) {
			return nil, errors.Join(ErrInternal, err)
		}
		_ = u.codes.Release(game.Code)
		return nil, nil
	}

	return &updated, nil
}

// GameByCode fetches current authoritative state.
func (u *Usecase) GameByCode(ctx context.Context, code string) (model.Game, error) {
	game, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return model.Game{}, ErrGameNotFound
		}
		return model.Game{}, errors.Join(ErrInternal, err)
	}
	return game, nil
}

// DecrementTimer atomically counts the round down by one second. Used by
// the timer service, conditional on the game still playing with time left.
func (u *Usecase) DecrementTimer(ctx context.Context, code string) (int, error) {
	remaining, err := u.repo.DecrementTimer(ctx, code)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, errors.Join(ErrInternal, err)
	}
	return remaining, nil
}
