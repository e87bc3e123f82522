package infra_postgres_game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/humanbelnik/fakeartist/core/internal/model"
	usecase_game "github.com/humanbelnik/fakeartist/core/internal/usecase/game"
	"github.com/jmoiron/sqlx"
)

// Driver persists games in a single table with the players roster and
// settings held as jsonb, so every mutation is one conditionally-scoped
// statement. Concurrent joins against the same code both land; there is
// no read-modify-write of the roster on the Go side.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type gameDTO struct {
	Code               string `db:"code"`
	Players            []byte `db:"players"`
	State              string `db:"state"`
	Settings           []byte `db:"settings"`
	Word               string `db:"word"`
	Category           string `db:"category"`
	FakeArtistID       string `db:"fake_artist_id"`
	ConfusedArtistWord string `db:"confused_word"`
	Timer              int    `db:"timer"`
}

const gameColumns = `code, players, state, settings, word, category, fake_artist_id, confused_word, timer`

func (dto *gameDTO) toModel() (model.Game, error) {
	game := model.Game{
		Code:               dto.Code,
		State:              dto.State,
		Word:               dto.Word,
		Category:           dto.Category,
		FakeArtistID:       dto.FakeArtistID,
		ConfusedArtistWord: dto.ConfusedArtistWord,
		Timer:              dto.Timer,
	}
	if err := json.Unmarshal(dto.Players, &game.Players); err != nil {
		return model.Game{}, fmt.Errorf("decode players: %w", err)
	}
	if err := json.Unmarshal(dto.Settings, &game.Settings); err != nil {
		return model.Game{}, fmt.Errorf("decode settings: %w", err)
	}
	return game, nil
}

func (d *Driver) Insert(ctx context.Context, game model.Game) error {
	players, err := json.Marshal(game.Players)
	if err != nil {
		return err
	}
	settings, err := json.Marshal(game.Settings)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO games (code, players, state, settings, timer)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = d.db.ExecContext(ctx, query, game.Code, players, game.State, settings, game.Timer)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_game.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) FindByCode(ctx context.Context, code string) (model.Game, error) {
	var dto gameDTO

	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE code = $1
	`

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Game{}, usecase_game.ErrGameNotFound
		}
		return model.Game{}, err
	}

	return dto.toModel()
}

func (d *Driver) FindBySocket(ctx context.Context, socketID string) (model.Game, error) {
	var dto gameDTO

	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(players) p
			WHERE p->>'socketId' = $1
		)
	`

	err := d.db.GetContext(ctx, &dto, query, socketID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Game{}, usecase_game.ErrGameNotFound
		}
		return model.Game{}, err
	}

	return dto.toModel()
}

func (d *Driver) AppendPlayer(ctx context.Context, code string, player model.Player) error {
	raw, err := json.Marshal(player)
	if err != nil {
		return err
	}

	query := `
		UPDATE games
		SET players = players || $2::jsonb
		WHERE code = $1
	`

	return d.execExpectingRow(ctx, query, code, raw)
}

func (d *Driver) RemovePlayer(ctx context.Context, code string, playerID string) error {
	query := `
		UPDATE games
		SET players = COALESCE(
			(
				SELECT jsonb_agg(p) FROM jsonb_array_elements(players) p
				WHERE p->>'_id' <> $2
			),
			'[]'::jsonb
		)
		WHERE code = $1
	`

	return d.execExpectingRow(ctx, query, code, playerID)
}

func (d *Driver) UpdateSettings(ctx context.Context, code string, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	query := `
		UPDATE games
		SET settings = $2
		WHERE code = $1 AND state = $3
	`

	result, err := d.db.ExecContext(ctx, query, code, raw, model.StateLobby)
	if err != nil {
		return err
	}
	return d.disambiguateNoRows(ctx, result, code)
}

func (d *Driver) StartRound(ctx context.Context, code string, round model.Round) error {
	query := `
		UPDATE games
		SET state = $2,
			word = $3,
			category = $4,
			fake_artist_id = $5,
			confused_word = $6,
			timer = $7
		WHERE code = $1 AND state = $8
	`

	result, err := d.db.ExecContext(ctx, query,
		code,
		model.StatePlaying,
		round.Word,
		round.Category,
		round.FakeArtistID,
		round.ConfusedArtistWord,
		round.Timer,
		model.StateLobby,
	)
	if err != nil {
		return err
	}
	return d.disambiguateNoRows(ctx, result, code)
}

func (d *Driver) DecrementTimer(ctx context.Context, code string) (int, error) {
	query := `
		UPDATE games
		SET timer = timer - 1
		WHERE code = $1 AND state = $2 AND timer > 0
		RETURNING timer
	`

	var remaining int
	err := d.db.QueryRowxContext(ctx, query, code, model.StatePlaying).Scan(&remaining)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, usecase_game.ErrGameNotFound
		}
		return 0, err
	}

	return remaining, nil
}

func (d *Driver) DeleteByCode(ctx context.Context, code string) error {
	query := `
		DELETE FROM games
		WHERE code = $1
	`

	return d.execExpectingRow(ctx, query, code)
}

func (d *Driver) execExpectingRow(ctx context.Context, query string, args ...any) error {
	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_game.ErrGameNotFound
	}

	return nil
}

// Lobby-conditional updates that touch no rows are either a missing game
// or one that already left the lobby.
func (d *Driver) disambiguateNoRows(ctx context.Context, result sql.Result, code string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	var state string
	err = d.db.GetContext(ctx, &state, `SELECT state FROM games WHERE code = $1`, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return usecase_game.ErrGameNotFound
		}
		return err
	}
	return usecase_game.ErrAlreadyStarted
}
