package http_game

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/fakeartist/core/internal/delivery/http/common"
	"github.com/humanbelnik/fakeartist/core/internal/model"
	usecase_game "github.com/humanbelnik/fakeartist/core/internal/usecase/game"
)

// Controller serves the page-load lookups: the lobby and game pages fetch
// the room by code and redirect home on 404.
type Controller struct {
	usecase *usecase_game.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_game.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	games := router.Group("/games")
	{
		games.GET("/:code", c.game)
	}
}

// GameResponseDTO carries the shared room state. Round secrets are not
// part of the HTTP surface.
type GameResponseDTO struct {
	Code     string         `json:"code"`
	Players  []model.Player `json:"players"`
	State    string         `json:"state"`
	Settings model.Settings `json:"settings"`
	Category string         `json:"category,omitempty"`
	Timer    int            `json:"timer,omitempty"`
}

// Game returns a room by its code
// @Summary Fetch a game room
// @Description Returns the shared state of the room for lobby/game page loads
// @Tags Games
// @Produce json
// @Param code path string true "Game code"
// @Success 200 {object} GameResponseDTO "Room state"
// @Failure 404 {object} http_common.ErrorResponse "Game not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /games/{code} [get]
func (c *Controller) game(ctx *gin.Context) {
	code := ctx.Param("code")

	game, err := c.usecase.GameByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_game.ErrGameNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to fetch game", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Code:     game.Code,
		Players:  game.Players,
		State:    game.State,
		Settings: game.Settings,
		Category: game.Category,
		Timer:    game.Timer,
	})
}
