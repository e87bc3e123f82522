package app

import (
	"log/slog"

	"github.com/humanbelnik/fakeartist/core/internal/config"
	http_game "github.com/humanbelnik/fakeartist/core/internal/delivery/http/game"
	http_health "github.com/humanbelnik/fakeartist/core/internal/delivery/http/health"
	http_init "github.com/humanbelnik/fakeartist/core/internal/delivery/http/init"
	ws_game "github.com/humanbelnik/fakeartist/core/internal/delivery/ws/game"
	infra_postgres_game "github.com/humanbelnik/fakeartist/core/internal/infra/postgres/game"
	infra_pg_init "github.com/humanbelnik/fakeartist/core/internal/infra/postgres/init"
	infra_redis_codeset "github.com/humanbelnik/fakeartist/core/internal/infra/redis/codeset"
	infra_redis_init "github.com/humanbelnik/fakeartist/core/internal/infra/redis/init"
	"github.com/humanbelnik/fakeartist/core/internal/service/roles"
	"github.com/humanbelnik/fakeartist/core/internal/service/timer"
	"github.com/humanbelnik/fakeartist/core/internal/service/words"
	usecase_game "github.com/humanbelnik/fakeartist/core/internal/usecase/game"
)

func Go(cfg *config.Config) {

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	gameRepository := infra_postgres_game.New(pgConn)
	codeSet := infra_redis_codeset.New(redisConn, "game_codes")

	wordProvider := words.New()
	roleEngine := roles.New(wordProvider)

	gameUC := usecase_game.New(gameRepository, codeSet, roleEngine, cfg.Game.CodeLength, cfg.Game.RoundSeconds)

	hub := ws_game.NewHub(slog.Default())
	timerService := timer.New(gameUC, hub)
	gateway := ws_game.NewGateway(gameUC, hub, timerService)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_game.New(gameUC))
	controllerPool.Add(http_health.New(pgConn, redisConn))
	controllerPool.Add(ws_game.NewController(gateway))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
