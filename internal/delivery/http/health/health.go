package http_health

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/jmoiron/sqlx"
)

// Controller answers readiness probes by pinging both backing stores.
type Controller struct {
	db     *sqlx.DB
	cache  *redis.Client
	logger *slog.Logger
}

func New(db *sqlx.DB, cache *redis.Client) *Controller {
	return &Controller{
		db:     db,
		cache:  cache,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.health)
}

func (c *Controller) health(ctx *gin.Context) {
	if err := c.db.PingContext(ctx); err != nil {
		c.logger.Error("postgres ping failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "postgres unavailable"})
		return
	}
	if err := c.cache.Ping().Err(); err != nil {
		c.logger.Error("redis ping failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
