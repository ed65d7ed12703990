package handler

import (
	"context"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database and cache are reachable.
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler builds a health handler. cache may be nil when redis is disabled.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	check := func(name string, err error) {
		if err != nil {
			resp.Status = "degraded"
			resp.Checks[name] = err.Error()
			return
		}
		resp.Checks[name] = "ok"
	}

	check("database", h.db.PingContext(ctx))
	if h.cache != nil {
		check("cache", h.cache.Ping(ctx))
	} else {
		resp.Checks["cache"] = "disabled"
	}

	status := fiber.StatusOK
	if resp.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
