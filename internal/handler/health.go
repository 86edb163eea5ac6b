package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nabekabebe/recipe-api/internal/api"
	"github.com/nabekabebe/recipe-api/internal/cache"
	"github.com/nabekabebe/recipe-api/internal/database"
)

// HealthResponse reports service liveness.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// @Summary     Health check
// @Description Verifies database and token store connectivity.
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "token store unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
