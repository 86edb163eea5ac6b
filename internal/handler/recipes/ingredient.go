package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nabekabebe/recipe-api/internal/api"
	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/middleware"
	"github.com/nabekabebe/recipe-api/internal/store"
)

var (
	listIngredients  = store.ListIngredients
	getIngredient    = store.GetIngredient
	updateIngredient = store.UpdateIngredient
	deleteIngredient = store.DeleteIngredient
)

// @Summary     List own ingredients
// @Description Name-descending. assigned_only=1 restricts to ingredients used by at least one recipe.
// @Tags        ingredient
// @Produce     json
// @Param       assigned_only query string false "0/1"
// @Success     200 {array}  api.IngredientResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/ingredients [get]
func ListIngredientsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		assignedOnly, err := parseAssignedOnly(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid assigned_only flag"})
		}
		ingredients, err := listIngredients(c.Request().Context(), db, middleware.UserID(c), assignedOnly)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.IngredientResponse, 0, len(ingredients))
		for _, i := range ingredients {
			resp = append(resp, api.IngredientResponse{ID: i.ID, Name: i.Name})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Replace an ingredient
// @Description Full update: the name is required.
// @Tags        ingredient
// @Accept      json
// @Produce     json
// @Param       id   path int true "ingredient id"
// @Param       body body api.ReplaceIngredientRequest true "ingredient payload"
// @Success     200 {object} api.IngredientResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/ingredients/{id} [put]
func ReplaceIngredientHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ingredient id"})
		}
		var req api.ReplaceIngredientRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateIngredient(c.Request().Context(), db, middleware.UserID(c), id, req.Name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ingredient not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.IngredientResponse{ID: id, Name: req.Name})
	}
}

// @Summary     Rename an ingredient
// @Description Partial update; an omitted name is a no-op read.
// @Tags        ingredient
// @Accept      json
// @Produce     json
// @Param       id   path int true "ingredient id"
// @Param       body body api.UpdateIngredientRequest true "ingredient patch"
// @Success     200 {object} api.IngredientResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/ingredients/{id} [patch]
func UpdateIngredientHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ingredient id"})
		}
		var req api.UpdateIngredientRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		userID := middleware.UserID(c)

		if req.Name == nil {
			ingredient, err := getIngredient(ctx, db, userID, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ingredient not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusOK, api.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name})
		}

		if err := updateIngredient(ctx, db, userID, id, *req.Name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ingredient not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.IngredientResponse{ID: id, Name: *req.Name})
	}
}

// @Summary     Delete an ingredient
// @Description Removes the ingredient and its recipe associations; recipes themselves are untouched.
// @Tags        ingredient
// @Param       id path int true "ingredient id"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/ingredients/{id} [delete]
func DeleteIngredientHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ingredient id"})
		}
		if err := deleteIngredient(c.Request().Context(), db, middleware.UserID(c), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "ingredient not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
