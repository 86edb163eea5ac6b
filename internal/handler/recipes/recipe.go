package recipes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nabekabebe/recipe-api/internal/api"
	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/middleware"
	"github.com/nabekabebe/recipe-api/internal/model"
	"github.com/nabekabebe/recipe-api/internal/store"
)

var (
	listRecipes  = store.ListRecipes
	getRecipe    = store.GetRecipe
	createRecipe = store.CreateRecipe
	updateRecipe = store.UpdateRecipe
	deleteRecipe = store.DeleteRecipe
)

// parseIDList parses a comma-separated id list query parameter.
func parseIDList(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func itemNames(items []api.NamedItemInput) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

func itemNamesPtr(items *[]api.NamedItemInput) *[]string {
	if items == nil {
		return nil
	}
	names := itemNames(*items)
	return &names
}

func toDetailResponse(r *model.Recipe) api.RecipeDetailResponse {
	resp := api.RecipeDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       r.ImagePath,
		Tags:        []api.TagResponse{},
		Ingredients: []api.IngredientResponse{},
	}
	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, api.TagResponse{ID: t.ID, Name: t.Name})
	}
	for _, i := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, api.IngredientResponse{ID: i.ID, Name: i.Name})
	}
	return resp
}

// @Summary     List own recipes
// @Description Newest first. tags and ingredients accept comma-separated id lists; a recipe matching any listed id is included once.
// @Tags        recipe
// @Produce     json
// @Param       tags        query string false "comma-separated tag ids"
// @Param       ingredients query string false "comma-separated ingredient ids"
// @Success     200 {array}  api.RecipeResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes [get]
func ListRecipesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		tagIDs, err := parseIDList(c.QueryParam("tags"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tags filter"})
		}
		ingredientIDs, err := parseIDList(c.QueryParam("ingredients"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid ingredients filter"})
		}

		recipes, err := listRecipes(c.Request().Context(), db, middleware.UserID(c), tagIDs, ingredientIDs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.RecipeResponse, 0, len(recipes))
		for _, r := range recipes {
			resp = append(resp, api.RecipeResponse{
				ID:          r.ID,
				Title:       r.Title,
				TimeMinutes: r.TimeMinutes,
				Price:       r.Price,
				Link:        r.Link,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a recipe
// @Description Embedded tag/ingredient names are resolved get-or-create against the caller's rows and attached to the new recipe.
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       body body api.CreateRecipeRequest true "recipe payload"
// @Success     201 {object} api.RecipeDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes [post]
func CreateRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateRecipeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		recipe := &model.Recipe{
			UserID:      middleware.UserID(c),
			Title:       req.Title,
			Description: req.Description,
			TimeMinutes: req.TimeMinutes,
			Price:       req.Price,
			Link:        req.Link,
		}
		created, err := createRecipe(c.Request().Context(), db, recipe, itemNames(req.Tags), itemNames(req.Ingredients))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toDetailResponse(created))
	}
}

// @Summary     Get a recipe
// @Tags        recipe
// @Produce     json
// @Param       id path int true "recipe id"
// @Success     200 {object} api.RecipeDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{id} [get]
func GetRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe id"})
		}
		recipe, err := getRecipe(c.Request().Context(), db, middleware.UserID(c), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toDetailResponse(recipe))
	}
}

func applyRecipePatch(c echo.Context, db database.DB, recipeID int, patch store.RecipePatch) error {
	userID := middleware.UserID(c)
	if err := updateRecipe(c.Request().Context(), db, userID, recipeID, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
		}
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
	recipe, err := getRecipe(c.Request().Context(), db, userID, recipeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, toDetailResponse(recipe))
}

// @Summary     Replace a recipe
// @Description Full update: scalar fields are required. Present tags/ingredients lists replace the associations; absent lists leave them untouched.
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       id   path int true "recipe id"
// @Param       body body api.ReplaceRecipeRequest true "recipe payload"
// @Success     200 {object} api.RecipeDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{id} [put]
func ReplaceRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe id"})
		}
		var req api.ReplaceRecipeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		return applyRecipePatch(c, db, id, store.RecipePatch{
			Title:       &req.Title,
			Description: &req.Description,
			TimeMinutes: &req.TimeMinutes,
			Price:       &req.Price,
			Link:        &req.Link,
			Tags:        itemNamesPtr(req.Tags),
			Ingredients: itemNamesPtr(req.Ingredients),
		})
	}
}

// @Summary     Partially update a recipe
// @Description Absent fields are untouched. A present tags/ingredients list, even an empty one, replaces the associations. Ownership is immutable.
// @Tags        recipe
// @Accept      json
// @Produce     json
// @Param       id   path int true "recipe id"
// @Param       body body api.UpdateRecipeRequest true "recipe patch"
// @Success     200 {object} api.RecipeDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{id} [patch]
func UpdateRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe id"})
		}
		var req api.UpdateRecipeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		return applyRecipePatch(c, db, id, store.RecipePatch{
			Title:       req.Title,
			Description: req.Description,
			TimeMinutes: req.TimeMinutes,
			Price:       req.Price,
			Link:        req.Link,
			Tags:        itemNamesPtr(req.Tags),
			Ingredients: itemNamesPtr(req.Ingredients),
		})
	}
}

// @Summary     Delete a recipe
// @Tags        recipe
// @Param       id path int true "recipe id"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{id} [delete]
func DeleteRecipeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe id"})
		}
		if err := deleteRecipe(c.Request().Context(), db, middleware.UserID(c), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
