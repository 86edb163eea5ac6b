package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nabekabebe/recipe-api/internal/api"
	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/middleware"
	"github.com/nabekabebe/recipe-api/internal/service"
	"github.com/nabekabebe/recipe-api/internal/store"
	"github.com/nabekabebe/recipe-api/internal/worker"
)

var (
	saveRecipeImage   = service.SaveRecipeImage
	updateRecipeImage = store.UpdateRecipeImage
	generateThumbnail = service.GenerateThumbnail
)

// @Summary     Upload a recipe image
// @Description Multipart upload; the image field is required. A new image replaces the previous reference. Only the image is touched by this path.
// @Tags        recipe
// @Accept      multipart/form-data
// @Produce     json
// @Param       id    path     int  true "recipe id"
// @Param       image formData file true "image file"
// @Success     200 {object} api.RecipeImageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/recipes/{id}/upload-image [post]
func UploadImageHandler(db database.DB, wp worker.Pool, mediaRoot string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid recipe id"})
		}
		userID := middleware.UserID(c)

		// Ownership first: a foreign recipe must 404 before any payload
		// validation leaks whether it exists.
		if _, err := getRecipe(c.Request().Context(), db, userID, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		fh, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "image field is required"})
		}
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unreadable image upload"})
		}
		defer src.Close()

		imagePath, err := saveRecipeImage(src, mediaRoot)
		if err != nil {
			if errors.Is(err, service.ErrNotImage) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "payload is not a valid image"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateRecipeImage(c.Request().Context(), db, userID, id, imagePath); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "recipe not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		wp.Submit(func() {
			generateThumbnail(mediaRoot, imagePath)
		})

		return c.JSON(http.StatusOK, api.RecipeImageResponse{ID: id, Image: imagePath})
	}
}
