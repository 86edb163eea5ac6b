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
	listTags  = store.ListTags
	getTag    = store.GetTag
	updateTag = store.UpdateTag
	deleteTag = store.DeleteTag
)

// parseAssignedOnly reads the assigned_only query flag (0/1, true/false).
func parseAssignedOnly(c echo.Context) (bool, error) {
	raw := c.QueryParam("assigned_only")
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// @Summary     List own tags
// @Description Name-descending. assigned_only=1 restricts to tags attached to at least one recipe. Tags are created only through recipe writes.
// @Tags        tag
// @Produce     json
// @Param       assigned_only query string false "0/1"
// @Success     200 {array}  api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags [get]
func ListTagsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		assignedOnly, err := parseAssignedOnly(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid assigned_only flag"})
		}
		tags, err := listTags(c.Request().Context(), db, middleware.UserID(c), assignedOnly)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.TagResponse, 0, len(tags))
		for _, t := range tags {
			resp = append(resp, api.TagResponse{ID: t.ID, Name: t.Name})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Replace a tag
// @Description Full update: the name is required.
// @Tags        tag
// @Accept      json
// @Produce     json
// @Param       id   path int true "tag id"
// @Param       body body api.ReplaceTagRequest true "tag payload"
// @Success     200 {object} api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags/{id} [put]
func ReplaceTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tag id"})
		}
		var req api.ReplaceTagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateTag(c.Request().Context(), db, middleware.UserID(c), id, req.Name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.TagResponse{ID: id, Name: req.Name})
	}
}

// @Summary     Rename a tag
// @Description Partial update; an omitted name is a no-op read.
// @Tags        tag
// @Accept      json
// @Produce     json
// @Param       id   path int true "tag id"
// @Param       body body api.UpdateTagRequest true "tag patch"
// @Success     200 {object} api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags/{id} [patch]
func UpdateTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tag id"})
		}
		var req api.UpdateTagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		userID := middleware.UserID(c)

		if req.Name == nil {
			tag, err := getTag(ctx, db, userID, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusOK, api.TagResponse{ID: tag.ID, Name: tag.Name})
		}

		if err := updateTag(ctx, db, userID, id, *req.Name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.TagResponse{ID: id, Name: *req.Name})
	}
}

// @Summary     Delete a tag
// @Description Removes the tag and its recipe associations; recipes themselves are untouched.
// @Tags        tag
// @Param       id path int true "tag id"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /recipe/tags/{id} [delete]
func DeleteTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid tag id"})
		}
		if err := deleteTag(c.Request().Context(), db, middleware.UserID(c), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "tag not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
