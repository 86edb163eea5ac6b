package recipes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/model"
	"github.com/nabekabebe/recipe-api/internal/store"
)

type realValidator struct{ v *validator.Validate }

func (r *realValidator) Validate(i interface{}) error { return r.v.Struct(i) }

func newTagIDCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newCtx(e, method, "/tags/"+id, body)
	c.SetPath("/tags/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestListTagsHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid assigned_only", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodGet, "/tags?assigned_only=maybe", "")
		require.NoError(t, ListTagsHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid assigned_only flag")
	})

	t.Run("assigned_only forwarded", func(t *testing.T) {
		t.Cleanup(restore)
		listTags = func(_ context.Context, _ database.DB, userID int, assignedOnly bool) ([]model.Tag, error) {
			require.Equal(t, 1, userID)
			require.True(t, assignedOnly)
			return []model.Tag{}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/tags?assigned_only=1", "")
		require.NoError(t, ListTagsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("defaults to all tags", func(t *testing.T) {
		t.Cleanup(restore)
		listTags = func(_ context.Context, _ database.DB, _ int, assignedOnly bool) ([]model.Tag, error) {
			require.False(t, assignedOnly)
			return []model.Tag{{ID: 5, Name: "Vegan"}}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/tags", "")
		require.NoError(t, ListTagsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Vegan")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listTags = func(context.Context, database.DB, int, bool) ([]model.Tag, error) {
			return nil, errors.New("db down")
		}
		ctx, rec := newCtx(e, http.MethodGet, "/tags", "")
		require.NoError(t, ListTagsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestReplaceTagHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &realValidator{v: validator.New()}

	t.Run("missing name rejected", func(t *testing.T) {
		t.Cleanup(restore)
		updateTag = func(context.Context, database.DB, int, int, string) error {
			t.Fatal("no rename may be issued")
			return nil
		}
		ctx, rec := newTagIDCtx(e, http.MethodPut, "5", `{}`)
		require.NoError(t, ReplaceTagHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("replaced", func(t *testing.T) {
		t.Cleanup(restore)
		updateTag = func(_ context.Context, _ database.DB, userID, id int, name string) error {
			require.Equal(t, 1, userID)
			require.Equal(t, 5, id)
			require.Equal(t, "Brunch", name)
			return nil
		}
		ctx, rec := newTagIDCtx(e, http.MethodPut, "5", `{"name":"Brunch"}`)
		require.NoError(t, ReplaceTagHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Brunch")
	})

	t.Run("not owned", func(t *testing.T) {
		t.Cleanup(restore)
		updateTag = func(context.Context, database.DB, int, int, string) error {
			return store.ErrNotFound
		}
		ctx, rec := newTagIDCtx(e, http.MethodPut, "5", `{"name":"Brunch"}`)
		require.NoError(t, ReplaceTagHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateTagHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newTagIDCtx(e, http.MethodPatch, "abc", `{"name":"x"}`)
		require.NoError(t, UpdateTagHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("renamed", func(t *testing.T) {
		t.Cleanup(restore)
		updateTag = func(_ context.Context, _ database.DB, userID, id int, name string) error {
			require.Equal(t, 1, userID)
			require.Equal(t, 5, id)
			require.Equal(t, "Brunch", name)
			return nil
		}
		ctx, rec := newTagIDCtx(e, http.MethodPatch, "5", `{"name":"Brunch"}`)
		require.NoError(t, UpdateTagHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Brunch")
	})

	t.Run("omitted name is a no-op", func(t *testing.T) {
		t.Cleanup(restore)
		updateTag = func(context.Context, database.DB, int, int, string) error {
			t.Fatal("no rename must be issued")
			return nil
		}
		getTag = func(context.Context, database.DB, int, int) (*model.Tag, error) {
			return &model.Tag{ID: 5, Name: "Vegan"}, nil
		}
		ctx, rec := newTagIDCtx(e, http.MethodPatch, "5", `{}`)
		require.NoError(t, UpdateTagHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Vegan")
	})

	t.Run("not owned", func(t *testing.T) {
		t.Cleanup(restore)
		updateTag = func(context.Context, database.DB, int, int, string) error {
			return store.ErrNotFound
		}
		ctx, rec := newTagIDCtx(e, http.MethodPatch, "5", `{"name":"x"}`)
		require.NoError(t, UpdateTagHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTagHandler(t *testing.T) {
	e := echo.New()

	t.Run("deleted", func(t *testing.T) {
		t.Cleanup(restore)
		deleteTag = func(_ context.Context, _ database.DB, userID, id int) error {
			require.Equal(t, 1, userID)
			require.Equal(t, 5, id)
			return nil
		}
		ctx, rec := newTagIDCtx(e, http.MethodDelete, "5", "")
		require.NoError(t, DeleteTagHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not owned", func(t *testing.T) {
		t.Cleanup(restore)
		deleteTag = func(context.Context, database.DB, int, int) error {
			return store.ErrNotFound
		}
		ctx, rec := newTagIDCtx(e, http.MethodDelete, "5", "")
		require.NoError(t, DeleteTagHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
