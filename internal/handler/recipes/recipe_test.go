package recipes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/middleware"
	"github.com/nabekabebe/recipe-api/internal/model"
	"github.com/nabekabebe/recipe-api/internal/service"
	"github.com/nabekabebe/recipe-api/internal/store"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserIDKey, 1)
	return c, rec
}

func newIDCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newCtx(e, method, "/recipes/"+id, body)
	c.SetPath("/recipes/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func restore() {
	listRecipes = store.ListRecipes
	getRecipe = store.GetRecipe
	createRecipe = store.CreateRecipe
	updateRecipe = store.UpdateRecipe
	deleteRecipe = store.DeleteRecipe
	saveRecipeImage = service.SaveRecipeImage
	updateRecipeImage = store.UpdateRecipeImage
	generateThumbnail = service.GenerateThumbnail
	listTags = store.ListTags
	getTag = store.GetTag
	updateTag = store.UpdateTag
	deleteTag = store.DeleteTag
	listIngredients = store.ListIngredients
	getIngredient = store.GetIngredient
	updateIngredient = store.UpdateIngredient
	deleteIngredient = store.DeleteIngredient
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("")
	require.NoError(t, err)
	require.Nil(t, ids)

	ids, err = parseIDList("1,2, 3")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ids)

	_, err = parseIDList("1,x")
	require.Error(t, err)
}

func TestListRecipesHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid tags filter", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodGet, "/recipes?tags=abc", "")
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid tags filter")
	})

	t.Run("invalid ingredients filter", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodGet, "/recipes?ingredients=1,,2", "")
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid ingredients filter")
	})

	t.Run("filters forwarded", func(t *testing.T) {
		t.Cleanup(restore)
		listRecipes = func(_ context.Context, _ database.DB, userID int, tagIDs, ingredientIDs []int) ([]model.Recipe, error) {
			require.Equal(t, 1, userID)
			require.Equal(t, []int{2, 3}, tagIDs)
			require.Equal(t, []int{5}, ingredientIDs)
			return []model.Recipe{}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/recipes?tags=2,3&ingredients=5", "")
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list shape has no detail fields", func(t *testing.T) {
		t.Cleanup(restore)
		listRecipes = func(context.Context, database.DB, int, []int, []int) ([]model.Recipe, error) {
			return []model.Recipe{{ID: 2, Title: "Toast", TimeMinutes: 10, Price: "4.50", Description: "hidden"}}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/recipes", "")
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Toast")
		require.NotContains(t, rec.Body.String(), "description")
		require.NotContains(t, rec.Body.String(), "hidden")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listRecipes = func(context.Context, database.DB, int, []int, []int) ([]model.Recipe, error) {
			return nil, errors.New("db down")
		}
		ctx, rec := newCtx(e, http.MethodGet, "/recipes", "")
		require.NoError(t, ListRecipesHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newCtx(e, http.MethodPost, "/recipes", "{bad json")
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newCtx(e, http.MethodPost, "/recipes", `{"title":"Toast"}`)
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success passes names through", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createRecipe = func(_ context.Context, _ database.DB, r *model.Recipe, tags, ingredients []string) (*model.Recipe, error) {
			require.Equal(t, 1, r.UserID)
			require.Equal(t, "Toast", r.Title)
			require.Equal(t, "4.50", r.Price)
			require.Equal(t, []string{"Vegan", "Breakfast"}, tags)
			require.Equal(t, []string{"Avocado"}, ingredients)
			r.ID = 2
			r.Tags = []model.Tag{{ID: 5, Name: "Vegan"}, {ID: 6, Name: "Breakfast"}}
			r.Ingredients = []model.Ingredient{{ID: 7, Name: "Avocado"}}
			return r, nil
		}
		body := `{"title":"Toast","time_minutes":10,"price":"4.50","tags":[{"name":"Vegan"},{"name":"Breakfast"}],"ingredients":[{"name":"Avocado"}]}`
		ctx, rec := newCtx(e, http.MethodPost, "/recipes", body)
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":2`)
		require.Contains(t, rec.Body.String(), "Vegan")
		require.Contains(t, rec.Body.String(), "Avocado")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createRecipe = func(context.Context, database.DB, *model.Recipe, []string, []string) (*model.Recipe, error) {
			return nil, errors.New("db down")
		}
		ctx, rec := newCtx(e, http.MethodPost, "/recipes", `{"title":"Toast","time_minutes":10,"price":"4.50"}`)
		require.NoError(t, CreateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newIDCtx(e, http.MethodGet, "abc", "")
		require.NoError(t, GetRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not owned reads as missing", func(t *testing.T) {
		t.Cleanup(restore)
		getRecipe = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "3", "")
		require.NoError(t, GetRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getRecipe = func(_ context.Context, _ database.DB, userID, id int) (*model.Recipe, error) {
			require.Equal(t, 1, userID)
			require.Equal(t, 3, id)
			return &model.Recipe{ID: 3, Title: "Curry", Description: "Spicy", Price: "12.50"}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "3", "")
		require.NoError(t, GetRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Spicy")
		require.Contains(t, rec.Body.String(), `"tags":[]`)
	})
}

func TestUpdateRecipeHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("absent tags leave patch nil", func(t *testing.T) {
		t.Cleanup(restore)
		updateRecipe = func(_ context.Context, _ database.DB, userID, id int, p store.RecipePatch) error {
			require.Equal(t, 1, userID)
			require.Equal(t, 3, id)
			require.NotNil(t, p.Title)
			require.Equal(t, "Renamed", *p.Title)
			require.Nil(t, p.Tags)
			require.Nil(t, p.Ingredients)
			return nil
		}
		getRecipe = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return &model.Recipe{ID: 3, Title: "Renamed"}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodPatch, "3", `{"title":"Renamed"}`)
		require.NoError(t, UpdateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty tags list is a clear", func(t *testing.T) {
		t.Cleanup(restore)
		updateRecipe = func(_ context.Context, _ database.DB, _, _ int, p store.RecipePatch) error {
			require.NotNil(t, p.Tags)
			require.Empty(t, *p.Tags)
			require.Nil(t, p.Ingredients)
			return nil
		}
		getRecipe = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return &model.Recipe{ID: 3}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodPatch, "3", `{"tags":[]}`)
		require.NoError(t, UpdateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not owned", func(t *testing.T) {
		t.Cleanup(restore)
		updateRecipe = func(context.Context, database.DB, int, int, store.RecipePatch) error {
			return store.ErrNotFound
		}
		ctx, rec := newIDCtx(e, http.MethodPatch, "3", `{"title":"x"}`)
		require.NoError(t, UpdateRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReplaceRecipeHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("all scalars set, absent lists untouched", func(t *testing.T) {
		t.Cleanup(restore)
		updateRecipe = func(_ context.Context, _ database.DB, _, _ int, p store.RecipePatch) error {
			require.NotNil(t, p.Title)
			require.NotNil(t, p.Description)
			require.NotNil(t, p.TimeMinutes)
			require.NotNil(t, p.Price)
			require.NotNil(t, p.Link)
			require.Nil(t, p.Tags)
			require.Nil(t, p.Ingredients)
			return nil
		}
		getRecipe = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return &model.Recipe{ID: 3, Title: "Toast"}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodPut, "3", `{"title":"Toast","time_minutes":10,"price":"4.50"}`)
		require.NoError(t, ReplaceRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("present lists rebuild", func(t *testing.T) {
		t.Cleanup(restore)
		updateRecipe = func(_ context.Context, _ database.DB, _, _ int, p store.RecipePatch) error {
			require.NotNil(t, p.Tags)
			require.Equal(t, []string{"Vegan"}, *p.Tags)
			return nil
		}
		getRecipe = func(context.Context, database.DB, int, int) (*model.Recipe, error) {
			return &model.Recipe{ID: 3}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodPut, "3", `{"title":"Toast","time_minutes":10,"price":"4.50","tags":[{"name":"Vegan"}]}`)
		require.NoError(t, ReplaceRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteRecipeHandler(t *testing.T) {
	e := echo.New()

	t.Run("deleted", func(t *testing.T) {
		t.Cleanup(restore)
		deleteRecipe = func(_ context.Context, _ database.DB, userID, id int) error {
			require.Equal(t, 1, userID)
			require.Equal(t, 3, id)
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "3", "")
		require.NoError(t, DeleteRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not owned", func(t *testing.T) {
		t.Cleanup(restore)
		deleteRecipe = func(context.Context, database.DB, int, int) error {
			return store.ErrNotFound
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "3", "")
		require.NoError(t, DeleteRecipeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
