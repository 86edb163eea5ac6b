package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/nabekabebe/recipe-api/internal/database"
)

func TestListTags(t *testing.T) {
	t.Run("all tags", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "EXISTS")
				require.Contains(t, sql, "ORDER BY name DESC, id DESC")
				require.Equal(t, []any{1}, args)
				return &fakeRows{vals: [][]any{
					{2, 1, "Vegan"},
					{1, 1, "Dessert"},
				}}, nil
			},
		}
		tags, err := ListTags(context.Background(), db, 1, false)
		require.NoError(t, err)
		require.Len(t, tags, 2)
		require.Equal(t, "Vegan", tags[0].Name)
	})

	t.Run("assigned only", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "EXISTS (SELECT 1 FROM recipe_tags")
				return &fakeRows{vals: [][]any{}}, nil
			},
		}
		tags, err := ListTags(context.Background(), db, 1, true)
		require.NoError(t, err)
		require.Empty(t, tags)
	})
}

func TestGetTag(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{5, 1}, args)
				return valsRow{vals: []any{5, 1, "Vegan"}}
			},
		}
		tag, err := GetTag(context.Background(), db, 1, 5)
		require.NoError(t, err)
		require.Equal(t, "Vegan", tag.Name)
	})

	t.Run("not owned", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return valsRow{err: pgx.ErrNoRows}
			},
		}
		_, err := GetTag(context.Background(), db, 2, 5)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetOrCreateTag(t *testing.T) {
	t.Run("existing row reused", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "ORDER BY id LIMIT 1")
				require.Equal(t, []any{1, "Vegan"}, args)
				return valsRow{vals: []any{5}}
			},
		}
		tag, err := getOrCreateTag(context.Background(), db, 1, "Vegan")
		require.NoError(t, err)
		require.Equal(t, 5, tag.ID)
		require.Equal(t, "Vegan", tag.Name)
	})

	t.Run("created when absent", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				if sql[:6] == "SELECT" {
					return valsRow{err: pgx.ErrNoRows}
				}
				require.Contains(t, sql, "INSERT INTO tags")
				return valsRow{vals: []any{6}}
			},
		}
		tag, err := getOrCreateTag(context.Background(), db, 1, "Dinner")
		require.NoError(t, err)
		require.Equal(t, 6, tag.ID)
	})

	t.Run("lookup error is not treated as absent", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return valsRow{err: errors.New("connection reset")}
			},
		}
		_, err := getOrCreateTag(context.Background(), db, 1, "Vegan")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateTag(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{"Brunch", 5, 1}, args)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateTag(context.Background(), db, 1, 5, "Brunch"))
	})

	t.Run("not owned", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, UpdateTag(context.Background(), db, 2, 5, "Brunch"), ErrNotFound)
	})
}

func TestDeleteTag(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{5, 1}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteTag(context.Background(), db, 1, 5))
	})

	t.Run("not owned", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteTag(context.Background(), db, 2, 5), ErrNotFound)
	})
}
