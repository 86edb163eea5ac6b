package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/model"
)

// RecipePatch carries a partial update. Nil fields are left untouched; a
// non-nil Tags/Ingredients slice (even empty) replaces the recipe's
// associations with the named rows.
type RecipePatch struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Price       *string
	Link        *string
	Tags        *[]string
	Ingredients *[]string
}

// ListRecipes returns the user's recipes newest-id-first. Non-empty tagIDs
// or ingredientIDs restrict the result to recipes associated with any of
// the listed ids; DISTINCT keeps a recipe matching several ids unique.
func ListRecipes(ctx context.Context, db database.DB, userID int, tagIDs, ingredientIDs []int) ([]model.Recipe, error) {
	query := `SELECT DISTINCT r.id, r.user_id, r.title, r.time_minutes, r.price::text, r.link, r.image_path
		 FROM recipes r`
	if len(tagIDs) > 0 {
		query += ` JOIN recipe_tags rt ON rt.recipe_id = r.id`
	}
	if len(ingredientIDs) > 0 {
		query += ` JOIN recipe_ingredients ri ON ri.recipe_id = r.id`
	}
	query += ` WHERE r.user_id = $1`
	args := []any{userID}
	if len(tagIDs) > 0 {
		args = append(args, tagIDs)
		query += fmt.Sprintf(` AND rt.tag_id = ANY($%d)`, len(args))
	}
	if len(ingredientIDs) > 0 {
		args = append(args, ingredientIDs)
		query += fmt.Sprintf(` AND ri.ingredient_id = ANY($%d)`, len(args))
	}
	query += ` ORDER BY r.id DESC`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListRecipes: %w", err)
	}
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.TimeMinutes, &r.Price, &r.Link, &r.ImagePath); err != nil {
			return nil, fmt.Errorf("ListRecipes: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe loads one of the user's recipes with its tags and ingredients.
func GetRecipe(ctx context.Context, db database.DB, userID, recipeID int) (*model.Recipe, error) {
	r := &model.Recipe{}
	err := db.QueryRow(ctx,
		`SELECT id, user_id, title, description, time_minutes, price::text, link, image_path
		 FROM recipes WHERE id = $1 AND user_id = $2`,
		recipeID,
		userID,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.TimeMinutes, &r.Price, &r.Link, &r.ImagePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetRecipe: %w", err)
	}

	if r.Tags, err = loadRecipeTags(ctx, db, r.ID); err != nil {
		return nil, err
	}
	if r.Ingredients, err = loadRecipeIngredients(ctx, db, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRecipe inserts the recipe and reconciles the named tags and
// ingredients against the owner's rows, all in one transaction.
func CreateRecipe(ctx context.Context, db database.DB, r *model.Recipe, tags, ingredients []string) (*model.Recipe, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateRecipe: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO recipes (user_id, title, description, time_minutes, price, link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		r.UserID,
		r.Title,
		r.Description,
		r.TimeMinutes,
		r.Price,
		r.Link,
	).Scan(&r.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateRecipe: %w", err)
	}

	if r.Tags, err = attachTags(ctx, tx, r.UserID, r.ID, tags); err != nil {
		return nil, err
	}
	if r.Ingredients, err = attachIngredients(ctx, tx, r.UserID, r.ID, ingredients); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateRecipe: %w", err)
	}
	return r, nil
}

// UpdateRecipe applies a patch to one of the user's recipes. Scalar updates
// and association rebuilds share a transaction so a failure can never leave
// the recipe with partially cleared tags or ingredients.
func UpdateRecipe(ctx context.Context, db database.DB, userID, recipeID int, p RecipePatch) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdateRecipe: %w", err)
	}
	defer tx.Rollback(ctx)

	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.TimeMinutes != nil {
		set("time_minutes", *p.TimeMinutes)
	}
	if p.Price != nil {
		set("price", *p.Price)
	}
	if p.Link != nil {
		set("link", *p.Link)
	}

	if len(sets) > 0 {
		args = append(args, recipeID, userID)
		query := fmt.Sprintf(`UPDATE recipes SET %s WHERE id = $%d AND user_id = $%d`,
			strings.Join(sets, ", "), len(args)-1, len(args))
		ct, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("UpdateRecipe: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}
	} else {
		var id int
		err := tx.QueryRow(ctx,
			`SELECT id FROM recipes WHERE id = $1 AND user_id = $2`,
			recipeID,
			userID,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("UpdateRecipe: %w", err)
		}
	}

	if p.Tags != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID); err != nil {
			return fmt.Errorf("UpdateRecipe: %w", err)
		}
		if _, err := attachTags(ctx, tx, userID, recipeID, *p.Tags); err != nil {
			return err
		}
	}
	if p.Ingredients != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
			return fmt.Errorf("UpdateRecipe: %w", err)
		}
		if _, err := attachIngredients(ctx, tx, userID, recipeID, *p.Ingredients); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateRecipe: %w", err)
	}
	return nil
}

func DeleteRecipe(ctx context.Context, db database.DB, userID, recipeID int) error {
	ct, err := db.Exec(ctx,
		`DELETE FROM recipes WHERE id = $1 AND user_id = $2`,
		recipeID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteRecipe: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRecipeImage points the recipe at a newly stored image file.
func UpdateRecipeImage(ctx context.Context, db database.DB, userID, recipeID int, imagePath string) error {
	ct, err := db.Exec(ctx,
		`UPDATE recipes SET image_path = $1 WHERE id = $2 AND user_id = $3`,
		imagePath,
		recipeID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateRecipeImage: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// attachTags resolves each name through get-or-create and links the rows to
// the recipe. A name repeated in the payload collapses to one association.
func attachTags(ctx context.Context, q querier, userID, recipeID int, names []string) ([]model.Tag, error) {
	tags := []model.Tag{}
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		t, err := getOrCreateTag(ctx, q, userID, name)
		if err != nil {
			return nil, err
		}
		_, err = q.Exec(ctx,
			`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			recipeID,
			t.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("attachTags: %w", err)
		}
		tags = append(tags, *t)
	}
	return tags, nil
}

func attachIngredients(ctx context.Context, q querier, userID, recipeID int, names []string) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		i, err := getOrCreateIngredient(ctx, q, userID, name)
		if err != nil {
			return nil, err
		}
		_, err = q.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			recipeID,
			i.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("attachIngredients: %w", err)
		}
		ingredients = append(ingredients, *i)
	}
	return ingredients, nil
}

func loadRecipeTags(ctx context.Context, q querier, recipeID int) ([]model.Tag, error) {
	rows, err := q.Query(ctx,
		`SELECT t.id, t.user_id, t.name
		 FROM tags t JOIN recipe_tags rt ON rt.tag_id = t.id
		 WHERE rt.recipe_id = $1
		 ORDER BY t.id`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("loadRecipeTags: %w", err)
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, fmt.Errorf("loadRecipeTags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loadRecipeTags: %w", err)
	}
	return tags, nil
}

func loadRecipeIngredients(ctx context.Context, q querier, recipeID int) ([]model.Ingredient, error) {
	rows, err := q.Query(ctx,
		`SELECT i.id, i.user_id, i.name
		 FROM ingredients i JOIN recipe_ingredients ri ON ri.ingredient_id = i.id
		 WHERE ri.recipe_id = $1
		 ORDER BY i.id`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("loadRecipeIngredients: %w", err)
	}
	defer rows.Close()

	ingredients := []model.Ingredient{}
	for rows.Next() {
		var i model.Ingredient
		if err := rows.Scan(&i.ID, &i.UserID, &i.Name); err != nil {
			return nil, fmt.Errorf("loadRecipeIngredients: %w", err)
		}
		ingredients = append(ingredients, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loadRecipeIngredients: %w", err)
	}
	return ingredients, nil
}
