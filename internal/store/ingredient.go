package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/model"
)

// ListIngredients returns the user's ingredients ordered name-descending,
// optionally restricted to those attached to at least one recipe.
func ListIngredients(ctx context.Context, db database.DB, userID int, assignedOnly bool) ([]model.Ingredient, error) {
	query := `SELECT id, user_id, name FROM ingredients WHERE user_id = $1`
	if assignedOnly {
		query += ` AND EXISTS (SELECT 1 FROM recipe_ingredients WHERE ingredient_id = ingredients.id)`
	}
	query += ` ORDER BY name DESC, id DESC`

	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListIngredients: %w", err)
	}
	defer rows.Close()

	ingredients := []model.Ingredient{}
	for rows.Next() {
		var i model.Ingredient
		if err := rows.Scan(&i.ID, &i.UserID, &i.Name); err != nil {
			return nil, fmt.Errorf("ListIngredients: %w", err)
		}
		ingredients = append(ingredients, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListIngredients: %w", err)
	}
	return ingredients, nil
}

func GetIngredient(ctx context.Context, db database.DB, userID, ingredientID int) (*model.Ingredient, error) {
	i := &model.Ingredient{}
	err := db.QueryRow(ctx,
		`SELECT id, user_id, name FROM ingredients WHERE id = $1 AND user_id = $2`,
		ingredientID,
		userID,
	).Scan(&i.ID, &i.UserID, &i.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetIngredient: %w", err)
	}
	return i, nil
}

func getOrCreateIngredient(ctx context.Context, q querier, userID int, name string) (*model.Ingredient, error) {
	i := &model.Ingredient{UserID: userID, Name: name}
	err := q.QueryRow(ctx,
		`SELECT id FROM ingredients WHERE user_id = $1 AND name = $2 ORDER BY id LIMIT 1`,
		userID,
		name,
	).Scan(&i.ID)
	if err == nil {
		return i, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("getOrCreateIngredient: %w", err)
	}
	err = q.QueryRow(ctx,
		`INSERT INTO ingredients (user_id, name) VALUES ($1, $2) RETURNING id`,
		userID,
		name,
	).Scan(&i.ID)
	if err != nil {
		return nil, fmt.Errorf("getOrCreateIngredient: %w", err)
	}
	return i, nil
}

func UpdateIngredient(ctx context.Context, db database.DB, userID, ingredientID int, name string) error {
	ct, err := db.Exec(ctx,
		`UPDATE ingredients SET name = $1 WHERE id = $2 AND user_id = $3`,
		name,
		ingredientID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateIngredient: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteIngredient(ctx context.Context, db database.DB, userID, ingredientID int) error {
	ct, err := db.Exec(ctx,
		`DELETE FROM ingredients WHERE id = $1 AND user_id = $2`,
		ingredientID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteIngredient: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
