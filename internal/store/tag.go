package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/model"
)

// ListTags returns the user's tags ordered name-descending. With
// assignedOnly set, only tags attached to at least one recipe are returned.
func ListTags(ctx context.Context, db database.DB, userID int, assignedOnly bool) ([]model.Tag, error) {
	query := `SELECT id, user_id, name FROM tags WHERE user_id = $1`
	if assignedOnly {
		query += ` AND EXISTS (SELECT 1 FROM recipe_tags WHERE tag_id = tags.id)`
	}
	query += ` ORDER BY name DESC, id DESC`

	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, fmt.Errorf("ListTags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	return tags, nil
}

func GetTag(ctx context.Context, db database.DB, userID, tagID int) (*model.Tag, error) {
	t := &model.Tag{}
	err := db.QueryRow(ctx,
		`SELECT id, user_id, name FROM tags WHERE id = $1 AND user_id = $2`,
		tagID,
		userID,
	).Scan(&t.ID, &t.UserID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetTag: %w", err)
	}
	return t, nil
}

// getOrCreateTag looks up a tag by (user, name), creating it when absent.
// Duplicate names are permitted, so the lookup picks the oldest row.
func getOrCreateTag(ctx context.Context, q querier, userID int, name string) (*model.Tag, error) {
	t := &model.Tag{UserID: userID, Name: name}
	err := q.QueryRow(ctx,
		`SELECT id FROM tags WHERE user_id = $1 AND name = $2 ORDER BY id LIMIT 1`,
		userID,
		name,
	).Scan(&t.ID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("getOrCreateTag: %w", err)
	}
	err = q.QueryRow(ctx,
		`INSERT INTO tags (user_id, name) VALUES ($1, $2) RETURNING id`,
		userID,
		name,
	).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("getOrCreateTag: %w", err)
	}
	return t, nil
}

func UpdateTag(ctx context.Context, db database.DB, userID, tagID int, name string) error {
	ct, err := db.Exec(ctx,
		`UPDATE tags SET name = $1 WHERE id = $2 AND user_id = $3`,
		name,
		tagID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTag: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTag(ctx context.Context, db database.DB, userID, tagID int) error {
	ct, err := db.Exec(ctx,
		`DELETE FROM tags WHERE id = $1 AND user_id = $2`,
		tagID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTag: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
