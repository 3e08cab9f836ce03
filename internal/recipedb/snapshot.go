package recipedb

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"recipebox/internal/recipe"
)

const (
	kindIngredient  = "ingredient"
	kindInstruction = "instruction"
)

// Save replaces the stored snapshot with records.
func (d *DB) Save(ctx context.Context, records []recipe.Recipe) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		return d.saveTx(ctx, records)
	})
}

func (d *DB) saveTx(ctx context.Context, records []recipe.Recipe) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_lines"); err != nil {
		return fmt.Errorf("clear recipe lines: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM recipes"); err != nil {
		return fmt.Errorf("clear recipes: %w", err)
	}

	insertRecipe, err := tx.PrepareContext(ctx,
		"INSERT INTO recipes (id, position, name, servings) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare recipe insert: %w", err)
	}
	defer insertRecipe.Close()

	insertLine, err := tx.PrepareContext(ctx,
		"INSERT INTO recipe_lines (recipe_id, kind, position, body) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare line insert: %w", err)
	}
	defer insertLine.Close()

	for pos, r := range records {
		if _, err := insertRecipe.ExecContext(ctx, int64(r.ID), pos, r.Name, int64(r.Servings)); err != nil {
			return fmt.Errorf("insert recipe %d: %w", r.ID, err)
		}
		if err := insertLines(ctx, insertLine, r.ID, kindIngredient, r.Ingredients); err != nil {
			return err
		}
		if err := insertLines(ctx, insertLine, r.ID, kindInstruction, r.Instructions); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

func insertLines(ctx context.Context, stmt *sql.Stmt, id uint32, kind string, lines []string) error {
	for pos, body := range lines {
		if _, err := stmt.ExecContext(ctx, int64(id), kind, pos, body); err != nil {
			return fmt.Errorf("insert %s %d of recipe %d: %w", kind, pos, id, err)
		}
	}
	return nil
}

// Load returns the stored snapshot in its saved order. An empty database
// yields an empty, non-nil slice.
func (d *DB) Load(ctx context.Context) ([]recipe.Recipe, error) {
	ctx = ensureContext(ctx)
	var records []recipe.Recipe
	err := retryOnBusy(ctx, func() error {
		var loadErr error
		records, loadErr = d.load(ctx)
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DB) load(ctx context.Context) ([]recipe.Recipe, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT id, name, servings FROM recipes ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	records := []recipe.Recipe{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id       int64
			name     string
			servings int64
		)
		if err := rows.Scan(&id, &name, &servings); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		if !fitsUint32(id) {
			return nil, fmt.Errorf("%w: recipe row %d: id %d out of range", recipe.ErrFormat, len(records), id)
		}
		if !fitsUint32(servings) {
			return nil, fmt.Errorf("%w: recipe %d: servings %d out of range", recipe.ErrFormat, id, servings)
		}
		index[id] = len(records)
		records = append(records, recipe.Recipe{
			ID:           uint32(id),
			Name:         name,
			Ingredients:  []string{},
			Instructions: []string{},
			Servings:     uint32(servings),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	lines, err := d.db.QueryContext(ctx,
		"SELECT recipe_id, kind, body FROM recipe_lines ORDER BY recipe_id, kind, position")
	if err != nil {
		return nil, fmt.Errorf("query recipe lines: %w", err)
	}
	defer lines.Close()

	for lines.Next() {
		var (
			id   int64
			kind string
			body string
		)
		if err := lines.Scan(&id, &kind, &body); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		idx, ok := index[id]
		if !ok {
			continue
		}
		switch kind {
		case kindIngredient:
			records[idx].Ingredients = append(records[idx].Ingredients, body)
		case kindInstruction:
			records[idx].Instructions = append(records[idx].Instructions, body)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe lines: %w", err)
	}
	return records, nil
}

func fitsUint32(v int64) bool {
	return v >= 0 && v <= math.MaxUint32
}
