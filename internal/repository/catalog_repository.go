package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/database"
	"github.com/powerfrill/showcase-backend-go/internal/models"
)

// CatalogRepository reads and seeds the catalog tables.
// Declaration order is persisted in the position column.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Count returns the number of stored products
func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// Seed replaces the stored catalog with t in a single transaction
func (r *CatalogRepository) Seed(ctx context.Context, t catalog.Table) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"products", "categories", "solutions"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		for i, s := range t.Solutions {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO solutions (position, id, title, hero_image_ref, path) VALUES (?, ?, ?, ?, ?)`,
				i, s.ID, s.Title, s.HeroImageRef, s.Path)
			if err != nil {
				return fmt.Errorf("failed to insert solution %s: %w", s.ID, err)
			}
		}

		for i, c := range t.Categories {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO categories (position, id, name, image_ref, description, solution_id) VALUES (?, ?, ?, ?, ?, ?)`,
				i, c.ID, c.Name, c.ImageRef, c.Description, c.SolutionID)
			if err != nil {
				return fmt.Errorf("failed to insert category %s: %w", c.ID, err)
			}
		}

		for i, p := range t.Products {
			pathJSON, err := json.Marshal(p.CategoryPath)
			if err != nil {
				return fmt.Errorf("failed to encode category path of %s: %w", p.ID, err)
			}
			featuresJSON, err := json.Marshal(p.Features)
			if err != nil {
				return fmt.Errorf("failed to encode features of %s: %w", p.ID, err)
			}
			var advantagesJSON sql.NullString
			if p.Advantages != nil {
				b, err := json.Marshal(p.Advantages)
				if err != nil {
					return fmt.Errorf("failed to encode advantages of %s: %w", p.ID, err)
				}
				advantagesJSON = sql.NullString{String: string(b), Valid: true}
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO products (position, id, category, category_path_json, title, subtitle, image_ref,
					features_json, description, advantages_json, applications, pro_tip, solution_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				i, p.ID, p.Category, string(pathJSON), p.Title, p.Subtitle, p.ImageRef,
				string(featuresJSON), p.Description, advantagesJSON, p.Applications, p.ProTip, p.SolutionID)
			if err != nil {
				return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
			}
		}

		return nil
	})
}

// Load reads the whole catalog in declaration order
func (r *CatalogRepository) Load(ctx context.Context) (catalog.Table, error) {
	var t catalog.Table
	var err error

	if t.Solutions, err = r.loadSolutions(ctx); err != nil {
		return catalog.Table{}, err
	}
	if t.Categories, err = r.loadCategories(ctx); err != nil {
		return catalog.Table{}, err
	}
	if t.Products, err = r.loadProducts(ctx); err != nil {
		return catalog.Table{}, err
	}
	return t, nil
}

func (r *CatalogRepository) loadSolutions(ctx context.Context) ([]models.Solution, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, hero_image_ref, path FROM solutions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}
	defer rows.Close()

	var out []models.Solution
	for rows.Next() {
		var s models.Solution
		if err := rows.Scan(&s.ID, &s.Title, &s.HeroImageRef, &s.Path); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) loadCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, image_ref, description, solution_id FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageRef, &c.Description, &c.SolutionID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) loadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category, category_path_json, title, subtitle, image_ref,
		features_json, description, advantages_json, applications, pro_tip, solution_id
		FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		var pathJSON, featuresJSON string
		var advantagesJSON sql.NullString
		err := rows.Scan(
			&p.ID, &p.Category, &pathJSON, &p.Title, &p.Subtitle, &p.ImageRef,
			&featuresJSON, &p.Description, &advantagesJSON, &p.Applications, &p.ProTip, &p.SolutionID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		if err := json.Unmarshal([]byte(pathJSON), &p.CategoryPath); err != nil {
			return nil, fmt.Errorf("failed to decode category path of %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(featuresJSON), &p.Features); err != nil {
			return nil, fmt.Errorf("failed to decode features of %s: %w", p.ID, err)
		}
		if advantagesJSON.Valid {
			if err := json.Unmarshal([]byte(advantagesJSON.String), &p.Advantages); err != nil {
				return nil, fmt.Errorf("failed to decode advantages of %s: %w", p.ID, err)
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
