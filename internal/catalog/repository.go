package catalog

import (
	"context"
	"fmt"

	"cestodamore/pkg/models"

	"gorm.io/gorm"
)

// Repository answers catalog queries for the assistant's search tools.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SearchResult is a catalog hit with its match type: EXATO when the term
// matched name or description, FALLBACK when the product only passed the
// price filter.
type SearchResult struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	MatchType   string  `json:"match_type"`
}

const searchLimit = 5

// SearchProducts runs the relevance-scored catalog query: description
// matches weigh 20, name matches 15, exact matches sort ahead of price
// fallbacks, ties broken by price descending.
func (r *Repository) SearchProducts(ctx context.Context, term string, minPrice, maxPrice float64) ([]SearchResult, error) {
	if maxPrice <= 0 {
		maxPrice = 999999
	}

	query := `
		WITH products_scored AS (
			SELECT p.name, p.description, p.price, p.image_url,
				(CASE WHEN p.description ILIKE '%' || LOWER(@term) || '%' THEN 20 ELSE 0 END) +
				(CASE WHEN p.name ILIKE '%' || LOWER(@term) || '%' THEN 15 ELSE 0 END) AS relevance_score,
				(CASE WHEN p.description ILIKE '%' || LOWER(@term) || '%'
					OR p.name ILIKE '%' || LOWER(@term) || '%' THEN 1 ELSE 0 END) AS is_exact_match
			FROM products p
			WHERE p.is_active = true
				AND p.price::numeric >= @min_price
				AND p.price::numeric <= @max_price
				AND p.deleted_at IS NULL
		)
		SELECT name, description, price::float8 AS price, image_url,
			CASE WHEN is_exact_match = 1 THEN 'EXATO' ELSE 'FALLBACK' END AS match_type
		FROM products_scored
		ORDER BY is_exact_match DESC, relevance_score DESC, price DESC
		LIMIT @limit`

	var results []SearchResult
	err := r.db.WithContext(ctx).Raw(query,
		map[string]interface{}{
			"term":      term,
			"min_price": minPrice,
			"max_price": maxPrice,
			"limit":     searchLimit,
		}).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return results, nil
}

// ListAddons returns the active add-on items (adicionais).
func (r *Repository) ListAddons(ctx context.Context) ([]models.AddonItem, error) {
	var addons []models.AddonItem
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", "ADDITIONAL", true).
		Order("base_price ASC").
		Find(&addons).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	return addons, nil
}
