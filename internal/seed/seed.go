package seed

import (
	"context"
	"fmt"

	"product-catalog/internal/db"
	"product-catalog/internal/domain"
)

type categorySeed struct {
	ID   int64
	Name string
}

type productSeed struct {
	ID          int64
	Name        string
	Description string
	CategoryID  domain.CategoryID
	Brand       string

	// Size and Color fill clothes_attributes; Specifications fills tech_attributes.
	Size           string
	Color          string
	Specifications string
}

var categories = []categorySeed{
	{ID: 1, Name: "all"},
	{ID: int64(domain.CategoryClothes), Name: "clothes"},
	{ID: int64(domain.CategoryTech), Name: "tech"},
}

var products = []productSeed{
	{
		ID:          9001,
		Name:        "Demo Jacket",
		Description: "Insulated jacket for demo purposes",
		CategoryID:  domain.CategoryClothes,
		Brand:       "Demo Outdoor",
		Size:        "M",
		Color:       "Navy",
	},
	{
		ID:             9002,
		Name:           "Demo Phone",
		Description:    "Phone with a demo spec sheet",
		CategoryID:     domain.CategoryTech,
		Brand:          "Demo Devices",
		Specifications: "6.1in OLED, 128GB",
	},
}

// Apply inserts demo data for manual testing, including the category-specific
// attribute rows that the importer never writes. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, conn db.DBTX) error {
	for _, c := range categories {
		if err := ensureCategory(ctx, conn, c); err != nil {
			return fmt.Errorf("ensure category %s: %w", c.Name, err)
		}
	}
	if err := syncCategorySequence(ctx, conn); err != nil {
		return fmt.Errorf("sync category sequence: %w", err)
	}

	for _, p := range products {
		if err := upsertProduct(ctx, conn, p); err != nil {
			return fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
		if err := upsertVariantAttributes(ctx, conn, p); err != nil {
			return fmt.Errorf("upsert attributes of product %d: %w", p.ID, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, conn db.DBTX, c categorySeed) error {
	const q = `
INSERT INTO categories (id, name)
VALUES ($1, $2)
ON CONFLICT (id) DO NOTHING
`
	_, err := conn.Exec(ctx, q, c.ID, c.Name)
	return err
}

// syncCategorySequence moves the serial past the explicit ids used above.
func syncCategorySequence(ctx context.Context, conn db.DBTX) error {
	const q = `SELECT setval(pg_get_serial_sequence('categories', 'id'), (SELECT MAX(id) FROM categories))`
	_, err := conn.Exec(ctx, q)
	return err
}

func upsertProduct(ctx context.Context, conn db.DBTX, p productSeed) error {
	const q = `
INSERT INTO products (id, name, in_stock, description, category_id, brand)
VALUES ($1, $2, TRUE, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    category_id = EXCLUDED.category_id,
    brand = EXCLUDED.brand
`
	_, err := conn.Exec(ctx, q, p.ID, p.Name, p.Description, int64(p.CategoryID), p.Brand)
	return err
}

func upsertVariantAttributes(ctx context.Context, conn db.DBTX, p productSeed) error {
	switch p.CategoryID {
	case domain.CategoryClothes:
		const q = `
INSERT INTO clothes_attributes (product_id, size, color)
VALUES ($1, $2, $3)
ON CONFLICT (product_id) DO UPDATE SET size = EXCLUDED.size, color = EXCLUDED.color
`
		_, err := conn.Exec(ctx, q, p.ID, p.Size, p.Color)
		return err
	case domain.CategoryTech:
		const q = `
INSERT INTO tech_attributes (product_id, brand, specifications)
VALUES ($1, $2, $3)
ON CONFLICT (product_id) DO UPDATE SET brand = EXCLUDED.brand, specifications = EXCLUDED.specifications
`
		_, err := conn.Exec(ctx, q, p.ID, p.Brand, p.Specifications)
		return err
	}
	return nil
}
