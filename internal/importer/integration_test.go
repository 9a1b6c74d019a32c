package importer

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/domain"
	"product-catalog/internal/migrate"
	productrepo "product-catalog/internal/repository/product"
	productsvc "product-catalog/internal/service/product"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	require.NoError(t, migrate.Apply(ctx, dsn, nil))
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, `TRUNCATE tech_attributes, clothes_attributes, gallery, attribute_items, attributes, prices, products, categories RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

const roundTripDocument = `{"data": {
  "categories": [{"name": "all"}, {"name": "clothes"}, {"name": "tech"}],
  "products": [
    {"id": 1, "name": "Jacket", "inStock": true, "description": "warm", "category": 2, "brand": "Canada Goose",
     "prices": [{"amount": 518.47, "currency": {"label": "USD", "symbol": "$"}}],
     "attributes": [
       {"name": "Size", "type": "text", "items": [{"displayValue": "Small", "value": "S"}, {"displayValue": "Medium", "value": "M"}]},
       {"name": "Color", "type": "swatch", "items": [{"displayValue": "Black", "value": "#000000"}]}
     ],
     "gallery": ["jacket-1.png", "jacket-2.png"]},
    {"id": 2, "name": "Phone", "inStock": true, "description": "d", "category": 3, "brand": "X",
     "prices": [{"amount": 100, "currency": {"label": "USD", "symbol": "$"}}],
     "attributes": [{"name": "Storage", "type": "text", "items": [{"displayValue": "64GB", "value": "64"}]}],
     "gallery": ["img1.png"]},
    {"id": 3, "name": "Gift card", "inStock": true, "description": "", "category": 1, "brand": "",
     "prices": [], "attributes": [], "gallery": []}
  ]
}}`

func TestIntegration_LoadThenList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	doc, err := Decode(strings.NewReader(roundTripDocument))
	require.NoError(t, err)

	res, err := NewLoader(pool, nil).Load(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, Result{InsertedCategories: 3, InsertedProducts: 3}, res)

	// Items must reference the attribute they were nested under.
	rows, err := pool.Query(ctx, `
SELECT a.name, i.value
FROM attribute_items i
JOIN attributes a ON a.id = i.attribute_id
WHERE a.product_id = 1
ORDER BY i.id`)
	require.NoError(t, err)
	var pairs []string
	for rows.Next() {
		var name, value string
		require.NoError(t, rows.Scan(&name, &value))
		pairs = append(pairs, name+"="+value)
	}
	rows.Close()
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Size=S", "Size=M", "Color=#000000"}, pairs)

	// The variant attribute tables are not written by the importer; fill the tech row by hand.
	_, err = pool.Exec(ctx, `INSERT INTO tech_attributes (product_id, brand, specifications) VALUES (2, 'X', '64GB storage')`)
	require.NoError(t, err)

	products, err := productsvc.New(productrepo.NewPostgres(pool, nil), nil).List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2, "the category 1 product has no variant and is skipped")

	assert.Equal(t, domain.ProductDetails{
		ID: 1, Name: "Jacket", Description: "warm", Category: "clothes",
		Attributes: map[string]any{"size": "", "color": ""},
	}, products[0])
	assert.Equal(t, domain.ProductDetails{
		ID: 2, Name: "Phone", Description: "d", Category: "tech",
		Attributes: map[string]any{"brand": "X", "specifications": "64GB storage"},
	}, products[1])
}

func TestIntegration_ReloadDuplicatesCategories(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	doc := domain.Document{Categories: []domain.CategoryInput{{Name: "all"}, {Name: "tech"}}}
	loader := NewLoader(pool, nil)
	_, err := loader.Load(ctx, doc)
	require.NoError(t, err)
	_, err = loader.Load(ctx, doc)
	require.NoError(t, err)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE name = 'tech'`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestIntegration_FailedProductIsRolledBack(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	doc := domain.Document{Products: []domain.ProductInput{
		{ID: 1, Name: "Kept", Category: 3},
		{ID: 2, Name: "Also kept", Category: 3, Prices: []domain.PriceInput{{Amount: 1, Currency: domain.CurrencyInput{Label: "USD", Symbol: "$"}}}},
		// numeric(12,2) overflow fails the price insert after the product row went in.
		{ID: 3, Name: "Partial", Category: 3, Prices: []domain.PriceInput{{Amount: 1e13, Currency: domain.CurrencyInput{Label: "USD", Symbol: "$"}}}},
		{ID: 4, Name: "Never", Category: 3},
	}}

	res, err := NewLoader(pool, nil).Load(ctx, doc)
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, 2, res.InsertedProducts)

	assert.Equal(t, "insert price", storeErr.Op)

	var ids []int64
	rows, err := pool.Query(ctx, `SELECT id FROM products ORDER BY id`)
	require.NoError(t, err)
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	rows.Close()
	assert.Equal(t, []int64{1, 2}, ids)
}
