package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"product-catalog/internal/db"
	"product-catalog/internal/domain"
	"product-catalog/internal/logging"
)

type postgresRepo struct {
	db     db.DBTX
	logger logrus.FieldLogger
}

// NewPostgres builds the product repository on a pool or on an open transaction.
func NewPostgres(conn db.DBTX, logger logrus.FieldLogger) Repository {
	return &postgresRepo{db: conn, logger: logging.OrDiscard(logger).WithField("component", "product_repo")}
}

func (r *postgresRepo) Insert(ctx context.Context, p domain.ProductRecord) error {
	const q = `
INSERT INTO products (id, name, in_stock, description, category_id, brand)
VALUES ($1, $2, $3, $4, $5, $6)
`
	if _, err := r.db.Exec(ctx, q, p.ID, p.Name, p.InStock, p.Description, p.CategoryID, p.Brand); err != nil {
		r.logger.WithError(err).WithField("product_id", p.ID).Error("insert product failed")
		return &domain.StoreError{Op: "insert product", Err: err}
	}
	return nil
}

func (r *postgresRepo) InsertPrice(ctx context.Context, price domain.Price) error {
	const q = `
INSERT INTO prices (product_id, amount, currency_label, currency_symbol)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.db.Exec(ctx, q, price.ProductID, price.Amount, price.CurrencyLabel, price.CurrencySymbol); err != nil {
		r.logger.WithError(err).WithField("product_id", price.ProductID).Error("insert price failed")
		return &domain.StoreError{Op: "insert price", Err: err}
	}
	return nil
}

func (r *postgresRepo) InsertAttribute(ctx context.Context, attr domain.Attribute) (int64, error) {
	const q = `
INSERT INTO attributes (product_id, name, type)
VALUES ($1, $2, $3)
RETURNING id
`
	var id int64
	if err := r.db.QueryRow(ctx, q, attr.ProductID, attr.Name, attr.Type).Scan(&id); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{"product_id": attr.ProductID, "name": attr.Name}).Error("insert attribute failed")
		return 0, &domain.StoreError{Op: "insert attribute", Err: err}
	}
	return id, nil
}

func (r *postgresRepo) InsertAttributeItem(ctx context.Context, item domain.AttributeItem) error {
	const q = `
INSERT INTO attribute_items (attribute_id, display_value, value)
VALUES ($1, $2, $3)
`
	if _, err := r.db.Exec(ctx, q, item.AttributeID, item.DisplayValue, item.Value); err != nil {
		r.logger.WithError(err).WithField("attribute_id", item.AttributeID).Error("insert attribute item failed")
		return &domain.StoreError{Op: "insert attribute item", Err: err}
	}
	return nil
}

func (r *postgresRepo) InsertGalleryImage(ctx context.Context, img domain.GalleryImage) error {
	const q = `INSERT INTO gallery (product_id, image_url) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, q, img.ProductID, img.URL); err != nil {
		r.logger.WithError(err).WithField("product_id", img.ProductID).Error("insert gallery image failed")
		return &domain.StoreError{Op: "insert gallery image", Err: err}
	}
	return nil
}

// ListProductRows reads every product joined with its category name. Rows are fully
// drained before returning so callers can issue follow-up lookups on the same connection.
func (r *postgresRepo) ListProductRows(ctx context.Context) ([]domain.ProductRow, error) {
	const q = `
SELECT p.id, p.name, p.description, p.category_id, c.name AS category_name
FROM products p
JOIN categories c ON p.category_id = c.id
ORDER BY p.id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		r.logger.WithError(err).Error("list products failed")
		return nil, &domain.StoreError{Op: "list products", Err: err}
	}
	defer rows.Close()

	var result []domain.ProductRow
	for rows.Next() {
		var (
			row        domain.ProductRow
			categoryID int64
		)
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &categoryID, &row.CategoryName); err != nil {
			return nil, &domain.StoreError{Op: "scan product", Err: err}
		}
		row.CategoryID = domain.CategoryID(categoryID)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		r.logger.WithError(err).Error("list products rows failed")
		return nil, &domain.StoreError{Op: "list products", Err: err}
	}
	r.logger.WithField("count", len(result)).Debug("listed product rows")
	return result, nil
}

func (r *postgresRepo) ClothesAttributes(ctx context.Context, productID int64) (domain.ClothesAttributes, error) {
	const q = `SELECT COALESCE(size, ''), COALESCE(color, '') FROM clothes_attributes WHERE product_id = $1`

	var size, color string
	if err := r.db.QueryRow(ctx, q, productID).Scan(&size, &color); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ClothesAttributes{}, domain.ErrNotFound
		}
		return domain.ClothesAttributes{}, &domain.StoreError{Op: "get clothes attributes", Err: err}
	}
	return domain.NewClothesAttributes(size, color), nil
}

func (r *postgresRepo) TechAttributes(ctx context.Context, productID int64) (domain.TechAttributes, error) {
	const q = `SELECT COALESCE(brand, ''), COALESCE(specifications, '') FROM tech_attributes WHERE product_id = $1`

	var brand, specs string
	if err := r.db.QueryRow(ctx, q, productID).Scan(&brand, &specs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TechAttributes{}, domain.ErrNotFound
		}
		return domain.TechAttributes{}, &domain.StoreError{Op: "get tech attributes", Err: err}
	}
	return domain.NewTechAttributes(brand, specs), nil
}
