package product

import (
	"context"

	"product-catalog/internal/domain"
)

// Writer holds the ingestion inserts, in the order the importer issues them.
type Writer interface {
	Insert(ctx context.Context, p domain.ProductRecord) error
	InsertPrice(ctx context.Context, price domain.Price) error
	// InsertAttribute returns the generated attribute id.
	InsertAttribute(ctx context.Context, attr domain.Attribute) (int64, error)
	InsertAttributeItem(ctx context.Context, item domain.AttributeItem) error
	InsertGalleryImage(ctx context.Context, img domain.GalleryImage) error
}

// Reader serves the read path used to rebuild product variants.
type Reader interface {
	ListProductRows(ctx context.Context) ([]domain.ProductRow, error)
	ClothesAttributes(ctx context.Context, productID int64) (domain.ClothesAttributes, error)
	TechAttributes(ctx context.Context, productID int64) (domain.TechAttributes, error)
}

type Repository interface {
	Writer
	Reader
}
