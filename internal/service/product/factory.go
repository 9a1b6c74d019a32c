package product

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"product-catalog/internal/domain"
	"product-catalog/internal/logging"
)

// AttributeSource looks up the category-specific attribute row of a single product.
type AttributeSource interface {
	ClothesAttributes(ctx context.Context, productID int64) (domain.ClothesAttributes, error)
	TechAttributes(ctx context.Context, productID int64) (domain.TechAttributes, error)
}

// Store is the read surface the factory needs.
type Store interface {
	AttributeSource
	ListProductRows(ctx context.Context) ([]domain.ProductRow, error)
}

// Constructor builds one variant from a joined row. It returns the attribute lookup
// error next to a usable product carrying empty attributes.
type Constructor func(ctx context.Context, src AttributeSource, row domain.ProductRow) (domain.Product, error)

// Registry maps a category id to the constructor of its variant.
type Registry map[domain.CategoryID]Constructor

// DefaultRegistry knows the clothes and tech variants.
func DefaultRegistry() Registry {
	return Registry{
		domain.CategoryClothes: newClothesProduct,
		domain.CategoryTech:    newTechProduct,
	}
}

func newClothesProduct(ctx context.Context, src AttributeSource, row domain.ProductRow) (domain.Product, error) {
	attrs, err := src.ClothesAttributes(ctx, row.ID)
	if err != nil {
		attrs = domain.ClothesAttributes{}
	}
	return domain.NewClothesProduct(row.Info(), attrs), err
}

func newTechProduct(ctx context.Context, src AttributeSource, row domain.ProductRow) (domain.Product, error) {
	attrs, err := src.TechAttributes(ctx, row.ID)
	if err != nil {
		attrs = domain.TechAttributes{}
	}
	return domain.NewTechProduct(row.Info(), attrs), err
}

// Factory rebuilds product variants from flat store rows.
type Factory struct {
	registry Registry
	logger   logrus.FieldLogger
}

func NewFactory(registry Registry, logger logrus.FieldLogger) *Factory {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Factory{registry: registry, logger: logging.OrDiscard(logger).WithField("component", "product_factory")}
}

// Build constructs the variant registered for row's category. Unknown categories
// yield domain.ErrUnsupportedCategory.
func (f *Factory) Build(ctx context.Context, src AttributeSource, row domain.ProductRow) (domain.Product, error) {
	build, ok := f.registry[row.CategoryID]
	if !ok {
		return nil, domain.ErrUnsupportedCategory
	}
	return build(ctx, src, row)
}

// GetAllProducts lists every product whose category has a registered variant, in
// ascending id order. Only a failure of the listing query itself is returned; rows of
// unknown categories are skipped and failed attribute lookups leave attributes empty.
func (f *Factory) GetAllProducts(ctx context.Context, store Store) ([]domain.Product, error) {
	rows, err := store.ListProductRows(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := f.Build(ctx, store, row)
		switch {
		case errors.Is(err, domain.ErrUnsupportedCategory):
			f.logger.WithFields(logrus.Fields{"product_id": row.ID, "category_id": row.CategoryID}).Debug("skipping product of unsupported category")
			continue
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			f.logger.WithError(err).WithField("product_id", row.ID).Warn("attribute lookup failed, attributes left empty")
		}
		products = append(products, p)
	}
	return products, nil
}
