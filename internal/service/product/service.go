package product

import (
	"context"

	"product-catalog/internal/domain"
)

type Service struct {
	store   Store
	factory *Factory
}

func New(store Store, factory *Factory) *Service {
	if factory == nil {
		factory = NewFactory(nil, nil)
	}
	return &Service{store: store, factory: factory}
}

// List returns the external representation of every recognized product.
func (s *Service) List(ctx context.Context) ([]domain.ProductDetails, error) {
	products, err := s.factory.GetAllProducts(ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductDetails, 0, len(products))
	for _, p := range products {
		out = append(out, domain.Details(p))
	}
	return out, nil
}
