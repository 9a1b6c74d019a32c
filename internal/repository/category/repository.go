package category

import (
	"context"

	"product-catalog/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}
