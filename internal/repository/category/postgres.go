package category

import (
	"context"

	"github.com/sirupsen/logrus"

	"product-catalog/internal/db"
	"product-catalog/internal/domain"
	"product-catalog/internal/logging"
)

type postgresRepo struct {
	db     db.DBTX
	logger logrus.FieldLogger
}

func NewPostgres(conn db.DBTX, logger logrus.FieldLogger) Repository {
	return &postgresRepo{db: conn, logger: logging.OrDiscard(logger).WithField("component", "category_repo")}
}

// Insert always creates a new row; category names are not unique.
func (r *postgresRepo) Insert(ctx context.Context, name string) (*domain.Category, error) {
	const q = `INSERT INTO categories (name) VALUES ($1) RETURNING id`

	out := domain.Category{Name: name}
	if err := r.db.QueryRow(ctx, q, name).Scan(&out.ID); err != nil {
		r.logger.WithError(err).WithField("name", name).Error("insert category failed")
		return nil, &domain.StoreError{Op: "insert category", Err: err}
	}
	r.logger.WithFields(logrus.Fields{"id": out.ID, "name": name}).Debug("category inserted")
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id, name
FROM categories
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, &domain.StoreError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, &domain.StoreError{Op: "scan category", Err: err}
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list categories", Err: err}
	}
	return result, nil
}
