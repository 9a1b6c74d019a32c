package category

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/domain"
)

func TestPostgres_InsertReturnsGeneratedID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("tech").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	cat, err := NewPostgres(mock, nil).Insert(context.Background(), "tech")
	require.NoError(t, err)
	assert.Equal(t, &domain.Category{ID: 3, Name: "tech"}, cat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_InsertError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("tech").
		WillReturnError(errors.New("read-only transaction"))

	cat, err := NewPostgres(mock, nil).Insert(context.Background(), "tech")
	assert.Nil(t, cat)
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "insert category", storeErr.Op)
}

func TestPostgres_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM categories").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "all").
			AddRow(int64(2), "clothes"))

	list, err := NewPostgres(mock, nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "all"}, {ID: 2, Name: "clothes"}}, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
