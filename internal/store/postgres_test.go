package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sabouha-storefront/internal/domain"
)

func newMockGateway(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresGateway) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "failed to create sqlmock")
	return db, mock, NewPostgresGateway(db)
}

var selectDocQuery = regexp.QuoteMeta(`SELECT data FROM storefront_documents WHERE name = $1`)

func TestPostgresGateway_GetProducts(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	doc := `[{"id":"1","name":"سيروم","description":"","price":180,"originalPrice":220,"category":"عناية بالبشرة","image":"","createdAt":1700000000000,"rating":4.8,"reviews":[]}]`
	mock.ExpectQuery(selectDocQuery).
		WithArgs(ResourceProducts).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(doc)))

	products, ok, err := gw.GetProducts(context.Background())

	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
	require.NotNil(t, products[0].OriginalPrice)
	assert.Equal(t, 220.0, *products[0].OriginalPrice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGateway_GetProducts_Absent(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	mock.ExpectQuery(selectDocQuery).
		WithArgs(ResourceProducts).
		WillReturnError(sql.ErrNoRows)

	products, ok, err := gw.GetProducts(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, products)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGateway_GetHero_QueryError(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	mock.ExpectQuery(selectDocQuery).
		WithArgs(ResourceHero).
		WillReturnError(errors.New("connection refused"))

	_, ok, err := gw.GetHero(context.Background())

	require.Error(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGateway_GetHero_MalformedDocument(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	mock.ExpectQuery(selectDocQuery).
		WithArgs(ResourceHero).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("{not-json")))

	_, ok, err := gw.GetHero(context.Background())

	require.Error(t, err)
	assert.False(t, ok)
}

func TestPostgresGateway_SaveProducts(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO storefront_documents`).
		WithArgs(ResourceProducts, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := gw.SaveProducts(context.Background(), []domain.Product{{ID: "1", Name: "سيروم", Price: 180}})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGateway_SaveContact_ExecError(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO storefront_documents`).
		WithArgs(ResourceContact, sqlmock.AnyArg()).
		WillReturnError(errors.New("write failed"))

	err := gw.SaveContact(context.Background(), domain.DefaultContact())

	require.Error(t, err)
}

func TestPostgresGateway_EnsureSchema(t *testing.T) {
	db, mock, gw := newMockGateway(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS storefront_documents`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, gw.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
