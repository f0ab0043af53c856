package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBelongingRepository creates a GormBelongingRepository with a mocked
// SQL connection, for store error paths an in-memory database cannot produce
func newMockBelongingRepository(t *testing.T) (*GormBelongingRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBelongingRepository(gormDB), mock, mockDB
}

func TestGormBelongingRepository_StoreErrors(t *testing.T) {
	t.Run("FindByID surfaces driver errors as-is", func(t *testing.T) {
		repo, mock, mockDB := newMockBelongingRepository(t)
		defer mockDB.Close()

		driverErr := errors.New("connection reset by peer")
		mock.ExpectQuery(`SELECT \* FROM "belongings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnError(driverErr)

		_, err := repo.FindByID(context.Background(), 7)
		assert.ErrorIs(t, err, driverErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindByID maps missing rows to ErrNotFound", func(t *testing.T) {
		repo, mock, mockDB := newMockBelongingRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "belongings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), 7)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindAll surfaces query errors", func(t *testing.T) {
		repo, mock, mockDB := newMockBelongingRepository(t)
		defer mockDB.Close()

		driverErr := errors.New("relation does not exist")
		mock.ExpectQuery(`SELECT \* FROM "belongings" ORDER BY created_at DESC`).
			WillReturnError(driverErr)

		_, err := repo.FindAll(context.Background(), belonging.Filter{})
		assert.ErrorIs(t, err, driverErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListCategories surfaces query errors", func(t *testing.T) {
		repo, mock, mockDB := newMockBelongingRepository(t)
		defer mockDB.Close()

		driverErr := errors.New("disk I/O error")
		mock.ExpectQuery(`SELECT DISTINCT "category" FROM "belongings" ORDER BY category ASC`).
			WillReturnError(driverErr)

		_, err := repo.ListCategories(context.Background())
		assert.ErrorIs(t, err, driverErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
