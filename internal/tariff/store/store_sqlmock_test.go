package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return NewStore(db), mock
}

func TestStoreWrapsDatabaseFailures(t *testing.T) {
	boom := errors.New("connection reset by peer")
	ctx := context.Background()

	t.Run("get tariff code", func(t *testing.T) {
		s, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "tariff_codes"`).WillReturnError(boom)

		_, err := s.GetTariffCode(ctx, "0101210000")

		var daErr *DataAccessError
		require.ErrorAs(t, err, &daErr)
		require.Equal(t, "get tariff code", daErr.Op)
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get duty rate", func(t *testing.T) {
		s, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "duty_rates"`).WillReturnError(boom)

		_, err := s.GetDutyRate(ctx, "0101210000")

		var daErr *DataAccessError
		require.ErrorAs(t, err, &daErr)
		require.Equal(t, "get duty rate", daErr.Op)
	})

	t.Run("list agreements", func(t *testing.T) {
		s, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "trade_agreements"`).WillReturnError(boom)

		_, err := s.ListAgreements(ctx)

		var daErr *DataAccessError
		require.ErrorAs(t, err, &daErr)
	})
}

func TestGetTariffCodeQueryShape(t *testing.T) {
	s, mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "tariff_codes" WHERE hs_code = \$1`).
		WithArgs("0101210000", 1).
		WillReturnRows(sqlmock.NewRows([]string{"hs_code", "description", "level", "is_active"}).
			AddRow("0101210000", "Pure-bred breeding horses", 10, true))

	code, err := s.GetTariffCode(context.Background(), "0101210000")
	require.NoError(t, err)
	require.Equal(t, 10, code.Level)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Agreements must come back even when a list query returns no rows; an empty
// table is not an error condition for list endpoints.
func TestListAgreementsEmpty(t *testing.T) {
	s, mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "trade_agreements"`).
		WillReturnRows(sqlmock.NewRows([]string{"fta_code", "full_name", "status"}))

	agreements, err := s.ListAgreements(context.Background())
	require.NoError(t, err)
	require.Empty(t, agreements)
}
