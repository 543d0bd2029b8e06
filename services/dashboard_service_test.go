package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestDashboardSummarize(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "progresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(calories_burned\), 0\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(500))

	svc := NewDashboardService(db)
	out, err := svc.Summarize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.TotalExercises)
	assert.Equal(t, int64(3), out.TotalProgressEntries)
	assert.Equal(t, int64(500), out.TotalCaloriesBurned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardSummarizeEmptyStore(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "progresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(calories_burned\), 0\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	svc := NewDashboardService(db)
	out, err := svc.Summarize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalExercises)
	assert.Equal(t, int64(0), out.TotalProgressEntries)
	assert.Equal(t, int64(0), out.TotalCaloriesBurned)
}
