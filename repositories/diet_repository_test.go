package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Serdar-Sara/FitnessTracker/models"

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

func TestDietInsertAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "diets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	owner := uint(7)
	diet := &models.Diet{
		MealType:         "Breakfast",
		CaloriesConsumed: 400,
		Date:             time.Now().UTC(),
		UserID:           &owner,
	}
	err := repo.Insert(context.Background(), diet)

	require.NoError(t, err)
	assert.Equal(t, uint(1), diet.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDietFindAllByOwnerFiltersOnOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietRepository(db)

	rows := sqlmock.NewRows([]string{"id", "meal_type", "calories_consumed", "description", "date", "user_id"}).
		AddRow(1, "Breakfast", 400, "", time.Now(), 7).
		AddRow(2, "Lunch", 650, "salad", time.Now(), 7)

	mock.ExpectQuery(`SELECT \* FROM "diets" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnRows(rows)

	diets, err := repo.FindAllByOwner(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, diets, 2)
	assert.Equal(t, "Lunch", diets[1].MealType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDietFindByIDAndOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietRepository(db)

	rows := sqlmock.NewRows([]string{"id", "meal_type", "calories_consumed", "description", "date", "user_id"}).
		AddRow(1, "Breakfast", 400, "", time.Now(), 7)

	mock.ExpectQuery(`SELECT \* FROM "diets" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(rows)

	diet, err := repo.FindByIDAndOwner(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, uint(1), diet.ID)
	assert.Equal(t, "Breakfast", diet.MealType)
}

func TestDietFindByIDAndOwnerMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "diets" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDAndOwner(context.Background(), 1, 8)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDietReplace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "diets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	owner := uint(7)
	diet := &models.Diet{
		ID:               1,
		MealType:         "Brunch",
		CaloriesConsumed: 550,
		Date:             time.Now().UTC(),
		UserID:           &owner,
	}
	err := repo.Replace(context.Background(), diet)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDietDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDietRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "diets"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	owner := uint(7)
	err := repo.Delete(context.Background(), &models.Diet{ID: 1, UserID: &owner})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
