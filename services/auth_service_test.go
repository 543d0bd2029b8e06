package services

import (
	"testing"

	"github.com/Serdar-Sara/FitnessTracker/config"
	"github.com/Serdar-Sara/FitnessTracker/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserHashesPassword(t *testing.T) {
	db, mock := newMockDB(t)
	config.DB = db

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user, err := RegisterUser("runner@example.com", "hunter2", "Test Runner")

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEqual(t, "hunter2", user.Password)
	assert.True(t, utils.CheckPasswordHash("hunter2", user.Password))
}

func TestAuthenticateUserIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockDB(t)
	config.DB = db

	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "email", "password"}).
		AddRow(1, "runner@example.com", hash)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(rows)

	token, err := AuthenticateUser("runner@example.com", "hunter2")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthenticateUserWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	config.DB = db

	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "email", "password"}).
		AddRow(1, "runner@example.com", hash)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(rows)

	_, err = AuthenticateUser("runner@example.com", "wrong")

	assert.EqualError(t, err, "incorrect password")
}
