package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safework/safework/internal/auth/domain"
)

func userColumns() []string {
	return []string{
		"id", "name", "email", "password", "role",
		"department", "position", "phone_number", "created_at", "updated_at",
	}
}

func userRow(mock sqlmock.Sqlmock, user *domain.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns()).AddRow(
		user.ID, user.Name, user.Email, user.Password, user.Role,
		user.Department, user.Position, user.PhoneNumber,
		user.CreatedAt, user.UpdatedAt,
	)
}

func testUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:          42,
		Name:        "Jang Min-ho",
		Email:       "reporter@example.com",
		Password:    "argon2id-hash",
		Role:        domain.RoleUser,
		Department:  "Line 2",
		Position:    "Operator",
		PhoneNumber: "010-0000-0000",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := testUser()
	user.ID = 0

	t.Run("success assigns generated id", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(user.Name, user.Email, user.Password, user.Role,
				user.Department, user.Position, user.PhoneNumber).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		err := repo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		err := repo.Create(context.Background(), testUser())
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	t.Run("found", func(t *testing.T) {
		expected := testUser()
		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(expected.ID).
			WillReturnRows(userRow(mock, expected))

		user, err := repo.GetByID(context.Background(), expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected.Email, user.Email)
		assert.Equal(t, expected.Role, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	expected := testUser()

	mock.ExpectQuery(`FROM users WHERE email`).
		WithArgs(expected.Email).
		WillReturnRows(userRow(mock, expected))

	user, err := repo.GetByEmail(context.Background(), expected.Email)
	require.NoError(t, err)
	assert.Equal(t, expected.ID, user.ID)
}

func TestPostgreSQLUserRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	t.Run("without department filter", func(t *testing.T) {
		rows := userRow(mock, testUser())
		mock.ExpectQuery(`FROM users ORDER BY id`).
			WithArgs(50, 0).
			WillReturnRows(rows)

		users, err := repo.List(context.Background(), "", 0, 50)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("with department filter", func(t *testing.T) {
		rows := userRow(mock, testUser())
		mock.ExpectQuery(`FROM users WHERE department`).
			WithArgs("Line 2", 50, 0).
			WillReturnRows(rows)

		users, err := repo.List(context.Background(), "Line 2", 0, 50)
		require.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "Line 2", users[0].Department)
	})
}

func TestPostgreSQLUserRepository_UpdateRole(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET role`).
			WithArgs(domain.RoleAdmin, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateRole(context.Background(), 42, domain.RoleAdmin))
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET role`).
			WithArgs(domain.RoleAdmin, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRole(context.Background(), 99, domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 42))
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
