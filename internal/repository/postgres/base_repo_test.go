package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, sqlMock
}

var emailColumns = []string{"id", "email_type", "email_address"}

func TestBaseRepoListAll(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewEmailRepository(db)

	sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "emails" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(emailColumns).
			AddRow(int64(1), int64(2), "jane@example.com").
			AddRow(int64(2), int64(3), "ops@example.com"))

	emails, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Email{
		{ID: 1, EmailType: domain.EmailWork, EmailAddress: "jane@example.com"},
		{ID: 2, EmailType: domain.EmailOthers, EmailAddress: "ops@example.com"},
	}, emails)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestBaseRepoListAllEmpty(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewPersonNameRepository(db)

	sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "person_names" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "middle_name", "last_name"}))

	names, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestBaseRepoGetByID(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewEmailRepository(db)

	sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "emails" WHERE "emails"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(emailColumns).AddRow(int64(7), int64(1), "home@example.com"))

	email, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &domain.Email{ID: 7, EmailType: domain.EmailPersonal, EmailAddress: "home@example.com"}, email)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestBaseRepoGetByIDNotFound(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewStatusRepository(db)

	sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "statuses" WHERE "statuses"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status_name"}))

	status, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBaseRepoAddAssignsID(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewEmailRepository(db)

	sqlMock.ExpectBegin()
	// Enumerations are written as their integer value
	sqlMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "emails" ("email_type","email_address") VALUES ($1,$2) RETURNING "id"`)).
		WithArgs(int64(2), "jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	sqlMock.ExpectCommit()

	created, err := repo.Add(context.Background(), &domain.Email{EmailType: domain.EmailWork, EmailAddress: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, domain.EmailWork, created.EmailType)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestBaseRepoAddStatusZeroValue(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewStatusRepository(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "statuses" ("status_name") VALUES ($1) RETURNING "id"`)).
		WithArgs(int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	sqlMock.ExpectCommit()

	created, err := repo.Add(context.Background(), &domain.Status{StatusName: domain.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestBaseRepoAddDuplicate(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewUserRepository(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{
			Code:    pgerrcode.UniqueViolation,
			Message: `duplicate key value violates unique constraint "idx_users_user_name"`,
		})
	sqlMock.ExpectRollback()

	_, err := repo.Add(context.Background(), &domain.User{UserName: "jane", Email: "jane@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "idx_users_user_name")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestUserRepoGetByUserName(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := NewUserRepository(db)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE user_name = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "email", "password_hash", "created_at"}).
			AddRow(int64(3), "jane", "jane@example.com", "hash", created))

	user, err := repo.GetByUserName(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: 3, UserName: "jane", Email: "jane@example.com", PasswordHash: "hash", CreatedAt: created}, user)

	sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE user_name = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "email", "password_hash", "created_at"}))

	_, err = repo.GetByUserName(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
