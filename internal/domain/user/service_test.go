package user

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.True(t, svc.VerifyPassword("s3cret-pass", u.PasswordHash))
	assert.False(t, svc.VerifyPassword("wrong-pass", u.PasswordHash))
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	input := CreateUserInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass"}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "another-pass",
	})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)
	assert.Equal(t, "bob@example.com", found.Email)
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
