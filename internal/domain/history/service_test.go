package history

import (
	"context"
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(&History{}))
	return db
}

func TestAddEntryComposesDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	fields := []Field{
		{Name: "Id", Value: "7"},
		{Name: "Title", Value: "Write report"},
		{Name: "Status", Value: "Pending"},
	}
	require.NoError(t, svc.AddEntry(ctx, 7, "Task created", 3, fields))

	entries, err := svc.ListByTask(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Task created | Id: 7, Title: Write report, Status: Pending", entries[0].Description)
	assert.Equal(t, uint(7), entries[0].TaskID)
	assert.Equal(t, uint(3), entries[0].UserID)
	assert.False(t, entries[0].ModifiedAt.IsZero())
}

func TestAddEntryWithoutFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.AddEntry(ctx, 1, "Task marked as deleted", 0, nil))

	entries, err := svc.ListByTask(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Task marked as deleted", entries[0].Description)
}

func TestListByTaskNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, desc := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Add(ctx, &History{
			TaskID:      9,
			Description: desc,
			ModifiedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := svc.ListByTask(ctx, 9)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Description)
	assert.Equal(t, "second", entries[1].Description)
	assert.Equal(t, "first", entries[2].Description)
}

func TestListByTaskScopedToTask(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.AddEntry(ctx, 1, "for task one", 0, nil))
	require.NoError(t, svc.AddEntry(ctx, 2, "for task two", 0, nil))

	entries, err := svc.ListByTask(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "for task two", entries[0].Description)
}
