package message

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Message{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	msg, err := Create(db, "Visitor", "visitor@example.com", "Hello there")
	require.NoError(t, err)
	require.NotZero(t, msg.ID)
	assert.False(t, msg.SubmittedAt.IsZero(), "timestamp must be server-assigned")
	assert.False(t, msg.IsRead)
}

func TestCreateNilDB(t *testing.T) {
	_, err := Create(nil, "a", "b", "c")
	require.ErrorIs(t, err, ErrDBNil)
}

func TestListRecentNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Now().Add(-time.Hour)
	seed := []models.Message{
		{Name: "first", Email: "a@b.c", Message: "m", SubmittedAt: base},
		{Name: "second", Email: "a@b.c", Message: "m", SubmittedAt: base.Add(time.Minute)},
		{Name: "third", Email: "a@b.c", Message: "m", SubmittedAt: base.Add(2 * time.Minute)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	messages, err := ListRecent(db, 50)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "third", messages[0].Name)
	assert.Equal(t, "second", messages[1].Name)
	assert.Equal(t, "first", messages[2].Name)
}

func TestListRecentLimit(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 5; i++ {
		_, err := Create(db, "visitor", "a@b.c", "m")
		require.NoError(t, err)
	}

	messages, err := ListRecent(db, 2)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
