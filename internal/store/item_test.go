package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/retriever-essentials/pantry/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, count int) models.Item {
	item := models.Item{
		ItemName:     "Rice",
		Category:     "Grains",
		CurrentCount: count,
		ItemLimit:    5,
		PricePerUnit: "2.50",
		Enabled:      true,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestUpdateCurrentCountAppliesSignedDelta(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)
	item := seedItem(t, db, 10)

	ok, err := s.UpdateCurrentCount(item.ItemID, -4)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.UpdateCurrentCount(item.ItemID, 7)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := s.FindByID(item.ItemID)
	require.NoError(t, err)
	require.Equal(t, 13, stored.CurrentCount)
}

func TestUpdateCurrentCountRefusesNegativeResult(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)
	item := seedItem(t, db, 3)

	ok, err := s.UpdateCurrentCount(item.ItemID, -4)
	require.NoError(t, err)
	require.False(t, ok)

	// The guarded UPDATE must leave the row untouched on refusal.
	stored, err := s.FindByID(item.ItemID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.CurrentCount)
}

func TestUpdateCurrentCountToExactlyZero(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)
	item := seedItem(t, db, 3)

	ok, err := s.UpdateCurrentCount(item.ItemID, -3)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := s.FindByID(item.ItemID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.CurrentCount)
}

func TestUpdateCurrentCountUnknownItem(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)

	ok, err := s.UpdateCurrentCount(99, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFindByIDMissReturnsNilNil(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)

	item, err := s.FindByID(99)
	require.NoError(t, err)
	require.Nil(t, item)
}

func TestDisableByID(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)
	item := seedItem(t, db, 10)

	ok, err := s.DisableByID(item.ItemID)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := s.FindByID(item.ItemID)
	require.NoError(t, err)
	require.False(t, stored.Enabled)

	ok, err = s.DisableByID(99)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUpdateOmitsPrimaryKey(t *testing.T) {
	db := initTestDB(t)
	s := NewItemStore(db)
	item := seedItem(t, db, 10)

	item.ItemDescription = "Long grain basmati"
	ok, err := s.Update(&item)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := s.FindByID(item.ItemID)
	require.NoError(t, err)
	require.Equal(t, "Long grain basmati", stored.ItemDescription)
}
