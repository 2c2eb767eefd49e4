package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidthissen1/Nutrify/models"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestCreateAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")
	svc := NewFoodLogService(db)

	id, err := svc.Create(user.ID, FoodLogInput{})
	require.NoError(t, err)
	require.NotZero(t, id)

	entries, err := svc.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultFoodName, entries[0].FoodName)
	assert.Zero(t, entries[0].Calories)
	assert.Zero(t, entries[0].ProteinG)
	assert.Zero(t, entries[0].CarbsG)
	assert.Zero(t, entries[0].FatG)
	assert.NotEmpty(t, entries[0].LogDate, "missing log_date should default to now")
}

func TestCreateListRoundtrip(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")
	svc := NewFoodLogService(db)

	id, err := svc.Create(user.ID, FoodLogInput{
		FoodName: strPtr("Apple"),
		Calories: intPtr(95),
		ProteinG: floatPtr(0.5),
		CarbsG:   floatPtr(25),
		FatG:     floatPtr(0.3),
	})
	require.NoError(t, err)

	entries, err := svc.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, "Apple", entries[0].FoodName)
	assert.Equal(t, 95, entries[0].Calories)
	assert.Equal(t, 0.5, entries[0].ProteinG)
	assert.Equal(t, 25.0, entries[0].CarbsG)
	assert.Equal(t, 0.3, entries[0].FatG)
}

func TestLegacyColumnNames(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")

	// a pre-existing deployment's table with the older column set
	require.NoError(t, db.Exec(`CREATE TABLE food_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		name VARCHAR(100) NOT NULL,
		calories INTEGER DEFAULT 0,
		protein FLOAT DEFAULT 0,
		carbs FLOAT DEFAULT 0,
		fats FLOAT DEFAULT 0,
		date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`).Error)

	svc := NewFoodLogService(db)
	_, err := svc.Create(user.ID, FoodLogInput{
		FoodName: strPtr("Banana"),
		Calories: intPtr(105),
		ProteinG: floatPtr(1.3),
	})
	require.NoError(t, err)

	// written into the legacy columns
	var storedName string
	require.NoError(t, db.Raw("SELECT name FROM food_logs").Scan(&storedName).Error)
	assert.Equal(t, "Banana", storedName)

	// read back in canonical shape regardless
	entries, err := svc.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Banana", entries[0].FoodName)
	assert.Equal(t, 105, entries[0].Calories)
	assert.Equal(t, 1.3, entries[0].ProteinG)
}

func TestListDateFilterAndOrdering(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")
	svc := NewFoodLogService(db)

	_, err := svc.Create(user.ID, FoodLogInput{
		FoodName: strPtr("Old"),
		LogDate:  strPtr("2025-06-01 12:00:00"),
	})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, FoodLogInput{
		FoodName: strPtr("New"),
		LogDate:  strPtr("2025-06-02 12:00:00"),
	})
	require.NoError(t, err)

	entries, err := svc.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "New", entries[0].FoodName, "newest first")
	assert.Equal(t, "Old", entries[1].FoodName)

	filtered, err := svc.List(user.ID, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Old", filtered[0].FoodName)
}

func TestDeleteOwnership(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	bob := createTestUser(t, db, "bob", "b@x.com")
	svc := NewFoodLogService(db)

	id, err := svc.Create(alice.ID, FoodLogInput{FoodName: strPtr("Apple")})
	require.NoError(t, err)

	// someone else's entry looks exactly like a missing one
	assert.ErrorIs(t, svc.Delete(bob.ID, id), ErrLogNotFound)

	entries, err := svc.List(alice.ID, "")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "foreign delete must not remove the entry")

	require.NoError(t, svc.Delete(alice.ID, id))
	assert.ErrorIs(t, svc.Delete(alice.ID, id), ErrLogNotFound)

	entries, err = svc.List(alice.ID, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	bob := createTestUser(t, db, "bob", "b@x.com")
	svc := NewFoodLogService(db)

	_, err := svc.Create(alice.ID, FoodLogInput{FoodName: strPtr("Apple")})
	require.NoError(t, err)

	entries, err := svc.List(bob.ID, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProvisioningIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")
	svc := NewFoodLogService(db)

	for i := 0; i < 3; i++ {
		_, err := resolveFoodLogColumns(db)
		require.NoError(t, err)
	}
	_, err := svc.Create(user.ID, FoodLogInput{})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, FoodLogInput{})
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.FoodLog{}))
}

func TestCreateWithExplicitTimestampRoundtrips(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")
	svc := NewFoodLogService(db)

	day := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
	_, err := svc.Create(user.ID, FoodLogInput{FoodName: strPtr("Oats"), LogDate: &day})
	require.NoError(t, err)

	entries, err := svc.List(user.ID, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Oats", entries[0].FoodName)
}
