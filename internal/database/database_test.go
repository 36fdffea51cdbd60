package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestProvisionUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("creates user with catalogue", func(t *testing.T) {
		user, err := db.ProvisionUser("kopeckyd", "Dieter", "Kopecky", "dieter@example.com")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		require.NotNil(t, user.Catalogue)
		assert.NotZero(t, user.Catalogue.ID)
		assert.Equal(t, user.ID, user.Catalogue.UserID)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := db.ProvisionUser("kopeckyd", "Other", "Person", "other@example.com")
		assert.Error(t, err)
	})

	t.Run("GetUserByUsername loads the catalogue", func(t *testing.T) {
		user, err := db.GetUserByUsername("kopeckyd")
		require.NoError(t, err)
		assert.Equal(t, "Dieter", user.FirstName)
		require.NotNil(t, user.Catalogue)
		assert.Equal(t, user.ID, user.Catalogue.UserID)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("errors when nobody is provisioned", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := db.CurrentUser("")
		assert.Error(t, err)
	})

	t.Run("falls back to the single provisioned user", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		provisioned, err := db.ProvisionUser("kopeckyd", "Dieter", "Kopecky", "dieter@example.com")
		require.NoError(t, err)

		user, err := db.CurrentUser("")
		require.NoError(t, err)
		assert.Equal(t, provisioned.ID, user.ID)
		require.NotNil(t, user.Catalogue)
	})

	t.Run("resolves the configured username", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := db.ProvisionUser("first", "First", "User", "first@example.com")
		require.NoError(t, err)
		second, err := db.ProvisionUser("second", "Second", "User", "second@example.com")
		require.NoError(t, err)

		user, err := db.CurrentUser("second")
		require.NoError(t, err)
		assert.Equal(t, second.ID, user.ID)
	})
}
