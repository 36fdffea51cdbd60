package books

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kopeckyd/vocabulaire/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("creates on first reference", func(t *testing.T) {
		book, created, err := repo.GetOrCreate("Moby Dick", "Herman Melville", "en")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, book.ID)
	})

	t.Run("returns the existing row on repeat", func(t *testing.T) {
		first, _, err := repo.GetOrCreate("Moby Dick", "Herman Melville", "en")
		require.NoError(t, err)

		second, created, err := repo.GetOrCreate("Moby Dick", "Herman Melville", "en")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("a different language is a different book", func(t *testing.T) {
		english, _, err := repo.GetOrCreate("Moby Dick", "Herman Melville", "en")
		require.NoError(t, err)

		german, created, err := repo.GetOrCreate("Moby Dick", "Herman Melville", "de")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, english.ID, german.ID)
	})
}

func TestRepository_Find(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seed := []entities.Book{
		{Title: "Moby Dick", Author: "Herman Melville", Language: "en"},
		{Title: "Moby Dick", Author: "Herman Melville", Language: "de"},
		{Title: "Walden", Author: "Henry David Thoreau", Language: "en"},
	}
	for i := range seed {
		_, _, err := repo.GetOrCreate(seed[i].Title, seed[i].Author, seed[i].Language)
		require.NoError(t, err)
	}

	t.Run("empty fields match everything", func(t *testing.T) {
		books, err := repo.Find("", "", "")
		require.NoError(t, err)
		assert.Len(t, books, 3)
	})

	t.Run("passes LIKE patterns through", func(t *testing.T) {
		books, err := repo.Find("%Dick%", "", "")
		require.NoError(t, err)
		assert.Len(t, books, 2)

		books, err = repo.Find("", "%Thoreau%", "")
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("combines fields", func(t *testing.T) {
		books, err := repo.Find("Moby Dick", "", "de")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "de", books[0].Language)
	})

	t.Run("no match is an empty list, not an error", func(t *testing.T) {
		books, err := repo.Find("Ulysses", "", "")
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestRepository_FindExact(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, _, err := repo.GetOrCreate("Moby Dick", "Herman Melville", "en")
	require.NoError(t, err)
	_, _, err = repo.GetOrCreate("Moby Dick", "Herman Melville", "de")
	require.NoError(t, err)

	t.Run("by title", func(t *testing.T) {
		books, err := repo.FindByTitle("Moby Dick")
		require.NoError(t, err)
		assert.Len(t, books, 2)

		books, err = repo.FindByTitle("Moby")
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("by author", func(t *testing.T) {
		books, err := repo.FindByAuthor("Herman Melville")
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
}
