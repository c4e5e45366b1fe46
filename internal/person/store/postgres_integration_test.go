package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demonym/internal/person/models"
	"demonym/internal/sentinel"
	"demonym/migrations"
	"demonym/pkg/nationality"
)

// openTestDB connects to the database named by DEMONYM_TEST_DATABASE_URL and
// applies migrations. The test is skipped when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DEMONYM_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DEMONYM_TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, migrations.Apply(ctx, db))

	_, err = db.ExecContext(ctx, "TRUNCATE persons")
	require.NoError(t, err)
	return db
}

func TestPostgres_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgres(db)
	ctx := context.Background()

	p := &models.Person{
		ID:          uuid.New(),
		FullName:    "Eszter Nagy",
		Nationality: nationality.New("HU"),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, store.Create(ctx, p))

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eszter Nagy", found.FullName)
	// The column stores the plain code; the wrapper comes back on read.
	assert.Equal(t, "HU", found.Nationality.Code())

	name, ok := found.Nationality.Name()
	require.True(t, ok)
	assert.Equal(t, "Hungarian", name)
}

func TestPostgres_NullNationality(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgres(db)
	ctx := context.Background()

	p := &models.Person{
		ID:        uuid.New(),
		FullName:  "Stateless",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Create(ctx, p))

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, found.Nationality.IsZero())
}

func TestPostgres_FindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgres(db)

	_, err := store.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgres_ListByNationality(t *testing.T) {
	db := openTestDB(t)
	store := NewPostgres(db)
	ctx := context.Background()

	for _, code := range []string{"HU", "HU", "DE"} {
		p := &models.Person{
			ID:          uuid.New(),
			FullName:    "Person " + code,
			Nationality: nationality.New(code),
			CreatedAt:   time.Now().UTC(),
		}
		require.NoError(t, store.Create(ctx, p))
	}

	got, err := store.ListByNationality(ctx, "HU")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
