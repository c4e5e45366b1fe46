package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demonym/internal/person/models"
	"demonym/internal/sentinel"
	"demonym/pkg/nationality"
)

func newPerson(name, code string, createdAt time.Time) *models.Person {
	return &models.Person{
		ID:          uuid.New(),
		FullName:    name,
		Nationality: nationality.New(code),
		CreatedAt:   createdAt,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	p := newPerson("Eszter Nagy", "HU", time.Now())
	require.NoError(t, store.Create(ctx, p))

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eszter Nagy", found.FullName)
	assert.Equal(t, "HU", found.Nationality.Code())
}

func TestFindByID_NotFound(t *testing.T) {
	store := NewInMemory()

	_, err := store.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	older := newPerson("Older", "DE", time.Now().Add(-time.Hour))
	newer := newPerson("Newer", "SE", time.Now())
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].FullName)
	assert.Equal(t, "Older", got[1].FullName)
}

func TestListByNationality(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newPerson("A", "HU", time.Now())))
	require.NoError(t, store.Create(ctx, newPerson("B", "HU", time.Now())))
	require.NoError(t, store.Create(ctx, newPerson("C", "DE", time.Now())))

	got, err := store.ListByNationality(ctx, "HU")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = store.ListByNationality(ctx, "XX")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreate_CopiesRecord(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	p := newPerson("Mutable", "HU", time.Now())
	require.NoError(t, store.Create(ctx, p))
	p.FullName = "Changed"

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mutable", found.FullName)
}
