package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demonym/internal/person/models"
	"demonym/internal/person/store"
	"demonym/internal/sentinel"
)

func newService(t *testing.T) *Service {
	t.Helper()
	svc := New(store.NewInMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreatePerson(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	p, err := svc.CreatePerson(ctx, &models.CreatePersonRequest{
		FullName:    "  Eszter Nagy ",
		Nationality: "hu",
	})
	require.NoError(t, err)

	assert.Equal(t, "Eszter Nagy", p.FullName)
	assert.Equal(t, "HU", p.Nationality.Code())

	name, ok := p.Nationality.Name()
	require.True(t, ok)
	assert.Equal(t, "Hungarian", name)
}

func TestCreatePerson_EmptyNameRejected(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreatePerson(context.Background(), &models.CreatePersonRequest{
		FullName: "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
}

func TestCreatePerson_UnknownCodeAccepted(t *testing.T) {
	svc := newService(t)

	p, err := svc.CreatePerson(context.Background(), &models.CreatePersonRequest{
		FullName:    "No Country",
		Nationality: "XX",
	})
	require.NoError(t, err)

	assert.Equal(t, "XX", p.Nationality.Code())
	_, ok := p.Nationality.Name()
	assert.False(t, ok)
}

func TestCreatePerson_NoNationality(t *testing.T) {
	svc := newService(t)

	p, err := svc.CreatePerson(context.Background(), &models.CreatePersonRequest{
		FullName: "Stateless",
	})
	require.NoError(t, err)
	assert.True(t, p.Nationality.IsZero())

	resp := p.ToResponse()
	assert.Empty(t, resp.Nationality)
	assert.Empty(t, resp.NationalityName)
}

func TestListPersons_FilterByCode(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, in := range []models.CreatePersonRequest{
		{FullName: "A", Nationality: "HU"},
		{FullName: "B", Nationality: "DE"},
		{FullName: "C", Nationality: "HU"},
	} {
		req := in
		_, err := svc.CreatePerson(ctx, &req)
		require.NoError(t, err)
	}

	all, err := svc.ListPersons(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hungarians, err := svc.ListPersons(ctx, "HU")
	require.NoError(t, err)
	assert.Len(t, hungarians, 2)
}

func TestResolveName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	name, ok := svc.ResolveName(ctx, "HU")
	require.True(t, ok)
	assert.Equal(t, "Hungarian", name)

	_, ok = svc.ResolveName(ctx, "XX")
	assert.False(t, ok)
}
