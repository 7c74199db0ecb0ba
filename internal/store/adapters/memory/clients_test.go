package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/oidcore/internal/domain/repository"
)

func webInput() repository.ClientInput {
	return repository.ClientInput{
		ClientID:      "web",
		Name:          "Web App",
		RedirectURIs:  []string{"https://example.com/callback"},
		ResponseTypes: []string{"code"},
		GrantTypes:    []string{"authorization_code"},
		Active:        true,
	}
}

func TestClientStore_CRUD(t *testing.T) {
	s := NewClientStore()
	ctx := context.Background()

	created, err := s.Save(ctx, webInput())
	require.NoError(t, err)
	assert.Equal(t, "web", created.ClientID)

	_, err = s.Save(ctx, webInput())
	require.ErrorIs(t, err, repository.ErrConflict)

	got, err := s.FindByID(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, "Web App", got.Name)

	_, err = s.FindByID(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	in := webInput()
	in.Name = "Renamed"
	updated, err := s.Update(ctx, "web", in)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = s.Update(ctx, "missing", in)
	require.ErrorIs(t, err, repository.ErrNotFound)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Delete(ctx, "web"))
	require.ErrorIs(t, s.Delete(ctx, "web"), repository.ErrNotFound)
}

func TestClientStore_SaveRequiresClientID(t *testing.T) {
	s := NewClientStore()
	in := webInput()
	in.ClientID = ""
	_, err := s.Save(context.Background(), in)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestClientStore_FindReturnsCopy(t *testing.T) {
	s := NewClientStore()
	s.Seed(repository.Client{ClientID: "web", Name: "Web", Active: true})

	got, err := s.FindByID(context.Background(), "web")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.FindByID(context.Background(), "web")
	require.NoError(t, err)
	assert.Equal(t, "Web", again.Name)
}
