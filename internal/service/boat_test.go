package service_test

import (
	"context"
	"testing"

	"github.com/Lmsantos89/boat-manager-app/internal/auth"
	"github.com/Lmsantos89/boat-manager-app/internal/repository"
	"github.com/Lmsantos89/boat-manager-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBoatFixture returns a boat service over in-memory repositories with
// the users "alice" and "bob" already registered.
func newBoatFixture(t *testing.T) *service.BoatService {
	t.Helper()
	ctx := context.Background()
	authSvc := service.NewAuthService(repository.NewMemoryUserRepository(), auth.NewTokenService("test-secret"))
	require.NoError(t, authSvc.Register(ctx, "alice", "pw1"))
	require.NoError(t, authSvc.Register(ctx, "bob", "pw2"))
	return service.NewBoatService(repository.NewMemoryBoatRepository(), authSvc)
}

func TestCreateAndGet_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	created, err := svc.Create(ctx, "alice", "Skiff", "small boat")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Skiff", got.Name)
	assert.Equal(t, "small boat", got.Description)
}

func TestList_ScopedToOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	_, err := svc.Create(ctx, "alice", "Skiff", "small boat")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", "Sloop", "single mast")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", "Ketch", "two masts")
	require.NoError(t, err)

	aliceBoats, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceBoats, 2)
	assert.Equal(t, "Skiff", aliceBoats[0].Name)
	assert.Equal(t, "Sloop", aliceBoats[1].Name)

	bobBoats, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobBoats, 1)
	assert.Equal(t, "Ketch", bobBoats[0].Name)
}

func TestList_EmptyForOwnerWithNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	boats, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, boats)
}

func TestCrossTenantAccessIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	boat, err := svc.Create(ctx, "alice", "Skiff", "small boat")
	require.NoError(t, err)

	// Bob cannot observe or mutate Alice's boat; every operation answers
	// as if the boat did not exist
	_, err = svc.Get(ctx, "bob", boat.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Update(ctx, "bob", boat.ID, "Stolen", "hijacked")
	assert.ErrorIs(t, err, service.ErrNotFound)

	deleted, err := svc.Delete(ctx, "bob", boat.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Alice's boat is untouched by Bob's attempts
	got, err := svc.Get(ctx, "alice", boat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Skiff", got.Name)
	assert.Equal(t, "small boat", got.Description)
}

func TestUpdate_ReplacesNameAndDescriptionOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	boat, err := svc.Create(ctx, "alice", "Skiff", "small boat")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "alice", boat.ID, "Dinghy", "even smaller")
	require.NoError(t, err)
	assert.Equal(t, boat.ID, updated.ID)
	assert.Equal(t, boat.OwnerID, updated.OwnerID)
	assert.Equal(t, "Dinghy", updated.Name)
	assert.Equal(t, "even smaller", updated.Description)
}

func TestUpdate_MissingBoatIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	_, err := svc.Update(ctx, "alice", 999, "Ghost", "never existed")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_IdempotentAtAPISurface(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	boat, err := svc.Create(ctx, "alice", "Skiff", "small boat")
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, "alice", boat.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete of the same id reports false, not an error
	deleted, err = svc.Delete(ctx, "alice", boat.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Get(ctx, "alice", boat.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUnknownCallerIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newBoatFixture(t)

	// Authenticated but unrecognized callers are an error, never silently
	// treated as owning nothing
	_, err := svc.List(ctx, "nobody")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.Create(ctx, "nobody", "Skiff", "small boat")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.Get(ctx, "nobody", 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.Update(ctx, "nobody", 1, "a", "b")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.Delete(ctx, "nobody", 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
