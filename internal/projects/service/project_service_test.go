package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projtrackr/projtrackr-backend/internal/projects/domain"
	"github.com/projtrackr/projtrackr-backend/internal/projects/repository"
)

func setupService(t *testing.T) *ProjectService {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewProjectService(repository.NewRepo(client))
}

func strPtr(s string) *string { return &s }

func TestCreateStampsServerFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", &domain.CreateProjectRequest{
		Name:       "X",
		Email:      "a@b.com",
		Batch:      "Fall 2025",
		VibeLink:   "https://x.com",
		GithubLink: "https://github.com/a/b",
		Tags:       []string{"Personal"},
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", p.UserID)
	assert.False(t, p.CreatedAt.IsZero())
	_, err = uuid.Parse(p.ID)
	assert.NoError(t, err, "id is a generated UUID")

	listed, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *p, listed[0])
}

func TestCreateNilTagsBecomeEmpty(t *testing.T) {
	svc := setupService(t)

	p, err := svc.Create(context.Background(), "u1", &domain.CreateProjectRequest{Name: "X"})
	require.NoError(t, err)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestListIsScopedPerUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", &domain.CreateProjectRequest{Name: "X"})
	require.NoError(t, err)

	other, err := svc.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", &domain.CreateProjectRequest{
		Name:  "X",
		Batch: "Fall 2025",
		Tags:  []string{"Personal", "Client"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", p.ID, &domain.UpdateProjectRequest{
		Name: strPtr("Y"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Y", updated.Name)
	assert.Equal(t, "Fall 2025", updated.Batch, "untouched fields survive")
	assert.Equal(t, []string{"Personal", "Client"}, updated.Tags)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt, "created_at survives updates")
}

func TestUpdateReplacesTagsWholesale(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", &domain.CreateProjectRequest{
		Name: "X",
		Tags: []string{"Personal", "Client"},
	})
	require.NoError(t, err)

	tags := []string{"Academic"}
	updated, err := svc.Update(ctx, "u1", p.ID, &domain.UpdateProjectRequest{Tags: &tags})
	require.NoError(t, err)

	assert.Equal(t, []string{"Academic"}, updated.Tags, "replacement, not union")
}

func TestUpdateKeepsImmutableIdentifiers(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", &domain.CreateProjectRequest{Name: "X"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", p.ID, &domain.UpdateProjectRequest{Name: strPtr("Y")})
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "u1", updated.UserID)

	stored, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, p.ID, stored[0].ID)
	assert.Equal(t, "u1", stored[0].UserID)
}

func TestUpdateMissingProject(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Update(context.Background(), "u1", "missing-id", &domain.UpdateProjectRequest{
		Name: strPtr("Y"),
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	// No record was created as a side effect.
	listed, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteTwiceSucceeds(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", &domain.CreateProjectRequest{Name: "X"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", p.ID))
	require.NoError(t, svc.Delete(ctx, "u1", p.ID))
}
