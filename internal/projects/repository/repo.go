package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/projtrackr/projtrackr-backend/internal/projects/domain"
)

const (
	// Key layout: project:{user_id}:{project_id} -> Project JSON.
	// Embedding the owner in the key is what scopes every read and write
	// to the authenticated caller.
	projectKeyPrefix = "project:"

	scanBatchSize = 100
)

// Repo handles key-value store operations for projects.
type Repo struct {
	client *redis.Client
}

func NewRepo(client *redis.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) key(userID, projectID string) string {
	return fmt.Sprintf("%s%s:%s", projectKeyPrefix, userID, projectID)
}

func (r *Repo) userPattern(userID string) string {
	return fmt.Sprintf("%s%s:*", projectKeyPrefix, userID)
}

// Save writes a project under its owner-scoped key, overwriting any
// previous value. Last writer wins; there is no version check.
func (r *Repo) Save(ctx context.Context, p *domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := r.client.Set(ctx, r.key(p.UserID, p.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return nil
}

// Get retrieves a single project owned by userID.
func (r *Repo) Get(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.key(userID, projectID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}

	return &p, nil
}

// ListByUser returns every project stored under the user's key prefix.
// Order is whatever the scan yields; callers must not rely on it.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.userPattern(userID), scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(keys))
	if len(keys) == 0 {
		return projects, nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// Key deleted between scan and fetch.
			continue
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// Delete removes a project key. Deleting a missing key is not an error.
func (r *Repo) Delete(ctx context.Context, userID, projectID string) error {
	if err := r.client.Del(ctx, r.key(userID, projectID)).Err(); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
