package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/projtrackr/projtrackr-backend/internal/projects/domain"
	"github.com/projtrackr/projtrackr-backend/internal/projects/repository"
)

// ProjectService owns the CRUD semantics on top of the key-value repo:
// id/user_id stamping on create, partial merge on update.
type ProjectService struct {
	repo *repository.Repo
}

func NewProjectService(repo *repository.Repo) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create stamps a fresh id, the owning user and the creation time, then
// stores the project. user_id always comes from the verified token, never
// from the request body.
func (s *ProjectService) Create(ctx context.Context, userID string, req *domain.CreateProjectRequest) (*domain.Project, error) {
	p := &domain.Project{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Batch:      req.Batch,
		VibeLink:   req.VibeLink,
		GithubLink: req.GithubLink,
		Tags:       req.Tags,
		CreatedAt:  time.Now().UTC(),
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns all projects owned by the user. No ordering is guaranteed.
func (s *ProjectService) List(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update performs a shallow merge of the supplied fields over the stored
// record. id and user_id are immutable, and created_at survives; tags are
// replaced wholesale when present. Returns ErrProjectNotFound when no record
// exists, without creating one.
func (s *ProjectService) Update(ctx context.Context, userID, projectID string, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Batch != nil {
		p.Batch = *req.Batch
	}
	if req.VibeLink != nil {
		p.VibeLink = *req.VibeLink
	}
	if req.GithubLink != nil {
		p.GithubLink = *req.GithubLink
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}

	// Re-stamp the immutable identifiers before writing back.
	p.ID = projectID
	p.UserID = userID

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete removes the project. Idempotent: deleting a missing id succeeds.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID string) error {
	return s.repo.Delete(ctx, userID, projectID)
}
