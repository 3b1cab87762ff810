package domain

import "time"

// Project is a single portfolio entry owned by a user.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Batch      string    `json:"batch"`
	VibeLink   string    `json:"vibe_link"`
	GithubLink string    `json:"github_link"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateProjectRequest carries the client-supplied fields for a new project.
// It deliberately has no id/user_id/created_at: those are stamped server-side,
// so anything the client sends for them is ignored.
type CreateProjectRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Batch      string   `json:"batch"`
	VibeLink   string   `json:"vibe_link"`
	GithubLink string   `json:"github_link"`
	Tags       []string `json:"tags"`
}

// UpdateProjectRequest is a shallow partial update. Nil fields are left
// untouched; Tags replaces the stored set wholesale rather than merging.
type UpdateProjectRequest struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Batch      *string   `json:"batch,omitempty"`
	VibeLink   *string   `json:"vibe_link,omitempty"`
	GithubLink *string   `json:"github_link,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
}
