package service

import (
	"context"
	"time"

	"github.com/fridayfive/backend/internal/model"
	"github.com/fridayfive/backend/internal/repository"
	"github.com/google/uuid"
)

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Submit stores a new portfolio submission. It assigns the identifier and a
// provisional creation timestamp before persisting; a fresh submission never
// starts out selected.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.Submission) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	sub.SelectedDate = nil
	return s.repo.Insert(ctx, sub)
}
