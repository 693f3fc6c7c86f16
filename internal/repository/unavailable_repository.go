package repository

import (
	"context"

	"github.com/fridayfive/backend/internal/model"
)

// UnavailableSubmissionRepository is used when DATABASE_URL is not configured.
// Every read reports ErrUnavailable and every write fails with it, so the
// server stays up in degraded mode instead of crashing at startup.
type UnavailableSubmissionRepository struct{}

// NewUnavailableSubmissionRepository creates the degraded-mode repository.
func NewUnavailableSubmissionRepository() *UnavailableSubmissionRepository {
	return &UnavailableSubmissionRepository{}
}

var _ SubmissionRepository = (*UnavailableSubmissionRepository)(nil)

func (r *UnavailableSubmissionRepository) FetchAll(ctx context.Context) ([]*model.Submission, error) {
	return nil, ErrUnavailable
}

func (r *UnavailableSubmissionRepository) Insert(ctx context.Context, sub *model.Submission) error {
	return ErrUnavailable
}

func (r *UnavailableSubmissionRepository) SetSelected(ctx context.Context, id string, date *string) error {
	return ErrUnavailable
}

func (r *UnavailableSubmissionRepository) SetSelectedBatch(ctx context.Context, ids []string, date string) error {
	return ErrUnavailable
}

func (r *UnavailableSubmissionRepository) Delete(ctx context.Context, id string) error {
	return ErrUnavailable
}
