package service

import (
	"context"

	"github.com/fridayfive/backend/internal/model"
)

// SubmissionService defines the business logic for the public portfolio form.
type SubmissionService interface {
	// Submit stores a new portfolio submission. The sub.ID and CreatedAt
	// will be populated by the implementation.
	Submit(ctx context.Context, sub *model.Submission) error
}
