package repository

import (
	"context"

	"github.com/fridayfive/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for portfolio
// submissions. Only the selected_date field is ever updated after insert;
// every other mutation is a whole-row insert or delete.
type SubmissionRepository interface {
	// FetchAll returns every submission ordered by creation time descending.
	FetchAll(ctx context.Context) ([]*model.Submission, error)

	// Insert stores a new submission. The caller assigns ID; CreatedAt is
	// populated from the database row.
	Insert(ctx context.Context, sub *model.Submission) error

	// SetSelected sets or clears the selected_date on one submission.
	// A nil date clears the selection. Returns ErrNotFound for an unknown id.
	SetSelected(ctx context.Context, id string, date *string) error

	// SetSelectedBatch sets the same non-null date on every submission whose
	// id is in ids. There is no batch clear.
	SetSelectedBatch(ctx context.Context, ids []string, date string) error

	// Delete permanently removes one submission. Returns ErrNotFound for an
	// unknown id. There is no soft delete.
	Delete(ctx context.Context, id string) error
}
