package repository

import (
	"context"
	"time"

	"github.com/fridayfive/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

const isoDate = "2006-01-02"

// FetchAll returns every portfolio submission, newest first.
func (r *PgSubmissionRepository) FetchAll(ctx context.Context) ([]*model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, COALESCE(linkedin_url, ''), portfolio_url,
		        design_focus, opportunities, COALESCE(location, ''), COALESCE(bio, ''),
		        COALESCE(portfolio_file_name, ''), COALESCE(portfolio_file_size, 0),
		        created_at, selected_date
		 FROM portfolio_submissions
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		var selected *time.Time
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.LinkedInURL, &s.PortfolioURL,
			&s.DesignFocus, &s.Opportunities, &s.Location, &s.Bio,
			&s.PortfolioFileName, &s.PortfolioFileSize,
			&s.CreatedAt, &selected); err != nil {
			return nil, err
		}
		if selected != nil {
			d := selected.Format(isoDate)
			s.SelectedDate = &d
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Insert stores a new portfolio_submissions row and populates sub.CreatedAt
// from the database RETURNING clause.
func (r *PgSubmissionRepository) Insert(ctx context.Context, sub *model.Submission) error {
	var fileSize any
	if sub.PortfolioFileSize > 0 {
		fileSize = sub.PortfolioFileSize
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO portfolio_submissions
		   (id, full_name, email, linkedin_url, portfolio_url, design_focus,
		    opportunities, location, bio, portfolio_file_name, portfolio_file_size)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11)
		 RETURNING created_at`,
		sub.ID, sub.FullName, sub.Email, sub.LinkedInURL, sub.PortfolioURL,
		sub.DesignFocus, sub.Opportunities, sub.Location, sub.Bio,
		sub.PortfolioFileName, fileSize,
	).Scan(&sub.CreatedAt)
}

// SetSelected sets or clears the selected_date on exactly one submission.
func (r *PgSubmissionRepository) SetSelected(ctx context.Context, id string, date *string) error {
	var value any
	if date != nil {
		d, err := time.Parse(isoDate, *date)
		if err != nil {
			return err
		}
		value = d
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE portfolio_submissions SET selected_date = $2 WHERE id = $1`,
		id, value)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSelectedBatch sets the same date on every submission in ids.
// Ids not present in the table are silently skipped.
func (r *PgSubmissionRepository) SetSelectedBatch(ctx context.Context, ids []string, date string) error {
	if len(ids) == 0 {
		return nil
	}
	d, err := time.Parse(isoDate, date)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE portfolio_submissions SET selected_date = $2 WHERE id = ANY($1)`,
		ids, d)
	return err
}

// Delete permanently removes one submission.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM portfolio_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
