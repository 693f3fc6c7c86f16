package model

import "time"

// Submission represents one portfolio entry recorded from the public form.
type Submission struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	LinkedInURL   string `json:"linkedin_url,omitempty"`
	PortfolioURL  string `json:"portfolio_url"`
	DesignFocus   string `json:"design_focus"`
	Opportunities string `json:"opportunities"`
	Location      string `json:"location,omitempty"`
	Bio           string `json:"bio,omitempty"`

	// Metadata recorded by the public form when a file was attached.
	// Upload handling itself lives outside this service.
	PortfolioFileName string `json:"portfolio_file_name,omitempty"`
	PortfolioFileSize int64  `json:"portfolio_file_size,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// SelectedDate is an ISO calendar date ("2006-01-02") when the submission
	// has been picked for a weekly feature, nil otherwise. Presence of a value
	// is the sole signal that a submission belongs to the Selected partition.
	SelectedDate *string `json:"selected_date,omitempty"`
}

// IsSelected returns true if the submission has been picked for a feature.
func (s *Submission) IsSelected() bool {
	return s.SelectedDate != nil
}
