package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fridayfive/backend/internal/model"
	"github.com/fridayfive/backend/internal/repository"
	"github.com/fridayfive/backend/internal/service"
)

const maxBioLength = 5000

// SubmissionHandler handles the public portfolio form.
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler with the given service.
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// submitRequest is the expected JSON body for POST /api/submissions.
type submitRequest struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	LinkedInURL       string `json:"linkedin_url"`
	PortfolioURL      string `json:"portfolio_url"`
	DesignFocus       string `json:"design_focus"`
	Opportunities     string `json:"opportunities"`
	Location          string `json:"location"`
	Bio               string `json:"bio"`
	PortfolioFileName string `json:"portfolio_file_name"`
	PortfolioFileSize int64  `json:"portfolio_file_size"`
}

// Submit handles POST /api/submissions.
// full_name, email, portfolio_url, design_focus and opportunities are
// required; linkedin_url, location and bio are optional. Focus and
// opportunities values outside the known vocabulary are stored verbatim.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"full_name", req.FullName},
		{"email", req.Email},
		{"portfolio_url", req.PortfolioURL},
		{"design_focus", req.DesignFocus},
		{"opportunities", req.Opportunities},
	}
	for _, f := range required {
		if f.value == "" {
			writeError(w, http.StatusBadRequest, f.name+"_required")
			return
		}
	}

	if len([]rune(req.Bio)) > maxBioLength {
		writeError(w, http.StatusBadRequest, "bio_too_long")
		return
	}

	sub := &model.Submission{
		FullName:          req.FullName,
		Email:             req.Email,
		LinkedInURL:       req.LinkedInURL,
		PortfolioURL:      req.PortfolioURL,
		DesignFocus:       req.DesignFocus,
		Opportunities:     req.Opportunities,
		Location:          req.Location,
		Bio:               req.Bio,
		PortfolioFileName: req.PortfolioFileName,
		PortfolioFileSize: req.PortfolioFileSize,
	}

	if err := h.submissionService.Submit(r.Context(), sub); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "service_unavailable")
			return
		}
		slog.Error("submission insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sub)
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
