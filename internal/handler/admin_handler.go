package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fridayfive/backend/internal/listing"
	"github.com/fridayfive/backend/internal/model"
	"github.com/fridayfive/backend/internal/repository"
)

// AdminSubmissionHandler exposes the listing engine to the admin dashboard:
// the derived table view, the random-five lottery, selection toggles, the
// commit action and deletes.
type AdminSubmissionHandler struct {
	engine *listing.Engine
}

// NewAdminSubmissionHandler creates an AdminSubmissionHandler over the engine.
func NewAdminSubmissionHandler(engine *listing.Engine) *AdminSubmissionHandler {
	return &AdminSubmissionHandler{engine: engine}
}

// viewFromQuery parses the view parameters from query arguments.
// Unknown sort fields and directions fall back to "no sort"; the tab
// defaults to "all" and the page to 1.
func viewFromQuery(r *http.Request) listing.View {
	q := r.URL.Query()

	v := listing.View{
		Search: q.Get("q"),
		Tab:    listing.TabAll,
		Page:   1,
	}

	switch tab := listing.Tab(q.Get("tab")); tab {
	case listing.TabNew, listing.TabSelected:
		v.Tab = tab
	}

	field := listing.SortField(q.Get("sort"))
	dir := listing.SortDir(q.Get("dir"))
	if listing.ValidSortField(field) && (dir == listing.DirAsc || dir == listing.DirDesc) {
		v.SortField = field
		v.SortDir = dir
	}

	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			v.Page = n
		}
	}
	return v
}

// List handles GET /api/admin/submissions.
// Query params: q, sort, dir, tab, page.
func (h *AdminSubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.engine.Query(viewFromQuery(r))

	// Return [] not null for empty pages
	if page.Rows == nil {
		page.Rows = []*model.Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(page)
}

// Reload handles POST /api/admin/submissions/reload. The dashboard calls it
// on mount to pull the full collection from the store.
func (h *AdminSubmissionHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Load(r.Context()); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "service_unavailable")
			return
		}
		slog.Error("submission reload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "reload_failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

// randomResponse is the JSON response for POST /api/admin/submissions/random.
type randomResponse struct {
	Selections []*model.Submission `json:"selections"`
}

// Random handles POST /api/admin/submissions/random. It draws up to five
// distinct entries from the view described by the same query params as List.
// Nothing is persisted until the picks are committed.
func (h *AdminSubmissionHandler) Random(w http.ResponseWriter, r *http.Request) {
	picks := h.engine.RandomFive(viewFromQuery(r))
	if picks == nil {
		picks = []*model.Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(randomResponse{Selections: picks})
}

// commitRequest is the expected JSON body for POST /api/admin/submissions/commit.
type commitRequest struct {
	IDs []string `json:"ids"`
}

// commitResponse carries the plain-text summary the client places on the
// clipboard. The clipboard write itself is the browser's job and best-effort.
type commitResponse struct {
	CopyText string `json:"copy_text"`
}

// Commit handles POST /api/admin/submissions/commit. It marks the given ids
// as selected with today's date and returns the copy-and-close text block.
func (h *AdminSubmissionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids_required")
		return
	}

	text, err := h.engine.CommitSelection(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "service_unavailable")
			return
		}
		slog.Error("commit selection failed", "error", err, "ids", req.IDs)
		writeError(w, http.StatusInternalServerError, "commit_failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(commitResponse{CopyText: text})
}

// toggleRequest is the expected JSON body for PATCH /api/admin/submissions/{id}/selected.
type toggleRequest struct {
	Selected bool `json:"selected"`
}

// ToggleSelected handles PATCH /api/admin/submissions/{id}/selected.
// selected=true stamps today's date; selected=false clears the selection.
// A failed store update leaves the view unchanged and is reported to the
// caller instead of silently showing success.
func (h *AdminSubmissionHandler) ToggleSelected(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.engine.ToggleSelected(r.Context(), id, req.Selected); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, repository.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "service_unavailable")
		default:
			slog.Error("toggle selection failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "update_failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

// Delete handles DELETE /api/admin/submissions/{id}.
// The request must carry confirm=true; deletion is permanent and has no undo,
// so an unconfirmed request is rejected before any store call is attempted.
func (h *AdminSubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "confirmation_required")
		return
	}

	if err := h.engine.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, repository.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "service_unavailable")
		default:
			slog.Error("delete failed", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "delete_failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}
