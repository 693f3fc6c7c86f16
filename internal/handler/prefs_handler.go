package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fridayfive/backend/internal/prefs"
)

// PrefsHandler serves the admin's column-visibility preferences.
type PrefsHandler struct {
	store prefs.Store
}

// NewPrefsHandler creates a PrefsHandler over the given store.
func NewPrefsHandler(store prefs.Store) *PrefsHandler {
	return &PrefsHandler{store: store}
}

// GetColumns handles GET /api/admin/prefs/columns.
func (h *PrefsHandler) GetColumns(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.store.Load())
}

// PutColumns handles PUT /api/admin/prefs/columns.
// Persistence is best-effort: a failed save is logged but the updated
// preferences are still acknowledged, so the UI never blocks on disk.
func (h *PrefsHandler) PutColumns(w http.ResponseWriter, r *http.Request) {
	var cols prefs.Columns
	if err := json.NewDecoder(r.Body).Decode(&cols); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.store.Save(cols); err != nil {
		slog.Warn("column prefs save failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cols)
}
