package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fridayfive/backend/internal/listing"
	"github.com/fridayfive/backend/internal/model"
	"github.com/fridayfive/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// in-memory SubmissionRepository backing the engine under test
// ---------------------------------------------------------------------------

type fakeSubmissionRepo struct {
	subs     []*model.Submission
	batchErr error
}

func (r *fakeSubmissionRepo) FetchAll(ctx context.Context) ([]*model.Submission, error) {
	out := make([]*model.Submission, len(r.subs))
	for i, s := range r.subs {
		clone := *s
		out[i] = &clone
	}
	return out, nil
}

func (r *fakeSubmissionRepo) Insert(ctx context.Context, sub *model.Submission) error {
	r.subs = append([]*model.Submission{sub}, r.subs...)
	return nil
}

func (r *fakeSubmissionRepo) SetSelected(ctx context.Context, id string, date *string) error {
	for _, s := range r.subs {
		if s.ID == id {
			s.SelectedDate = date
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeSubmissionRepo) SetSelectedBatch(ctx context.Context, ids []string, date string) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for _, id := range ids {
		for _, s := range r.subs {
			if s.ID == id {
				d := date
				s.SelectedDate = &d
			}
		}
	}
	return nil
}

func (r *fakeSubmissionRepo) Delete(ctx context.Context, id string) error {
	for i, s := range r.subs {
		if s.ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newTestAdminHandler(t *testing.T) (*AdminSubmissionHandler, *fakeSubmissionRepo) {
	t.Helper()
	created := func(s string) time.Time {
		ts, _ := time.Parse("2006-01-02", s)
		return ts
	}
	repo := &fakeSubmissionRepo{subs: []*model.Submission{
		{ID: "A", FullName: "Zoe", Email: "zoe@example.com", PortfolioURL: "https://zoe.design",
			DesignFocus: "ui-ux", Opportunities: "freelance", Location: "Berlin", CreatedAt: created("2024-01-03")},
		{ID: "B", FullName: "Amy", Email: "amy@example.com", PortfolioURL: "https://amy.design",
			DesignFocus: "branding", Opportunities: "full-time", Location: "London", CreatedAt: created("2024-01-02")},
		{ID: "C", FullName: "Mo", Email: "mo@example.com", PortfolioURL: "https://mo.design",
			DesignFocus: "motion", Opportunities: "feedback", Location: "Tokyo", CreatedAt: created("2024-01-01")},
	}}
	engine := listing.NewEngine(repo)
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("engine load failed: %v", err)
	}
	return NewAdminSubmissionHandler(engine), repo
}

// serveWithID routes the request through a mux so r.PathValue("id") works.
func serveWithID(h http.HandlerFunc, pattern, method, target string, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// GET /api/admin/submissions
// ---------------------------------------------------------------------------

func TestAdminHandler_List_DefaultView(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var page listing.Page
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if page.Total != 3 || len(page.Rows) != 3 {
		t.Errorf("expected 3 rows, got total=%d rows=%d", page.Total, len(page.Rows))
	}
	if page.Rows[0].ID != "A" {
		t.Errorf("expected creation-desc order starting at A, got %s", page.Rows[0].ID)
	}
	if page.Counts.All != 3 || page.Counts.New != 3 || page.Counts.Selected != 0 {
		t.Errorf("unexpected counts: %+v", page.Counts)
	}
}

func TestAdminHandler_List_SearchSortAndTabParams(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions?sort=name&dir=asc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var page listing.Page
	_ = json.NewDecoder(rec.Body).Decode(&page)
	if len(page.Rows) != 3 || page.Rows[0].FullName != "Amy" {
		t.Errorf("expected name-ascending order starting with Amy, got %+v", page.Rows)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/submissions?q=amy", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)

	page = listing.Page{}
	_ = json.NewDecoder(rec.Body).Decode(&page)
	if page.Total != 1 || page.Rows[0].ID != "B" {
		t.Errorf(`search "amy": expected only B, got %+v`, page.Rows)
	}
}

func TestAdminHandler_List_IgnoresInvalidSortParams(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions?sort=bogus&dir=sideways", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var page listing.Page
	_ = json.NewDecoder(rec.Body).Decode(&page)
	if page.Rows[0].ID != "A" {
		t.Errorf("expected store order with invalid sort params, got %s first", page.Rows[0].ID)
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/submissions/random
// ---------------------------------------------------------------------------

func TestAdminHandler_Random_ReturnsDistinctPicks(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/submissions/random", nil)
	rec := httptest.NewRecorder()
	h.Random(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp randomResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Selections) != 3 {
		t.Errorf("expected all 3 entries (fewer than five available), got %d", len(resp.Selections))
	}
	seen := make(map[string]bool)
	for _, s := range resp.Selections {
		if seen[s.ID] {
			t.Errorf("duplicate pick %s", s.ID)
		}
		seen[s.ID] = true
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/submissions/commit
// ---------------------------------------------------------------------------

func TestAdminHandler_Commit_ReturnsCopyText(t *testing.T) {
	h, repo := newTestAdminHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/submissions/commit", strings.NewReader(`{"ids":["B"]}`))
	h.Commit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp commitResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.HasPrefix(resp.CopyText, "1. Amy\nPortfolio: https://amy.design") {
		t.Errorf("unexpected copy text: %q", resp.CopyText)
	}

	for _, s := range repo.subs {
		if s.ID == "B" && s.SelectedDate == nil {
			t.Error("expected B to be selected in the store after commit")
		}
	}
}

func TestAdminHandler_Commit_EmptyIDs(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/submissions/commit", strings.NewReader(`{"ids":[]}`))
	h.Commit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_Commit_StoreFailure(t *testing.T) {
	h, repo := newTestAdminHandler(t)
	repo.batchErr = repository.ErrUnavailable

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/submissions/commit", strings.NewReader(`{"ids":["B"]}`))
	h.Commit(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/admin/submissions/{id}/selected
// ---------------------------------------------------------------------------

func TestAdminHandler_ToggleSelected(t *testing.T) {
	h, repo := newTestAdminHandler(t)

	rec := serveWithID(h.ToggleSelected, "PATCH /api/admin/submissions/{id}/selected",
		http.MethodPatch, "/api/admin/submissions/A/selected", `{"selected":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	for _, s := range repo.subs {
		if s.ID == "A" && s.SelectedDate == nil {
			t.Error("expected A to be selected in the store")
		}
	}

	rec = serveWithID(h.ToggleSelected, "PATCH /api/admin/submissions/{id}/selected",
		http.MethodPatch, "/api/admin/submissions/A/selected", `{"selected":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on clear, got %d", rec.Code)
	}
	for _, s := range repo.subs {
		if s.ID == "A" && s.SelectedDate != nil {
			t.Error("expected A to be unselected in the store")
		}
	}
}

func TestAdminHandler_ToggleSelected_UnknownID(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	rec := serveWithID(h.ToggleSelected, "PATCH /api/admin/submissions/{id}/selected",
		http.MethodPatch, "/api/admin/submissions/nope/selected", `{"selected":true}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/admin/submissions/{id}
// ---------------------------------------------------------------------------

func TestAdminHandler_Delete_RequiresConfirmation(t *testing.T) {
	h, repo := newTestAdminHandler(t)

	rec := serveWithID(h.Delete, "DELETE /api/admin/submissions/{id}",
		http.MethodDelete, "/api/admin/submissions/C", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without confirm, got %d", rec.Code)
	}
	if len(repo.subs) != 3 {
		t.Error("nothing may be deleted without confirmation")
	}
}

func TestAdminHandler_Delete_Success(t *testing.T) {
	h, repo := newTestAdminHandler(t)

	rec := serveWithID(h.Delete, "DELETE /api/admin/submissions/{id}",
		http.MethodDelete, "/api/admin/submissions/C?confirm=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	for _, s := range repo.subs {
		if s.ID == "C" {
			t.Error("C still present in store after delete")
		}
	}
}

func TestAdminHandler_Delete_UnknownID(t *testing.T) {
	h, _ := newTestAdminHandler(t)

	rec := serveWithID(h.Delete, "DELETE /api/admin/submissions/{id}",
		http.MethodDelete, "/api/admin/submissions/nope?confirm=true", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
