package listing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fridayfive/backend/internal/model"
	"github.com/fridayfive/backend/internal/repository"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const isoDate = "2006-01-02"

// Counts holds the per-tab submission totals, computed over the full
// snapshot regardless of the active search.
type Counts struct {
	New      int `json:"new"`
	Selected int `json:"selected"`
	All      int `json:"all"`
}

// Page is one derived page of the submission table.
type Page struct {
	Rows       []*model.Submission `json:"rows"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
	Total      int                 `json:"total"`
	Counts     Counts              `json:"counts"`
}

// Engine holds the full submission set fetched once from the store and
// derives filtered/sorted/paginated views from it. Mutations go through the
// repository first; the in-memory snapshot is updated only after the remote
// call succeeds, so it stays consistent with the store.
//
// One mutex guards the snapshot. Query and RandomFive return copies, never
// snapshot pointers, so callers can encode the rows after the lock is
// released while a concurrent mutation rewrites the snapshot.
type Engine struct {
	mu       sync.Mutex
	repo     repository.SubmissionRepository
	subs     []*model.Submission
	collator *collate.Collator
}

// NewEngine creates an Engine backed by the given repository. The snapshot is
// empty until Load is called.
func NewEngine(repo repository.SubmissionRepository) *Engine {
	return &Engine{
		repo:     repo,
		collator: collate.New(language.English),
	}
}

// Load replaces the snapshot with the full collection from the store.
// On error the previous snapshot is kept.
func (e *Engine) Load(ctx context.Context) error {
	subs, err := e.repo.FetchAll(ctx)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.subs = subs
	e.mu.Unlock()
	return nil
}

// Query computes the visible page for the given view parameters.
func (e *Engine) Query(v View) Page {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := e.derive(v)
	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := v.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Rows:       cloneRows(filtered[start:end]),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		Counts:     e.counts(),
	}
}

// RandomFive draws up to five distinct submissions from the current
// filtered-and-sorted view (not the unfiltered full set) using a uniform
// partial Fisher-Yates shuffle. Fewer than five available returns all of them.
// This is presentational lottery logic, not security-sensitive.
func (e *Engine) RandomFive(v View) []*model.Submission {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool := e.derive(v)
	n := len(pool)
	k := 5
	if n < k {
		k = n
	}
	for i := 0; i < k; i++ {
		j := i + rand.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return cloneRows(pool[:k])
}

// CommitSelection marks the given ids as selected with today's date and
// returns the plain-text summary block for the picked entries. The snapshot
// is updated only after the batch update succeeds.
func (e *Engine) CommitSelection(ctx context.Context, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}
	date := time.Now().UTC().Format(isoDate)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.repo.SetSelectedBatch(ctx, ids, date); err != nil {
		return "", err
	}

	picked := make([]*model.Submission, 0, len(ids))
	for _, id := range ids {
		if s := e.find(id); s != nil {
			d := date
			s.SelectedDate = &d
			picked = append(picked, s)
		}
	}
	return summaryText(picked), nil
}

// ToggleSelected sets (selected=true, today's date) or clears the selection
// of one submission. The snapshot is updated only when the store update
// succeeds; a failed remote call leaves the local state untouched. Clearing
// an already-unselected id succeeds and changes nothing.
func (e *Engine) ToggleSelected(ctx context.Context, id string, selected bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var date *string
	if selected {
		d := time.Now().UTC().Format(isoDate)
		date = &d
	}
	if err := e.repo.SetSelected(ctx, id, date); err != nil {
		return err
	}
	if s := e.find(id); s != nil {
		s.SelectedDate = date
	}
	return nil
}

// Delete removes one submission from the store and, on success, from the
// snapshot. On failure no local change is made.
func (e *Engine) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.repo.Delete(ctx, id); err != nil {
		return err
	}
	for i, s := range e.subs {
		if s.ID == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			break
		}
	}
	return nil
}

// derive applies search filter, tab partition and sort to the snapshot and
// returns a fresh slice. Callers must hold e.mu.
func (e *Engine) derive(v View) []*model.Submission {
	query := strings.ToLower(strings.TrimSpace(v.Search))

	filtered := make([]*model.Submission, 0, len(e.subs))
	for _, s := range e.subs {
		if query != "" && !matches(s, query) {
			continue
		}
		switch v.Tab {
		case TabNew:
			if s.IsSelected() {
				continue
			}
		case TabSelected:
			if !s.IsSelected() {
				continue
			}
		}
		filtered = append(filtered, s)
	}

	if ValidSortField(v.SortField) && v.SortDir != DirNone {
		field, desc := v.SortField, v.SortDir == DirDesc
		sort.SliceStable(filtered, func(i, j int) bool {
			c := e.collator.CompareString(sortKey(filtered[i], field), sortKey(filtered[j], field))
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	return filtered
}

// cloneRows deep-copies rows so returned pages never alias the snapshot.
// Must be called before the mutex is released.
func cloneRows(rows []*model.Submission) []*model.Submission {
	out := make([]*model.Submission, len(rows))
	for i, s := range rows {
		clone := *s
		if s.SelectedDate != nil {
			d := *s.SelectedDate
			clone.SelectedDate = &d
		}
		out[i] = &clone
	}
	return out
}

// counts recomputes the per-tab totals. Callers must hold e.mu.
func (e *Engine) counts() Counts {
	c := Counts{All: len(e.subs)}
	for _, s := range e.subs {
		if s.IsSelected() {
			c.Selected++
		} else {
			c.New++
		}
	}
	return c
}

// find returns the snapshot entry with the given id, or nil.
// Callers must hold e.mu.
func (e *Engine) find(id string) *model.Submission {
	for _, s := range e.subs {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// matches reports whether the lowercase query is a substring of any
// searchable field, including the mapped display labels.
func matches(s *model.Submission, query string) bool {
	for _, field := range []string{
		s.FullName,
		s.Location,
		s.DesignFocus,
		model.DesignFocusLabel(s.DesignFocus),
		s.Opportunities,
		model.OpportunitiesLabel(s.Opportunities),
		s.Email,
		s.Bio,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// sortKey extracts the comparison string for a sort field. Role and seeking
// sort on the raw form values, matching the column contents' source order.
func sortKey(s *model.Submission, field SortField) string {
	switch field {
	case FieldName:
		return s.FullName
	case FieldLocation:
		return s.Location
	case FieldRoleType:
		return s.DesignFocus
	case FieldSeeking:
		return s.Opportunities
	case FieldDate:
		return s.CreatedAt.Format(isoDate)
	}
	return ""
}

// summaryText renders the copy-and-close block: index, name, portfolio link,
// location and mapped labels per entry, one blank line between entries.
// The format is a contract with existing paste workflows; keep it stable.
func summaryText(subs []*model.Submission) string {
	parts := make([]string, 0, len(subs))
	for i, s := range subs {
		parts = append(parts, fmt.Sprintf("%d. %s\nPortfolio: %s\nLocation: %s\nFocus: %s\nSeeking: %s",
			i+1, s.FullName, s.PortfolioURL, s.Location,
			model.DesignFocusLabel(s.DesignFocus), model.OpportunitiesLabel(s.Opportunities)))
	}
	return strings.Join(parts, "\n\n")
}
