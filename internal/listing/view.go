package listing

// SortField identifies a sortable column of the submission table.
type SortField string

const (
	FieldNone     SortField = ""
	FieldName     SortField = "name"
	FieldLocation SortField = "location"
	FieldRoleType SortField = "role_type"
	FieldSeeking  SortField = "seeking"
	FieldDate     SortField = "submission_date"
)

// SortDir is the sort direction. DirNone means "keep store order"
// (creation time descending, as delivered by FetchAll).
type SortDir string

const (
	DirNone SortDir = ""
	DirAsc  SortDir = "asc"
	DirDesc SortDir = "desc"
)

// Tab partitions submissions on selected_date presence.
type Tab string

const (
	TabNew      Tab = "new"
	TabSelected Tab = "selected"
	TabAll      Tab = "all"
)

// PageSize is the fixed number of rows per page.
const PageSize = 25

// View carries the user-controlled parameters that determine the visible
// page of submissions.
type View struct {
	Search    string
	SortField SortField
	SortDir   SortDir
	Tab       Tab
	Page      int
}

// NextSort returns the sort state after a click on a column header.
// Clicking the active column cycles asc -> desc -> none; clicking a
// different column starts over ascending on that column.
func NextSort(field SortField, dir SortDir, clicked SortField) (SortField, SortDir) {
	if field != clicked {
		return clicked, DirAsc
	}
	switch dir {
	case DirAsc:
		return clicked, DirDesc
	case DirDesc:
		return FieldNone, DirNone
	default:
		return clicked, DirAsc
	}
}

// ValidSortField reports whether s names a sortable column.
func ValidSortField(s SortField) bool {
	switch s {
	case FieldName, FieldLocation, FieldRoleType, FieldSeeking, FieldDate:
		return true
	}
	return false
}
