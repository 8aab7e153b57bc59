// Package query translates a file listing request (view, folder, search, sort)
// into the filter and ordering contract applied by the files repository.
// It is pure and does no I/O, so the whole filtering policy is testable
// without a database.
package query

import (
	"fmt"
	"strings"
)

// View selects one of the predefined file listings.
type View string

const (
	ViewAll       View = "all"
	ViewFavorites View = "favorites"
	ViewTrash     View = "trash"
)

// Sort selects the ordering field. All orderings are descending: reverse
// lexicographic for name, largest first for size, newest first for
// uploaded_at. This matches the shipped product behavior and is a fixed
// contract, not an oversight.
type Sort string

const (
	SortName       Sort = "name"
	SortSize       Sort = "size"
	SortUploadedAt Sort = "uploaded_at"
)

// Criteria is the resolved filter applied on top of the owner scope.
// Exactly one of the predicate branches is active; see Resolve.
type Criteria struct {
	// Search, when non-empty, is a case-insensitive substring match against
	// the file name. It overrides every other predicate including trash
	// state and folder scoping.
	Search string

	// FolderID scopes the listing to a single folder when non-nil.
	FolderID *string

	// FavoritesOnly restricts to favorite files across all folders.
	FavoritesOnly bool

	// TrashedOnly restricts to trashed files; when false (and Search is
	// empty) trashed files are excluded.
	TrashedOnly bool

	Sort Sort
}

// Resolve maps request parameters to a Criteria. Precedence follows the
// original product: search first, then the named view, then an explicit
// folder, then the root listing. Unknown views and sorts fall back to the
// defaults.
func Resolve(view View, folderID *string, search string, sort Sort) Criteria {
	c := Criteria{Sort: sort}
	switch sort {
	case SortName, SortSize, SortUploadedAt:
	default:
		c.Sort = SortUploadedAt
	}

	switch {
	case search != "":
		c.Search = search
	case view == ViewFavorites:
		c.FavoritesOnly = true
	case view == ViewTrash:
		c.TrashedOnly = true
	case folderID != nil:
		c.FolderID = folderID
	}
	return c
}

// Where renders the criteria as a SQL predicate with placeholders starting
// at $next, returning the clause and its arguments. The owner scope is the
// caller's concern and is not included here.
func (c Criteria) Where(next int) (string, []any) {
	switch {
	case c.Search != "":
		return fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", next), []any{c.Search}
	case c.FavoritesOnly:
		return "is_favorite AND NOT is_trashed", nil
	case c.TrashedOnly:
		return "is_trashed", nil
	case c.FolderID != nil:
		return fmt.Sprintf("folder_id = $%d AND NOT is_trashed", next), []any{*c.FolderID}
	default:
		return "folder_id IS NULL AND NOT is_trashed", nil
	}
}

// OrderBy renders the ORDER BY expression for the criteria's sort field.
func (c Criteria) OrderBy() string {
	col := "uploaded_at"
	switch c.Sort {
	case SortName:
		col = "name"
	case SortSize:
		col = "size"
	}
	return col + " DESC"
}

// String is a compact debug rendering used in log lines.
func (c Criteria) String() string {
	var parts []string
	if c.Search != "" {
		parts = append(parts, "search="+c.Search)
	}
	if c.FavoritesOnly {
		parts = append(parts, "favorites")
	}
	if c.TrashedOnly {
		parts = append(parts, "trash")
	}
	if c.FolderID != nil {
		parts = append(parts, "folder="+*c.FolderID)
	}
	if len(parts) == 0 {
		parts = append(parts, "root")
	}
	parts = append(parts, "sort="+string(c.Sort))
	return strings.Join(parts, " ")
}
