// Package listview presents a fetched record set as a searchable,
// filterable, sortable table.
//
// Every list page in the dashboard wires the same controller with its own
// column configuration. The controller fetches the full result set once,
// keeps it as an immutable snapshot, and re-derives the displayed rows from
// the snapshot plus the current search/filter/sort state. Derivation is
// pure: it never issues further backend calls and never mutates the
// snapshot.
package listview

import (
	"context"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction orders a sorted column.
type Direction int

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first. Nulls still sort last.
	Descending
)

// Column describes one table column: a stable key for sort links, a label
// localization key, and a getter producing the cell value for a record.
type Column[T any] struct {
	// Key identifies the column in sort state and query parameters.
	Key string
	// Label is the localization key for the column header.
	Label string
	// Value extracts the cell value from a record.
	Value func(T) Value
}

// CategoryFilter describes one exact-match filter over an enumerated field.
type CategoryFilter[T any] struct {
	// Key identifies the filter field in query parameters.
	Key string
	// Label is the localization key for the filter control.
	Label string
	// Value extracts the categorical field from a record.
	Value func(T) string
	// Options enumerates the selectable values rendered in the filter
	// control.
	Options []string
}

// Config wires a concrete page into the generic controller. Column
// definitions, searchable fields, and filter fields are data, not code.
type Config[T any] struct {
	// Name labels the view in diagnostics.
	Name string
	// Columns defines the table layout.
	Columns []Column[T]
	// Searchable lists the getters probed by free-text search. Getters may
	// reach into nested related fields that are not rendered as columns.
	Searchable []func(T) string
	// Filters lists the categorical filter fields for the view.
	Filters []CategoryFilter[T]
	// Fetch issues the view's single fixed query.
	Fetch func(context.Context) ([]T, error)
}

// Controller holds one view's snapshot and its current search, filter, and
// sort state. It is request-scoped: each page render builds a controller,
// loads once, replays the requested state, and derives the rows.
type Controller[T any] struct {
	config   Config[T]
	collator *collate.Collator

	snapshot []T

	search      string
	filterField string
	filterValue string
	sortColumn  string
	direction   Direction
}

// New builds a controller for a view configuration. The language tag
// selects the collation used for locale-aware string comparison.
func New[T any](config Config[T], tag language.Tag) *Controller[T] {
	return &Controller[T]{
		config:   config,
		collator: collate.New(tag),
	}
}

// Load issues the view's single fetch and stores the result verbatim as
// the snapshot. A fetch failure is logged and degrades to an empty
// snapshot; it is not surfaced to the caller and is never retried.
// Filtering and sorting keep operating over whatever snapshot is held.
func (c *Controller[T]) Load(ctx context.Context) {
	if c.config.Fetch == nil {
		c.snapshot = nil
		return
	}
	rows, err := c.config.Fetch(ctx)
	if err != nil {
		log.Printf("load %s: %v", c.config.Name, err)
		c.snapshot = nil
		return
	}
	c.snapshot = rows
}

// SetSearch updates the free-text query string.
func (c *Controller[T]) SetSearch(text string) {
	c.search = strings.TrimSpace(text)
}

// SetCategoryFilter sets an exact-match filter on one categorical field.
// An empty value clears the filter.
func (c *Controller[T]) SetCategoryFilter(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.filterField = ""
		c.filterValue = ""
		return
	}
	c.filterField = field
	c.filterValue = value
}

// SetSort selects the active sort column. Selecting the active column
// again toggles the direction; a new column starts ascending.
func (c *Controller[T]) SetSort(column string) {
	if column == "" {
		return
	}
	if column == c.sortColumn {
		if c.direction == Ascending {
			c.direction = Descending
		} else {
			c.direction = Ascending
		}
		return
	}
	c.sortColumn = column
	c.direction = Ascending
}

// ClearFilters resets the search string and the categorical filter. Sort
// state is untouched.
func (c *Controller[T]) ClearFilters() {
	c.search = ""
	c.filterField = ""
	c.filterValue = ""
}

// Search returns the current free-text query.
func (c *Controller[T]) Search() string {
	return c.search
}

// CategoryFilter returns the current categorical filter field and value.
func (c *Controller[T]) CategoryFilter() (field, value string) {
	return c.filterField, c.filterValue
}

// Sort returns the active sort column and direction. The column is empty
// when fetch order is preserved.
func (c *Controller[T]) Sort() (column string, direction Direction) {
	return c.sortColumn, c.direction
}

// SnapshotSize returns the number of records held before derivation.
func (c *Controller[T]) SnapshotSize() int {
	return len(c.snapshot)
}

// Columns returns the view's column definitions.
func (c *Controller[T]) Columns() []Column[T] {
	return c.config.Columns
}

// Filters returns the view's categorical filter definitions.
func (c *Controller[T]) Filters() []CategoryFilter[T] {
	return c.config.Filters
}

// Rows derives the displayed sequence from the snapshot and the current
// state: free-text search, then categorical filter, then stable sort.
// The result is always a fresh slice; the snapshot is never reordered.
func (c *Controller[T]) Rows() []T {
	rows := make([]T, 0, len(c.snapshot))

	search := strings.ToLower(c.search)
	filter := c.filterByKey(c.filterField)
	for _, record := range c.snapshot {
		if search != "" && !c.matchesSearch(record, search) {
			continue
		}
		if filter != nil && filter.Value(record) != c.filterValue {
			continue
		}
		rows = append(rows, record)
	}

	column := c.columnByKey(c.sortColumn)
	if column == nil {
		return rows
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return c.compare(column.Value(rows[i]), column.Value(rows[j])) < 0
	})
	return rows
}

func (c *Controller[T]) matchesSearch(record T, foldedSearch string) bool {
	for _, field := range c.config.Searchable {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(field(record)), foldedSearch) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) columnByKey(key string) *Column[T] {
	if key == "" {
		return nil
	}
	for i := range c.config.Columns {
		if c.config.Columns[i].Key == key {
			return &c.config.Columns[i]
		}
	}
	return nil
}

func (c *Controller[T]) filterByKey(key string) *CategoryFilter[T] {
	if key == "" {
		return nil
	}
	for i := range c.config.Filters {
		if c.config.Filters[i].Key == key {
			return &c.config.Filters[i]
		}
	}
	return nil
}

// compare orders two cell values. The null placement rule runs before the
// direction inversion, so nulls sort last in both ascending and descending
// order. Mixed or unsupported pairs compare equal, which keeps their fetch
// order under the stable sort.
func (c *Controller[T]) compare(a, b Value) int {
	if a.IsNull() && b.IsNull() {
		return 0
	}
	if a.IsNull() {
		return 1
	}
	if b.IsNull() {
		return -1
	}

	result := 0
	switch {
	case a.kind == KindNumber && b.kind == KindNumber:
		switch {
		case a.num < b.num:
			result = -1
		case a.num > b.num:
			result = 1
		}
	case a.kind == KindString && b.kind == KindString:
		result = c.collator.CompareString(a.str, b.str)
	case a.kind == KindTime && b.kind == KindTime:
		switch {
		case a.ts.Before(b.ts):
			result = -1
		case a.ts.After(b.ts):
			result = 1
		}
	}

	if c.direction == Descending {
		result = -result
	}
	return result
}
