package listview

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"
)

type task struct {
	ID      int
	Status  string
	Due     *string
	Contact taskContact
}

type taskContact struct {
	Name string
}

func stringPtr(value string) *string {
	return &value
}

func taskFixture() []task {
	return []task{
		{ID: 1, Status: "done", Due: stringPtr("2024-01-02"), Contact: taskContact{Name: "Ada Lovelace"}},
		{ID: 2, Status: "pending", Due: nil, Contact: taskContact{Name: "Grace Hopper"}},
		{ID: 3, Status: "pending", Due: stringPtr("2024-01-01"), Contact: taskContact{Name: "Mary Shelley"}},
	}
}

func taskConfig(rows []task, fetchErr error) Config[task] {
	return Config[task]{
		Name: "tasks",
		Columns: []Column[task]{
			{Key: "id", Label: "column.id", Value: func(t task) Value { return Int(t.ID) }},
			{Key: "status", Label: "column.status", Value: func(t task) Value { return String(t.Status) }},
			{Key: "due", Label: "column.due", Value: func(t task) Value { return TimestampPtr(t.Due) }},
		},
		Searchable: []func(task) string{
			func(t task) string { return t.Status },
			func(t task) string { return t.Contact.Name },
		},
		Filters: []CategoryFilter[task]{
			{Key: "status", Label: "filter.status", Value: func(t task) string { return t.Status }, Options: []string{"done", "pending"}},
		},
		Fetch: func(context.Context) ([]task, error) {
			if fetchErr != nil {
				return nil, fetchErr
			}
			return rows, nil
		},
	}
}

func loadedController(t *testing.T, rows []task) *Controller[task] {
	t.Helper()
	c := New(taskConfig(rows, nil), language.English)
	c.Load(context.Background())
	if c.SnapshotSize() != len(rows) {
		t.Fatalf("SnapshotSize = %d, want %d", c.SnapshotSize(), len(rows))
	}
	return c
}

func ids(rows []task) []int {
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRowsPreserveFetchOrderWithoutSort(t *testing.T) {
	c := loadedController(t, taskFixture())
	if got := ids(c.Rows()); !equalInts(got, []int{1, 2, 3}) {
		t.Fatalf("Rows ids = %v, want [1 2 3]", got)
	}
}

func TestSortAscendingPutsNullLast(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSort("due")
	if got := ids(c.Rows()); !equalInts(got, []int{3, 1, 2}) {
		t.Fatalf("ascending by due = %v, want [3 1 2]", got)
	}
}

func TestSortDescendingKeepsNullLast(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSort("due")
	c.SetSort("due")
	column, direction := c.Sort()
	if column != "due" || direction != Descending {
		t.Fatalf("Sort = (%q, %v), want (due, Descending)", column, direction)
	}
	// Reversing the direction does not reverse the whole sequence: the
	// null due date stays last in both directions.
	if got := ids(c.Rows()); !equalInts(got, []int{1, 3, 2}) {
		t.Fatalf("descending by due = %v, want [1 3 2]", got)
	}
}

func TestSortNewColumnResetsToAscending(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSort("due")
	c.SetSort("due")
	c.SetSort("status")
	column, direction := c.Sort()
	if column != "status" || direction != Ascending {
		t.Fatalf("Sort = (%q, %v), want (status, Ascending)", column, direction)
	}
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSort("status")
	// Both pending records share a key; they keep fetch order 2 before 3.
	if got := ids(c.Rows()); !equalInts(got, []int{1, 2, 3}) {
		t.Fatalf("ascending by status = %v, want [1 2 3]", got)
	}
}

func TestCategoryFilterKeepsFetchOrder(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetCategoryFilter("status", "pending")
	if got := ids(c.Rows()); !equalInts(got, []int{2, 3}) {
		t.Fatalf("filter status=pending = %v, want [2 3]", got)
	}
}

func TestCategoryFilterEmptyValueClears(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetCategoryFilter("status", "pending")
	c.SetCategoryFilter("status", "")
	if got := ids(c.Rows()); !equalInts(got, []int{1, 2, 3}) {
		t.Fatalf("cleared filter = %v, want [1 2 3]", got)
	}
}

func TestFilteredRowsAreSubsetOfSnapshot(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSearch("pending")
	c.SetCategoryFilter("status", "pending")
	rows := c.Rows()
	if len(rows) > c.SnapshotSize() {
		t.Fatalf("derived %d rows from snapshot of %d", len(rows), c.SnapshotSize())
	}
	for _, row := range rows {
		if row.ID < 1 || row.ID > 3 {
			t.Fatalf("derived row %d not present in snapshot", row.ID)
		}
	}
}

func TestSearchMatchesNestedRelatedField(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSearch("lovelace")
	if got := ids(c.Rows()); !equalInts(got, []int{1}) {
		t.Fatalf("search nested contact name = %v, want [1]", got)
	}
}

func TestSearchIgnoresExcludedFields(t *testing.T) {
	rows := taskFixture()
	// The due date is not in the searchable set, so a date substring
	// must not match.
	c := loadedController(t, rows)
	c.SetSearch("2024-01-02")
	if got := ids(c.Rows()); len(got) != 0 {
		t.Fatalf("search over excluded field = %v, want []", got)
	}
}

func TestSearchIsCaseFolded(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSearch("PENDING")
	if got := ids(c.Rows()); !equalInts(got, []int{2, 3}) {
		t.Fatalf("case-folded search = %v, want [2 3]", got)
	}
}

func TestClearFiltersRestoresFullSortedSnapshot(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSearch("pending")
	c.SetCategoryFilter("status", "pending")
	c.SetSort("due")
	c.ClearFilters()
	column, direction := c.Sort()
	if column != "due" || direction != Ascending {
		t.Fatalf("Sort after ClearFilters = (%q, %v), want (due, Ascending)", column, direction)
	}
	if got := ids(c.Rows()); !equalInts(got, []int{3, 1, 2}) {
		t.Fatalf("Rows after ClearFilters = %v, want [3 1 2]", got)
	}
}

func TestLoadFailureDegradesToEmptySnapshot(t *testing.T) {
	c := New(taskConfig(nil, errors.New("backend unavailable")), language.English)
	c.Load(context.Background())
	if c.SnapshotSize() != 0 {
		t.Fatalf("SnapshotSize after failed load = %d, want 0", c.SnapshotSize())
	}
	// Filtering and sorting still operate over the empty snapshot.
	c.SetSearch("pending")
	c.SetSort("due")
	if got := c.Rows(); len(got) != 0 {
		t.Fatalf("Rows after failed load = %v, want []", got)
	}
}

func TestRowsDoNotMutateSnapshotOrder(t *testing.T) {
	c := loadedController(t, taskFixture())
	c.SetSort("due")
	_ = c.Rows()
	c.SetSort("due")
	_ = c.Rows()
	c.ClearFilters()
	c.SetSort("id")
	c.SetSort("id")
	c.SetSort("id")
	// Back to ascending by id, which matches fetch order only if the
	// snapshot itself was never reordered.
	if got := ids(c.Rows()); !equalInts(got, []int{1, 2, 3}) {
		t.Fatalf("snapshot order disturbed: %v", got)
	}
}

func TestCompareMixedTypesTreatedAsEqual(t *testing.T) {
	c := New(taskConfig(nil, nil), language.English)
	if got := c.compare(String("a"), Number(1)); got != 0 {
		t.Fatalf("compare(string, number) = %d, want 0", got)
	}
	if got := c.compare(Bool(true), Bool(false)); got != 0 {
		t.Fatalf("compare(bool, bool) = %d, want 0", got)
	}
}

func TestCompareNullsBeforeDirectionInversion(t *testing.T) {
	c := New(taskConfig(nil, nil), language.English)
	c.SetSort("due")
	c.SetSort("due")
	if _, direction := c.Sort(); direction != Descending {
		t.Fatalf("direction = %v, want Descending", direction)
	}
	if got := c.compare(Null(), String("a")); got != 1 {
		t.Fatalf("compare(null, value) descending = %d, want 1", got)
	}
	if got := c.compare(String("a"), Null()); got != -1 {
		t.Fatalf("compare(value, null) descending = %d, want -1", got)
	}
}
