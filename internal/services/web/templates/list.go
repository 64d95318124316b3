package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// ListColumn is one table header cell with its sort link.
type ListColumn struct {
	// Label is the localized header text.
	Label string
	// SortURL toggles or selects this column's sort when followed.
	SortURL string
	// Active marks the currently sorted column.
	Active bool
	// Descending reports the active direction for the indicator.
	Descending bool
}

// FilterOption is one selectable value in a categorical filter.
type FilterOption struct {
	Value    string
	Selected bool
}

// ListFilter is one categorical filter control.
type ListFilter struct {
	// Key is the query parameter name.
	Key string
	// Label is the localized control label.
	Label string
	// Options enumerates the selectable values.
	Options []FilterOption
}

// ListPageView provides data for a generic list page.
type ListPageView struct {
	// TitleKey localizes the page heading.
	TitleKey string
	// BasePath is the page route used by the search form and links.
	BasePath string
	// Search is the current free-text query.
	Search string
	// SortColumn and SortDescending echo sort state into the form so a
	// new search keeps the current ordering.
	SortColumn     string
	SortDescending bool
	// Columns defines the table header.
	Columns []ListColumn
	// Filters defines the categorical filter controls.
	Filters []ListFilter
	// Rows holds preformatted display cells, one slice per record.
	Rows [][]string
	// ClearURL resets the filters while keeping sort state.
	ClearURL string
}

// ListPage renders the heading, the filter bar, and the table region.
func ListPage(view ListPageView, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<section class="list-page"><h1>%s</h1>`, esc(loc.Sprintf(view.TitleKey))); err != nil {
			return err
		}
		if err := renderFilterBar(w, view, loc); err != nil {
			return err
		}
		if err := ListTable(view, loc).Render(ctx, w); err != nil {
			return err
		}
		return write(w, "</section>\n")
	})
}

// ListTable renders the table region only. HTMX requests swap this
// fragment in place.
func ListTable(view ListPageView, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := write(w, `<div id="list-region">`); err != nil {
			return err
		}
		if len(view.Rows) == 0 {
			if err := writef(w, `<p class="empty">%s</p></div>`, esc(loc.Sprintf("list.empty"))); err != nil {
				return err
			}
			return nil
		}

		if err := write(w, "<table><thead><tr>"); err != nil {
			return err
		}
		for _, column := range view.Columns {
			indicator := ""
			if column.Active {
				if column.Descending {
					indicator = " &darr;"
				} else {
					indicator = " &uarr;"
				}
			}
			if err := writef(w, `<th><a href="%s" hx-get="%s" hx-target="#list-region" hx-swap="outerHTML">%s%s</a></th>`,
				esc(column.SortURL), esc(column.SortURL), esc(column.Label), indicator); err != nil {
				return err
			}
		}
		if err := write(w, "</tr></thead><tbody>"); err != nil {
			return err
		}
		for _, row := range view.Rows {
			if err := write(w, "<tr>"); err != nil {
				return err
			}
			for _, cell := range row {
				if err := writef(w, "<td>%s</td>", esc(cell)); err != nil {
					return err
				}
			}
			if err := write(w, "</tr>"); err != nil {
				return err
			}
		}
		if err := writef(w, `</tbody></table><p class="count">%s</p></div>`, esc(strconv.Itoa(len(view.Rows)))); err != nil {
			return err
		}
		return nil
	})
}

func renderFilterBar(w io.Writer, view ListPageView, loc *message.Printer) error {
	if err := writef(w, `<form class="filter-bar" method="get" action="%s" hx-get="%s" hx-target="#list-region" hx-swap="outerHTML">`,
		esc(view.BasePath), esc(view.BasePath)); err != nil {
		return err
	}
	if err := writef(w, `<input type="search" name="q" value="%s" placeholder="%s" hx-trigger="keyup changed delay:300ms" hx-get="%s" hx-target="#list-region" hx-swap="outerHTML">`,
		esc(view.Search), esc(loc.Sprintf("list.search_placeholder")), esc(view.BasePath)); err != nil {
		return err
	}
	for _, filter := range view.Filters {
		if err := writef(w, `<label>%s<select name="%s" hx-trigger="change">`, esc(filter.Label), esc(filter.Key)); err != nil {
			return err
		}
		if err := writef(w, `<option value="">%s</option>`, esc(loc.Sprintf("filter.all"))); err != nil {
			return err
		}
		for _, option := range filter.Options {
			selected := ""
			if option.Selected {
				selected = " selected"
			}
			if err := writef(w, `<option value="%s"%s>%s</option>`, esc(option.Value), selected, esc(option.Value)); err != nil {
				return err
			}
		}
		if err := write(w, "</select></label>"); err != nil {
			return err
		}
	}
	if view.SortColumn != "" {
		direction := "asc"
		if view.SortDescending {
			direction = "desc"
		}
		if err := writef(w, `<input type="hidden" name="sort" value="%s"><input type="hidden" name="dir" value="%s">`,
			esc(view.SortColumn), direction); err != nil {
			return err
		}
	}
	if err := writef(w, `<button type="submit">%s</button>`, esc(loc.Sprintf("list.search"))); err != nil {
		return err
	}
	if err := writef(w, `<a class="clear" href="%s">%s</a>`, esc(view.ClearURL), esc(loc.Sprintf("list.clear_filters"))); err != nil {
		return err
	}
	return write(w, "</form>\n")
}
