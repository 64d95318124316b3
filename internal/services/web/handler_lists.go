package web

import (
	"net/http"
	"net/url"

	"golang.org/x/text/message"

	"github.com/relaydesk/opsdash/internal/backend/records"
	"github.com/relaydesk/opsdash/internal/listview"
	"github.com/relaydesk/opsdash/internal/services/web/htmx"
	"github.com/relaydesk/opsdash/internal/services/web/templates"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		env := s.pageSetup(w, r)
		title := env.loc.Sprintf("error.not_found")
		content := templates.ErrorPage("error.not_found", env.loc)
		w.WriteHeader(http.StatusNotFound)
		htmx.RenderPage(w, r, content, templates.Layout(title, env.pageCtx, env.loc, content), title)
		return
	}

	env := s.pageSetup(w, r)
	title := env.loc.Sprintf("title.dashboard")
	content := templates.HomePage(env.loc)
	htmx.RenderPage(w, r, content, templates.Layout(title, env.pageCtx, env.loc, content), title)
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	config := listview.Config[records.Contact]{
		Name: "contacts",
		Columns: []listview.Column[records.Contact]{
			{Key: "name", Label: "column.name", Value: func(c records.Contact) listview.Value { return listview.String(c.FullName) }},
			{Key: "email", Label: "column.email", Value: func(c records.Contact) listview.Value { return listview.StringPtr(c.Email) }},
			{Key: "phone", Label: "column.phone", Value: func(c records.Contact) listview.Value { return listview.StringPtr(c.Phone) }},
			{Key: "company", Label: "column.company", Value: func(c records.Contact) listview.Value { return listview.StringPtr(c.Company) }},
			{Key: "status", Label: "column.status", Value: func(c records.Contact) listview.Value { return listview.String(c.Status) }},
			{Key: "created", Label: "column.created", Value: func(c records.Contact) listview.Value { return listview.Timestamp(c.CreatedAt) }},
		},
		Searchable: []func(records.Contact) string{
			func(c records.Contact) string { return c.FullName },
			func(c records.Contact) string { return deref(c.Email) },
			func(c records.Contact) string { return deref(c.Company) },
		},
		Filters: []listview.CategoryFilter[records.Contact]{{
			Key:     "status",
			Label:   "filter.status",
			Value:   func(c records.Contact) string { return c.Status },
			Options: []string{"active", "archived", "prospect"},
		}},
		Fetch: s.records.ListContacts,
	}
	renderList(s, w, r, "/contacts", "title.contacts", config)
}

func (s *Server) handleInteractions(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.Interaction]{
		Name: "interactions",
		Columns: []listview.Column[records.Interaction]{
			{Key: "contact", Label: "column.contact", Value: func(i records.Interaction) listview.Value { return listview.String(i.Contact.FullName) }},
			{Key: "channel", Label: "column.channel", Value: func(i records.Interaction) listview.Value { return listview.String(i.Channel) }},
			{Key: "summary", Label: "column.summary", Value: func(i records.Interaction) listview.Value { return listview.String(i.Summary) }},
			{Key: "sentiment", Label: "column.sentiment", Value: func(i records.Interaction) listview.Value { return listview.StringPtr(i.Sentiment) }},
			{Key: "occurred", Label: "column.occurred", Value: func(i records.Interaction) listview.Value { return listview.Timestamp(i.OccurredAt) }},
		},
		Searchable: []func(records.Interaction) string{
			func(i records.Interaction) string { return i.Summary },
			func(i records.Interaction) string { return i.Contact.FullName },
		},
		Filters: []listview.CategoryFilter[records.Interaction]{{
			Key:     "channel",
			Label:   "filter.channel",
			Value:   func(i records.Interaction) string { return i.Channel },
			Options: []string{"email", "call", "chat", "meeting"},
		}},
		Fetch: s.records.ListInteractions,
	}
	renderList(s, w, r, "/interactions", "title.interactions", config)
}

func (s *Server) handleFollowUps(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.FollowUp]{
		Name: "followups",
		Columns: []listview.Column[records.FollowUp]{
			{Key: "contact", Label: "column.contact", Value: func(f records.FollowUp) listview.Value { return listview.String(f.Contact.FullName) }},
			{Key: "note", Label: "column.note", Value: func(f records.FollowUp) listview.Value { return listview.String(f.Note) }},
			{Key: "status", Label: "column.status", Value: func(f records.FollowUp) listview.Value { return listview.String(f.Status) }},
			{Key: "due", Label: "column.due", Value: func(f records.FollowUp) listview.Value { return listview.TimestampPtr(f.DueAt) }},
			{Key: "created", Label: "column.created", Value: func(f records.FollowUp) listview.Value { return listview.Timestamp(f.CreatedAt) }},
		},
		Searchable: []func(records.FollowUp) string{
			func(f records.FollowUp) string { return f.Note },
			func(f records.FollowUp) string { return f.Contact.FullName },
		},
		Filters: []listview.CategoryFilter[records.FollowUp]{{
			Key:     "status",
			Label:   "filter.status",
			Value:   func(f records.FollowUp) string { return f.Status },
			Options: []string{"open", "done", "snoozed"},
		}},
		Fetch: s.records.ListFollowUps,
	}
	renderList(s, w, r, "/followups", "title.followups", config)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.Source]{
		Name: "sources",
		Columns: []listview.Column[records.Source]{
			{Key: "title", Label: "column.title", Value: func(src records.Source) listview.Value { return listview.String(src.Title) }},
			{Key: "kind", Label: "column.kind", Value: func(src records.Source) listview.Value { return listview.String(src.Kind) }},
			{Key: "url", Label: "column.url", Value: func(src records.Source) listview.Value { return listview.StringPtr(src.URL) }},
			{Key: "status", Label: "column.status", Value: func(src records.Source) listview.Value { return listview.String(src.Status) }},
			{Key: "added", Label: "column.added", Value: func(src records.Source) listview.Value { return listview.Timestamp(src.AddedAt) }},
		},
		Searchable: []func(records.Source) string{
			func(src records.Source) string { return src.Title },
		},
		Filters: []listview.CategoryFilter[records.Source]{{
			Key:     "kind",
			Label:   "filter.kind",
			Value:   func(src records.Source) string { return src.Kind },
			Options: []string{"document", "url", "note"},
		}},
		Fetch: s.records.ListSources,
	}
	renderList(s, w, r, "/sources", "title.sources", config)
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.Entity]{
		Name: "entities",
		Columns: []listview.Column[records.Entity]{
			{Key: "name", Label: "column.name", Value: func(e records.Entity) listview.Value { return listview.String(e.Name) }},
			{Key: "category", Label: "column.category", Value: func(e records.Entity) listview.Value { return listview.String(e.Category) }},
			{Key: "source", Label: "column.source", Value: func(e records.Entity) listview.Value { return listview.String(e.Source.Title) }},
			{Key: "mentions", Label: "column.mentions", Value: func(e records.Entity) listview.Value { return listview.Int(e.MentionCount) }},
			{Key: "updated", Label: "column.updated", Value: func(e records.Entity) listview.Value { return listview.TimestampPtr(e.UpdatedAt) }},
		},
		Searchable: []func(records.Entity) string{
			func(e records.Entity) string { return e.Name },
			func(e records.Entity) string { return e.Source.Title },
		},
		Filters: []listview.CategoryFilter[records.Entity]{{
			Key:     "category",
			Label:   "filter.category",
			Value:   func(e records.Entity) string { return e.Category },
			Options: []string{"person", "organization", "product", "location"},
		}},
		Fetch: s.records.ListEntities,
	}
	renderList(s, w, r, "/entities", "title.entities", config)
}

func (s *Server) handleIngestion(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.IngestionItem]{
		Name: "ingestion",
		Columns: []listview.Column[records.IngestionItem]{
			{Key: "file", Label: "column.file", Value: func(i records.IngestionItem) listview.Value { return listview.String(i.FileName) }},
			{Key: "mime", Label: "column.mime", Value: func(i records.IngestionItem) listview.Value { return listview.StringPtr(i.MimeType) }},
			{Key: "status", Label: "column.status", Value: func(i records.IngestionItem) listview.Value { return listview.String(i.Status) }},
			{Key: "submitted", Label: "column.submitted", Value: func(i records.IngestionItem) listview.Value { return listview.Timestamp(i.SubmittedAt) }},
			{Key: "processed", Label: "column.processed", Value: func(i records.IngestionItem) listview.Value { return listview.TimestampPtr(i.ProcessedAt) }},
		},
		Searchable: []func(records.IngestionItem) string{
			func(i records.IngestionItem) string { return i.FileName },
		},
		Filters: []listview.CategoryFilter[records.IngestionItem]{{
			Key:     "status",
			Label:   "filter.status",
			Value:   func(i records.IngestionItem) string { return i.Status },
			Options: []string{"queued", "processing", "done", "failed"},
		}},
		Fetch: s.records.ListIngestionQueue,
	}
	renderList(s, w, r, "/ingestion", "title.ingestion", config)
}

func (s *Server) handleAnalysisRuns(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.AnalysisRun]{
		Name: "runs",
		Columns: []listview.Column[records.AnalysisRun]{
			{Key: "kind", Label: "column.kind", Value: func(a records.AnalysisRun) listview.Value { return listview.String(a.Kind) }},
			{Key: "status", Label: "column.status", Value: func(a records.AnalysisRun) listview.Value { return listview.String(a.Status) }},
			{Key: "items", Label: "column.items", Value: func(a records.AnalysisRun) listview.Value { return listview.Int(a.ItemCount) }},
			{Key: "triggered", Label: "column.triggered", Value: func(a records.AnalysisRun) listview.Value { return listview.StringPtr(a.TriggeredBy) }},
			{Key: "started", Label: "column.started", Value: func(a records.AnalysisRun) listview.Value { return listview.Timestamp(a.StartedAt) }},
			{Key: "finished", Label: "column.finished", Value: func(a records.AnalysisRun) listview.Value { return listview.TimestampPtr(a.FinishedAt) }},
		},
		Searchable: []func(records.AnalysisRun) string{
			func(a records.AnalysisRun) string { return a.Kind },
		},
		Filters: []listview.CategoryFilter[records.AnalysisRun]{{
			Key:     "status",
			Label:   "filter.status",
			Value:   func(a records.AnalysisRun) string { return a.Status },
			Options: []string{"running", "succeeded", "failed"},
		}},
		Fetch: s.records.ListAnalysisRuns,
	}
	renderList(s, w, r, "/runs", "title.runs", config)
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	config := listview.Config[records.FeedbackEvent]{
		Name: "feedback",
		Columns: []listview.Column[records.FeedbackEvent]{
			{Key: "subject", Label: "column.subject", Value: func(f records.FeedbackEvent) listview.Value { return listview.String(f.Subject) }},
			{Key: "verdict", Label: "column.verdict", Value: func(f records.FeedbackEvent) listview.Value { return listview.String(f.Verdict) }},
			{Key: "comment", Label: "column.comment", Value: func(f records.FeedbackEvent) listview.Value { return listview.StringPtr(f.Comment) }},
			{Key: "author", Label: "column.author", Value: func(f records.FeedbackEvent) listview.Value { return listview.StringPtr(f.SubmittedBy) }},
			{Key: "created", Label: "column.created", Value: func(f records.FeedbackEvent) listview.Value { return listview.Timestamp(f.CreatedAt) }},
		},
		Searchable: []func(records.FeedbackEvent) string{
			func(f records.FeedbackEvent) string { return f.Subject },
		},
		Filters: []listview.CategoryFilter[records.FeedbackEvent]{{
			Key:     "verdict",
			Label:   "filter.verdict",
			Value:   func(f records.FeedbackEvent) string { return f.Verdict },
			Options: []string{"helpful", "incorrect", "outdated"},
		}},
		Fetch: s.records.ListFeedbackEvents,
	}
	renderList(s, w, r, "/feedback", "title.feedback", config)
}

// renderList runs the shared list-page pipeline: build the controller,
// load the snapshot once, replay the request's search/filter/sort state,
// and render the derived rows.
func renderList[T any](s *Server, w http.ResponseWriter, r *http.Request, basePath, titleKey string, config listview.Config[T]) {
	env := s.pageSetup(w, r)
	loc := env.loc

	controller := listview.New(config, env.tag)
	controller.Load(r.Context())
	replayState(controller, r.URL.Query(), config)

	view := buildListView(controller, basePath, titleKey, loc)

	title := loc.Sprintf(titleKey)
	fragment := templates.ListTable(view, loc)
	full := templates.Layout(title, env.pageCtx, loc, templates.ListPage(view, loc))
	htmx.RenderPage(w, r, fragment, full, title)
}

// replayState restores controller state from query parameters. The sort
// toggle runs once for ascending and twice for descending so link URLs
// and direct visits land in the same state.
func replayState[T any](controller *listview.Controller[T], query url.Values, config listview.Config[T]) {
	controller.SetSearch(query.Get("q"))

	for _, filter := range config.Filters {
		if value := query.Get(filter.Key); value != "" {
			controller.SetCategoryFilter(filter.Key, value)
			break
		}
	}

	if sortKey := query.Get("sort"); sortKey != "" {
		controller.SetSort(sortKey)
		if query.Get("dir") == "desc" {
			controller.SetSort(sortKey)
		}
	}
}

func buildListView[T any](controller *listview.Controller[T], basePath, titleKey string, loc *message.Printer) templates.ListPageView {
	sortColumn, direction := controller.Sort()
	descending := direction == listview.Descending
	search := controller.Search()
	filterField, filterValue := controller.CategoryFilter()

	view := templates.ListPageView{
		TitleKey:       titleKey,
		BasePath:       basePath,
		Search:         search,
		SortColumn:     sortColumn,
		SortDescending: descending,
		ClearURL:       clearFiltersURL(basePath, sortColumn, descending),
	}

	for _, column := range controller.Columns() {
		active := column.Key == sortColumn
		view.Columns = append(view.Columns, templates.ListColumn{
			Label:      loc.Sprintf(column.Label),
			SortURL:    sortURL(basePath, column.Key, active, descending, search, filterField, filterValue),
			Active:     active,
			Descending: active && descending,
		})
	}

	for _, filter := range controller.Filters() {
		control := templates.ListFilter{Key: filter.Key, Label: loc.Sprintf(filter.Label)}
		for _, option := range filter.Options {
			control.Options = append(control.Options, templates.FilterOption{
				Value:    option,
				Selected: filter.Key == filterField && option == filterValue,
			})
		}
		view.Filters = append(view.Filters, control)
	}

	for _, record := range controller.Rows() {
		cells := make([]string, 0, len(controller.Columns()))
		for _, column := range controller.Columns() {
			cells = append(cells, column.Value(record).Display())
		}
		view.Rows = append(view.Rows, cells)
	}
	return view
}

// sortURL builds the link for a column header: clicking the active column
// flips the direction, clicking any other column starts ascending.
func sortURL(basePath, columnKey string, active, descending bool, search, filterField, filterValue string) string {
	dir := "asc"
	if active && !descending {
		dir = "desc"
	}

	query := url.Values{}
	query.Set("sort", columnKey)
	query.Set("dir", dir)
	if search != "" {
		query.Set("q", search)
	}
	if filterField != "" && filterValue != "" {
		query.Set(filterField, filterValue)
	}
	return basePath + "?" + query.Encode()
}

// clearFiltersURL drops search and filter parameters but keeps sort state.
func clearFiltersURL(basePath, sortColumn string, descending bool) string {
	if sortColumn == "" {
		return basePath
	}
	query := url.Values{}
	query.Set("sort", sortColumn)
	if descending {
		query.Set("dir", "desc")
	} else {
		query.Set("dir", "asc")
	}
	return basePath + "?" + query.Encode()
}
