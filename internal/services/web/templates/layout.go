package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// PageContext carries per-request chrome data shared by every page.
type PageContext struct {
	// Lang is the resolved language tag rendered on the html element.
	Lang string
	// UserEmail identifies the signed-in operator in the header; empty
	// when unauthenticated.
	UserEmail string
	// ActivePath highlights the current navigation entry.
	ActivePath string
	// Banner is the environment/version label rendered in the footer.
	Banner string
	// Production switches off the non-production banner highlight.
	Production bool
}

// NavItem is one entry in the primary navigation.
type NavItem struct {
	Label string
	Path  string
}

// NavItems returns the primary navigation for the signed-in dashboard.
func NavItems(loc *message.Printer) []NavItem {
	return []NavItem{
		{Label: loc.Sprintf("title.dashboard"), Path: "/"},
		{Label: loc.Sprintf("title.contacts"), Path: "/contacts"},
		{Label: loc.Sprintf("title.interactions"), Path: "/interactions"},
		{Label: loc.Sprintf("title.followups"), Path: "/followups"},
		{Label: loc.Sprintf("title.sources"), Path: "/sources"},
		{Label: loc.Sprintf("title.entities"), Path: "/entities"},
		{Label: loc.Sprintf("title.ingestion"), Path: "/ingestion"},
		{Label: loc.Sprintf("title.runs"), Path: "/runs"},
		{Label: loc.Sprintf("title.feedback"), Path: "/feedback"},
	}
}

// Layout wraps content in the application shell: head, navigation, and
// the environment banner footer.
func Layout(title string, pageCtx PageContext, loc *message.Printer, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := pageCtx.Lang
		if lang == "" {
			lang = "en"
		}
		if err := writef(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
%s
<link rel="stylesheet" href="/static/app.css">
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
</head>
<body>
`, esc(lang), TitleTag(ComposePageTitle(title))); err != nil {
			return err
		}

		if err := renderHeader(w, pageCtx, loc); err != nil {
			return err
		}

		if err := write(w, "<main>\n"); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := write(w, "\n</main>\n"); err != nil {
			return err
		}

		bannerClass := "env-banner"
		if !pageCtx.Production {
			bannerClass = "env-banner env-banner-warn"
		}
		return writef(w, `<footer><span class="%s">%s</span></footer>
</body>
</html>
`, bannerClass, esc(pageCtx.Banner))
	})
}

func renderHeader(w io.Writer, pageCtx PageContext, loc *message.Printer) error {
	if err := writef(w, `<header><span class="brand">%s</span><nav>`, esc(AppName())); err != nil {
		return err
	}
	for _, item := range NavItems(loc) {
		class := ""
		if item.Path == pageCtx.ActivePath {
			class = ` class="active"`
		}
		if err := writef(w, `<a href="%s"%s>%s</a>`, esc(item.Path), class, esc(item.Label)); err != nil {
			return err
		}
	}
	if err := write(w, "</nav>"); err != nil {
		return err
	}
	if pageCtx.UserEmail != "" {
		if err := writef(w, `<span class="user">%s</span><a class="logout" href="/logout">&times;</a>`, esc(pageCtx.UserEmail)); err != nil {
			return err
		}
	}
	return write(w, "</header>\n")
}

// TitleTag formats an escaped title element, or nothing for a blank title.
func TitleTag(title string) string {
	if title == "" {
		return ""
	}
	return "<title>" + esc(title) + "</title>"
}
