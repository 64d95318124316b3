package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// HomePage renders the dashboard landing page with one card per view.
func HomePage(loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<section class="home"><h1>%s</h1><p>%s</p><div class="cards">`,
			esc(loc.Sprintf("title.dashboard")), esc(loc.Sprintf("dashboard.welcome"))); err != nil {
			return err
		}
		for _, item := range NavItems(loc) {
			if item.Path == "/" {
				continue
			}
			if err := writef(w, `<a class="card" href="%s">%s</a>`, esc(item.Path), esc(item.Label)); err != nil {
				return err
			}
		}
		return write(w, "</div></section>\n")
	})
}
