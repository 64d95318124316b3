package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// ErrorPage renders a minimal error screen for not-found and internal
// failures.
func ErrorPage(messageKey string, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, `<section class="error-page"><h1>%s</h1><a href="/">%s</a></section>
`, esc(loc.Sprintf(messageKey)), esc(loc.Sprintf("title.dashboard")))
	})
}
