package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// LoginPage renders the email/password sign-in form. errorMessage, when
// non-empty, is shown above the form after a failed attempt.
func LoginPage(errorMessage string, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<section class="login"><h1>%s</h1>`, esc(loc.Sprintf("login.heading"))); err != nil {
			return err
		}
		if errorMessage != "" {
			if err := writef(w, `<p class="error">%s</p>`, esc(errorMessage)); err != nil {
				return err
			}
		}
		return writef(w, `<form method="post" action="/login">
<label>%s<input type="email" name="email" required autofocus></label>
<label>%s<input type="password" name="password" required></label>
<button type="submit">%s</button>
</form></section>
`, esc(loc.Sprintf("login.email")), esc(loc.Sprintf("login.password")), esc(loc.Sprintf("login.submit")))
	})
}

// UnauthorizedPage renders the terminal screen shown when sign-in
// succeeds at the provider but the account is not allowed in.
func UnauthorizedPage(loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, `<section class="unauthorized"><h1>%s</h1>
<p>%s</p>
<a href="/login">%s</a>
</section>
`, esc(loc.Sprintf("title.unauthorized")), esc(loc.Sprintf("error.unauthorized")), esc(loc.Sprintf("error.back_to_login")))
	})
}
