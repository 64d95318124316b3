// Package templates renders the dashboard's HTML as templ components.
// Components are plain Go: view structs carry preformatted display data
// and the component functions write escaped markup.
package templates

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/relaydesk/opsdash/internal/platform/branding"
)

// AppName returns the product name for page titles.
func AppName() string {
	return branding.AppName
}

// ComposePageTitle appends the product suffix to a page title.
func ComposePageTitle(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return AppName()
	}
	if strings.HasSuffix(base, " | "+AppName()) {
		return base
	}
	return base + " | " + AppName()
}

func esc(value string) string {
	return html.EscapeString(value)
}

func write(w io.Writer, markup string) error {
	_, err := io.WriteString(w, markup)
	return err
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
