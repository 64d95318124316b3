// Package branding holds display-only identity for the running instance:
// the product name, the deploy environment label, and the build version.
// None of these values affect query behavior or data shape.
package branding

import (
	"os"
	"strings"
)

// AppName is the product name rendered in the UI chrome.
const AppName = "Relaydesk Ops"

// Instance labels a running deployment for the UI chrome.
type Instance struct {
	// Environment is the deploy environment name (for example "production"
	// or "staging").
	Environment string
	// Version is the version or commit identifier of the running build.
	Version string
}

// FromEnv reads the instance labels from process configuration at startup.
// Missing values degrade to stable defaults so the banner always renders.
func FromEnv() Instance {
	return Instance{
		Environment: firstNonEmpty(os.Getenv("OPSDASH_ENVIRONMENT"), "development"),
		Version:     firstNonEmpty(os.Getenv("OPSDASH_VERSION"), os.Getenv("COMMIT_REF"), "dev"),
	}
}

// Banner renders the instance label shown in the page footer.
func (i Instance) Banner() string {
	env := strings.TrimSpace(i.Environment)
	version := strings.TrimSpace(i.Version)
	if env == "" {
		env = "development"
	}
	if version == "" {
		version = "dev"
	}
	if len(version) > 12 {
		version = version[:12]
	}
	return env + " · " + version
}

// IsProduction reports whether the environment label names production.
// Non-production instances render a highlighted banner.
func (i Instance) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(i.Environment), "production")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
