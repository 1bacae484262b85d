// Package actions reads the environment a GitHub Actions runner provides to
// a step, and writes workflow commands back to it.
package actions

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Endpoints of github.com.
const (
	DefaultAPIURL    = "https://api.github.com"
	DefaultServerURL = "https://github.com"
)

// Context is the part of the runner environment this program cares about.
// All fields are empty when running outside of GitHub Actions.
type Context struct {
	// Repository in the form owner/repo.
	Repository string `env:"GITHUB_REPOSITORY"`

	// Name of the event that triggered the workflow, e.g. pull_request.
	EventName string `env:"GITHUB_EVENT_NAME"`

	// Path to the JSON payload of the triggering event.
	EventPath string `env:"GITHUB_EVENT_PATH"`

	APIURL    string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	ServerURL string `env:"GITHUB_SERVER_URL" envDefault:"https://github.com"`
	Workspace string `env:"GITHUB_WORKSPACE"`

	// "1" when the workflow is re-run with debug logging enabled. Kept as
	// a string so that unexpected values never fail the run.
	RunnerDebug string `env:"RUNNER_DEBUG"`
}

// LoadContext loads the runner context from the process environment.
func LoadContext() (*Context, error) {
	var c Context
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("failed to read runner environment: %v", err)
	}
	return &c, nil
}

// LoadContextFrom loads the runner context from the given environment
// instead of the process environment.
func LoadContextFrom(environ map[string]string) (*Context, error) {
	var c Context
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to read runner environment: %v", err)
	}
	return &c, nil
}

// Debug reports whether the runner asked for debug logging.
func (c *Context) Debug() bool {
	v := strings.TrimSpace(c.RunnerDebug)
	return v == "1" || strings.EqualFold(v, "true")
}

// IsEnterprise reports whether the runner talks to a GitHub Enterprise
// Server instead of github.com.
func (c *Context) IsEnterprise() bool {
	api := strings.TrimSuffix(c.APIURL, "/")
	return api != "" && api != DefaultAPIURL
}
