package clitest

import (
	"github.com/abhinav/approval-gate/actions"
	"github.com/abhinav/approval-gate/cli"
	"github.com/abhinav/approval-gate/entity"
	"github.com/abhinav/approval-gate/gateway"

	"go.uber.org/zap"
)

// ConfigBuilder may be used to build a cli.Config from static values.
type ConfigBuilder struct {
	Repo   *entity.Repo
	GitHub gateway.GitHub

	// If set, Repo() fails with this error.
	RepoError error

	// Defaults to an empty runner context.
	Runner *actions.Context

	// Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Build the cli.Config. This function may also be used as a
// cli.ConfigBuilder.
func (c *ConfigBuilder) Build() (cli.Config, error) {
	// We never return an error. It's used only to satisfy the
	// cli.ConfigBuilder signature.
	data := *c
	if data.Runner == nil {
		data.Runner = &actions.Context{}
	}
	if data.Logger == nil {
		data.Logger = zap.NewNop().Sugar()
	}
	return &config{data}, nil
}

type config struct{ data ConfigBuilder }

func (c *config) Repo() (*entity.Repo, error) {
	if c.data.RepoError != nil {
		return nil, c.data.RepoError
	}
	return c.data.Repo, nil
}

func (c *config) GitHub() gateway.GitHub {
	return c.data.GitHub
}

func (c *config) Runner() *actions.Context {
	return c.data.Runner
}

func (c *config) Logger() *zap.SugaredLogger {
	return c.data.Logger
}
