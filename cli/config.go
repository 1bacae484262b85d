package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abhinav/approval-gate/actions"
	"github.com/abhinav/approval-gate/entity"
	"github.com/abhinav/approval-gate/gateway"
	"github.com/abhinav/approval-gate/git"
	ghgateway "github.com/abhinav/approval-gate/github"
	"github.com/abhinav/approval-gate/repo"

	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Config is the common configuration for all programs in this package.
type Config interface {
	// Repository the program operates on. It is resolved on first use.
	Repo() (*entity.Repo, error)

	// GitHub gateway for Repo. Failure to resolve the repository is
	// reported by the first request made through it.
	GitHub() gateway.GitHub

	Runner() *actions.Context
	Logger() *zap.SugaredLogger
}

// ConfigBuilder builds a configuration lazily.
type ConfigBuilder func() (Config, error)

type globalConfig struct {
	RepoName    string `short:"r" long:"repo" value-name:"OWNER/REPO" description:"Name of the GitHub repository in the format 'owner/repo'. Defaults to the repository the workflow is running for."`
	GitHubToken string `short:"t" long:"token" env:"INPUT_GITHUB_TOKEN" value-name:"TOKEN" description:"GitHub token used to make requests."`
	Debug       bool   `long:"debug" description:"Write diagnostic logs to stderr."`

	// Looks up git remotes when the repository is not otherwise known.
	// Defaults to the git repository in the working directory.
	remoteURL repo.RemoteURLFunc

	runner *actions.Context
	logger *zap.SugaredLogger
	github gateway.GitHub

	repo    *entity.Repo
	repoErr error
}

var _ Config = (*globalConfig)(nil)

// globalConfig.Build is a ConfigBuilder
//
// Nothing that can be missing from a run, like the repository, is resolved
// here so that commands can validate their own inputs first.
func (g *globalConfig) Build() (_ Config, err error) {
	g.runner, err = actions.LoadContext()
	if err != nil {
		return nil, err
	}

	g.logger, err = newLogger(g.Debug || g.runner.Debug())
	if err != nil {
		return nil, err
	}

	if g.remoteURL == nil {
		g.remoteURL = func(remote string) (string, error) {
			return git.RemoteURL(".", remote)
		}
	}

	g.github = &lazyGitHub{connect: g.connect}
	return g, nil
}

func (g *globalConfig) Repo() (*entity.Repo, error) {
	if g.repo == nil && g.repoErr == nil {
		if g.RepoName != "" {
			g.repo, g.repoErr = repo.Parse(g.RepoName)
		} else {
			g.repo, g.repoErr = repo.Guess(g.runner, g.remoteURL)
		}
	}
	return g.repo, g.repoErr
}

// connect builds the GitHub client for the configured repository.
func (g *globalConfig) connect() (gateway.GitHub, error) {
	r, err := g.Repo()
	if err != nil {
		return nil, err
	}

	var httpClient *http.Client
	if g.GitHubToken != "" {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: g.GitHubToken})
		httpClient = oauth2.NewClient(context.Background(), tokenSource)
	} else {
		g.logger.Warn("no GitHub token provided: making unauthenticated requests")
	}

	client := github.NewClient(httpClient)
	if g.runner.IsEnterprise() {
		client, err = client.WithEnterpriseURLs(g.runner.APIURL, g.runner.APIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %v", g.runner.APIURL, err)
		}
	}

	g.logger.Debugw("configured GitHub client",
		"repo", r.String(), "api", g.runner.APIURL)
	return ghgateway.NewGatewayForRepository(client, r), nil
}

func (g *globalConfig) GitHub() gateway.GitHub {
	return g.github
}

func (g *globalConfig) Runner() *actions.Context {
	return g.runner
}

func (g *globalConfig) Logger() *zap.SugaredLogger {
	return g.logger
}
