package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhinav/approval-gate/actions"
	"github.com/abhinav/approval-gate/entity"
)

var _prefixes = []string{
	"ssh://git@github.com/",
	"git@github.com:",
	"https://github.com/",
}

// RemoteURLFunc returns the URL of the given git remote.
type RemoteURLFunc func(remote string) (string, error)

// Guess determines the Repo based on the repository the workflow is running
// for. Outside of a workflow, the "origin" remote of the local git
// repository is used if remoteURL is non-nil.
func Guess(runner *actions.Context, remoteURL RemoteURLFunc) (*entity.Repo, error) {
	if runner != nil && runner.Repository != "" {
		return Parse(runner.Repository)
	}

	if remoteURL == nil {
		return nil, errors.New(
			"could not determine the repository: use --repo or set GITHUB_REPOSITORY")
	}

	url, err := remoteURL("origin")
	if err != nil {
		return nil, fmt.Errorf("could not determine the repository: %v", err)
	}

	for _, prefix := range _prefixes {
		if strings.HasPrefix(url, prefix) {
			url := strings.TrimPrefix(url, prefix)
			return Parse(strings.TrimSuffix(url, ".git"))
		}
	}

	return nil, fmt.Errorf(`remote "origin" (%v) is not a GitHub remote`, url)
}
