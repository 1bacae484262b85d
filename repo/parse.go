package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhinav/approval-gate/entity"
)

// Parse parses a repository name in the format 'owner/repo'. Surrounding
// whitespace is ignored.
func Parse(value string) (*entity.Repo, error) {
	value = strings.TrimSpace(value)
	owner, name, ok := strings.Cut(value, "/")
	if !ok || strings.Contains(name, "/") {
		return nil, errors.New("repository must be in the form owner/repo")
	}

	if owner == "" {
		return nil, fmt.Errorf("owner in repository %q cannot be empty", value)
	}
	if name == "" {
		return nil, fmt.Errorf("name in repository %q cannot be empty", value)
	}

	return &entity.Repo{Owner: owner, Name: name}, nil
}
