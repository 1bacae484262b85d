package entity

import (
	"fmt"
	"strings"
)

// Repo uniquely identifies a GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

func (r *Repo) String() string {
	if r.Owner == "" && r.Name == "" {
		return ""
	}
	return fmt.Sprintf("%v/%v", r.Owner, r.Name)
}

// PullRequestURL returns the web URL of the given pull request in this
// repository on the given GitHub server. An empty server means github.com.
func (r *Repo) PullRequestURL(server string, number int) string {
	server = strings.TrimSuffix(server, "/")
	if server == "" {
		server = "https://github.com"
	}
	return fmt.Sprintf("%v/%v/%v/pull/%v", server, r.Owner, r.Name, number)
}
