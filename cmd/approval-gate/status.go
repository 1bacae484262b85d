package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhinav/approval-gate/cli"

	"github.com/jessevdk/go-flags"
)

type statusCmd struct {
	Args struct {
		Number int `positional-arg-name:"PR" description:"Number of the pull request. Defaults to the pull request that triggered the workflow."`
	} `positional-args:"yes"`

	getConfig configBuilder
	out       io.Writer
}

func newStatusCommand(cbuild cli.ConfigBuilder) flags.Commander {
	return &statusCmd{
		getConfig: newConfigBuilder(cbuild),
		out:       os.Stdout,
	}
}

func (s *statusCmd) Execute([]string) error {
	cfg, err := s.getConfig()
	if err != nil {
		return err
	}

	number, err := pullRequestNumber(s.Args.Number, cfg.Runner())
	if err != nil {
		return err
	}

	status, err := cfg.Service.ReviewStatus(context.Background(), number)
	if err != nil {
		return err
	}

	r, err := cfg.Repo()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, r.PullRequestURL(cfg.Runner().ServerURL, number))
	fmt.Fprintln(s.out, "Approved by:", usersOrNone(status.Approvers))
	fmt.Fprintln(s.out, "Changes requested by:", usersOrNone(status.ChangesRequestedBy))
	return nil
}

func usersOrNone(users []string) string {
	if len(users) == 0 {
		return "(none)"
	}
	return strings.Join(users, ", ")
}
