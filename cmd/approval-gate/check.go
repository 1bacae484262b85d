package main

import (
	"context"

	"github.com/abhinav/approval-gate/cli"
	"github.com/abhinav/approval-gate/reviewers"
	"github.com/abhinav/approval-gate/service"

	"github.com/jessevdk/go-flags"
)

type checkCmd struct {
	ReviewersFile string `long:"reviewers-file" env:"INPUT_REVIEWERS_FILE" default:"REVIEWERS" value-name:"PATH" description:"File holding the login of the reviewer whose approval is required."`
	Policy        string `long:"policy" default:"ever" choice:"ever" choice:"latest" description:"Which reviews count: 'ever' accepts any approval by the reviewer, 'latest' only their most recent decision."`
	Args          struct {
		Number int `positional-arg-name:"PR" description:"Number of the pull request to check. Defaults to the pull request that triggered the workflow."`
	} `positional-args:"yes"`

	getConfig configBuilder
}

func newCheckCommand(cbuild cli.ConfigBuilder) flags.Commander {
	return &checkCmd{getConfig: newConfigBuilder(cbuild)}
}

func (c *checkCmd) Execute([]string) error {
	cfg, err := c.getConfig()
	if err != nil {
		return err
	}

	number, err := pullRequestNumber(c.Args.Number, cfg.Runner())
	if err != nil {
		return err
	}

	file := c.ReviewersFile
	if file == "" {
		file = reviewers.DefaultFile
	}

	req := service.ApprovalRequest{
		Number:    number,
		Reviewers: reviewers.File(file),
		Policy:    service.ApprovalPolicy(c.Policy),
	}
	approved, err := cfg.Service.Approved(context.Background(), &req)
	if err != nil {
		return err
	}

	if !approved {
		return &service.VerdictFailure{}
	}

	if r, err := cfg.Repo(); err == nil {
		cfg.Logger().Debugw("pull request approved",
			"url", r.PullRequestURL(cfg.Runner().ServerURL, number))
	}
	return nil
}
