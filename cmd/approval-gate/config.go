package main

import (
	"github.com/abhinav/approval-gate/actions"
	"github.com/abhinav/approval-gate/cli"
	"github.com/abhinav/approval-gate/pr"
	"github.com/abhinav/approval-gate/service"
)

// Common config for approval-gate commands.
type config struct {
	cli.Config

	Service service.Review
}

type configBuilder func() (config, error)

func newConfigBuilder(cb cli.ConfigBuilder) configBuilder {
	return func() (config, error) {
		cfg, err := cb()
		if err != nil {
			return config{}, err
		}

		return config{
			Config: cfg,
			Service: pr.NewReviewService(pr.ServiceConfig{
				GitHub: cfg.GitHub(),
				Logger: cfg.Logger(),
			}),
		}, nil
	}
}

// pullRequestNumber returns the explicitly requested pull request or the one
// that triggered the workflow. Zero means neither is known.
func pullRequestNumber(explicit int, runner *actions.Context) (int, error) {
	if explicit > 0 {
		return explicit, nil
	}

	ev, err := actions.ReadEvent(runner.EventPath)
	if err != nil {
		return 0, err
	}

	number, _ := ev.PullRequestNumber()
	return number, nil
}
