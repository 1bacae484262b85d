package cli

import (
	"context"

	"github.com/abhinav/approval-gate/gateway"
)

// lazyGitHub is a GitHub gateway that connects on the first request.
type lazyGitHub struct {
	connect func() (gateway.GitHub, error)

	gh  gateway.GitHub
	err error
}

var _ gateway.GitHub = (*lazyGitHub)(nil)

func (l *lazyGitHub) get() (gateway.GitHub, error) {
	if l.gh == nil && l.err == nil {
		l.gh, l.err = l.connect()
	}
	return l.gh, l.err
}

func (l *lazyGitHub) ListPullRequestReviews(ctx context.Context, number int) ([]*gateway.PullRequestReview, error) {
	gh, err := l.get()
	if err != nil {
		return nil, err
	}
	return gh.ListPullRequestReviews(ctx, number)
}
