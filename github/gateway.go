package github

import (
	"context"

	"github.com/abhinav/approval-gate/entity"
	"github.com/abhinav/approval-gate/gateway"

	"github.com/google/go-github/v62/github"
)

// Number of reviews requested per page. This is the maximum GitHub allows.
const _reviewsPerPage = 100

// pullRequestsService is the GitHub PullRequests client.
type pullRequestsService interface {
	ListReviews(
		ctx context.Context, owner string, repo string, number int,
		opts *github.ListOptions,
	) ([]*github.PullRequestReview, *github.Response, error)
}

var _ pullRequestsService = (*github.PullRequestsService)(nil)

//go:generate mockgen -source=gateway.go -package=github -destination=mock_pulls_test.go

// Gateway is a GitHub gateway that makes actual requests to GitHub.
type Gateway struct {
	owner string
	repo  string
	pulls pullRequestsService
}

var _ gateway.GitHub = (*Gateway)(nil)

// NewGatewayForRepository builds a new GitHub gateway for the given GitHub
// repository.
func NewGatewayForRepository(client *github.Client, repo *entity.Repo) *Gateway {
	return &Gateway{
		owner: repo.Owner,
		repo:  repo.Name,
		pulls: client.PullRequests,
	}
}

// ListPullRequestReviews lists every review submitted on the given pull
// request, following pagination until the last page.
//
// Errors from GitHub are returned as-is. Reviews by users that no longer
// exist are skipped.
func (g *Gateway) ListPullRequestReviews(ctx context.Context, number int) ([]*gateway.PullRequestReview, error) {
	reviews := []*gateway.PullRequestReview{}

	page := 0
	for {
		opts := &github.ListOptions{Page: page, PerPage: _reviewsPerPage}
		rs, res, err := g.pulls.ListReviews(ctx, g.owner, g.repo, number, opts)
		if err != nil {
			return nil, err
		}

		for _, r := range rs {
			login := r.GetUser().GetLogin()
			if login == "" {
				continue
			}
			reviews = append(reviews, &gateway.PullRequestReview{
				User:   login,
				Status: gateway.PullRequestReviewState(r.GetState()),
			})
		}

		if res == nil || res.NextPage == 0 {
			break
		}
		page = res.NextPage
	}

	return reviews, nil
}
