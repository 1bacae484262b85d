package pr

import (
	"context"

	"github.com/abhinav/approval-gate/gateway"
	"github.com/abhinav/approval-gate/service"
)

// Approved checks whether the required reviewer approved the given pull
// request.
//
// Missing inputs are reported as a *service.ConfigurationError before GitHub
// is contacted. Failures to retrieve reviews are reported as a
// *service.ExecutionError.
func (s *ReviewService) Approved(ctx context.Context, req *service.ApprovalRequest) (bool, error) {
	if req.Number <= 0 {
		return false, &service.ConfigurationError{Reason: service.ReasonPullRequestNotFound}
	}

	var reviewer string
	if req.Reviewers != nil {
		var err error
		reviewer, err = req.Reviewers.Load()
		if err != nil {
			s.log.Debugw("could not load required reviewer", "error", err)
			reviewer = ""
		}
	}
	if reviewer == "" {
		return false, &service.ConfigurationError{Reason: service.ReasonReviewersNotFound}
	}

	reviews, err := s.gh.ListPullRequestReviews(ctx, req.Number)
	if err != nil {
		return false, &service.ExecutionError{Err: err}
	}
	s.log.Debugw("retrieved reviews",
		"pr", req.Number, "count", len(reviews), "reviewer", reviewer)

	var approved bool
	switch req.Policy {
	case service.ApprovedLatest:
		approved = approvedLatest(reviews, reviewer)
	default:
		approved = approvedEver(reviews, reviewer)
	}

	s.log.Debugw("approval verdict",
		"pr", req.Number, "reviewer", reviewer,
		"policy", req.Policy, "approved", approved)
	return approved, nil
}

// ReviewStatus reports which users currently approve of or request changes
// to the given pull request. Only the latest decisive review of each user
// is considered.
func (s *ReviewService) ReviewStatus(ctx context.Context, number int) (*service.ReviewStatus, error) {
	if number <= 0 {
		return nil, &service.ConfigurationError{Reason: service.ReasonPullRequestNotFound}
	}

	reviews, err := s.gh.ListPullRequestReviews(ctx, number)
	if err != nil {
		return nil, &service.ExecutionError{Err: err}
	}

	states := latestStates(reviews)
	return &service.ReviewStatus{
		Approvers:          usersWithState(states, gateway.PullRequestApproved),
		ChangesRequestedBy: usersWithState(states, gateway.PullRequestChangesRequested),
	}, nil
}
