package pr

import (
	"sort"

	"github.com/abhinav/approval-gate/gateway"

	"github.com/samber/lo"
)

// approvedEver reports whether the user submitted an approving review at any
// point.
func approvedEver(reviews []*gateway.PullRequestReview, user string) bool {
	return lo.ContainsBy(reviews, func(r *gateway.PullRequestReview) bool {
		return r.User == user && r.Status == gateway.PullRequestApproved
	})
}

// approvedLatest reports whether the user's latest decisive review is an
// approval.
func approvedLatest(reviews []*gateway.PullRequestReview, user string) bool {
	return latestStates(reviews)[user] == gateway.PullRequestApproved
}

// latestStates returns the state of the latest decisive review of each
// user. Comments and pending reviews do not override an earlier decision.
func latestStates(reviews []*gateway.PullRequestReview) map[string]gateway.PullRequestReviewState {
	states := make(map[string]gateway.PullRequestReviewState)

	// Reviews are in-order so later reviews by the same user win.
	for _, review := range reviews {
		switch review.Status {
		case gateway.PullRequestApproved,
			gateway.PullRequestChangesRequested,
			gateway.PullRequestDismissed:
			states[review.User] = review.Status
		}
	}
	return states
}

// usersWithState returns the sorted list of users whose latest state is the
// given state.
func usersWithState(states map[string]gateway.PullRequestReviewState, want gateway.PullRequestReviewState) []string {
	users := lo.Keys(lo.PickByValues(states, []gateway.PullRequestReviewState{want}))
	sort.Strings(users)
	return users
}
