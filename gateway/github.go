package gateway

import "context"

// PullRequestReviewState is the state of a single pull request review.
type PullRequestReviewState string

const (
	// PullRequestApproved indicates that a pull request was accepted.
	PullRequestApproved PullRequestReviewState = "APPROVED"

	// PullRequestCommented indicates that someone commented on a pull
	// request without an explicit approval or changes-requested.
	PullRequestCommented PullRequestReviewState = "COMMENTED"

	// PullRequestChangesRequested indicates that changes were requested for a
	// pull request.
	PullRequestChangesRequested PullRequestReviewState = "CHANGES_REQUESTED"

	// PullRequestPending indicates a review that was started but not yet
	// submitted.
	PullRequestPending PullRequestReviewState = "PENDING"

	// PullRequestDismissed indicates a review that was dismissed by a
	// maintainer or by a new push.
	PullRequestDismissed PullRequestReviewState = "DISMISSED"
)

// PullRequestReview is a review of a pull request.
type PullRequestReview struct {
	// User who did the review.
	User string

	// Whether they approved or requested changes.
	Status PullRequestReviewState
}

// GitHub is a gateway that provides access to GitHub operations on a specific
// repository.
type GitHub interface {
	// Lists all reviews for a pull request in the order they were
	// submitted.
	ListPullRequestReviews(ctx context.Context, number int) ([]*PullRequestReview, error)
}

//go:generate mockgen -package=gatewaytest -destination=gatewaytest/mocks.go github.com/abhinav/approval-gate/gateway GitHub
