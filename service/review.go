package service

import (
	"context"

	"github.com/abhinav/approval-gate/reviewers"
)

// ApprovalPolicy decides which reviews count towards an approval.
type ApprovalPolicy string

const (
	// ApprovedEver accepts a pull request if the required reviewer approved
	// it at any point, even if they later reviewed it again without
	// approving.
	ApprovedEver ApprovalPolicy = "ever"

	// ApprovedLatest accepts a pull request only if the required reviewer's
	// most recent approving, changes-requested or dismissed review is an
	// approval.
	ApprovedLatest ApprovalPolicy = "latest"
)

// ApprovalRequest is a request to check whether a pull request was approved
// by a required reviewer.
type ApprovalRequest struct {
	// Pull request number. Zero if the pull request could not be
	// determined.
	Number int

	// Source of the required reviewer's login.
	Reviewers reviewers.Source

	// Defaults to ApprovedEver.
	Policy ApprovalPolicy
}

// ReviewStatus indicates whether a pull request has been reviewed
// successfully.
type ReviewStatus struct {
	// List of users who approved the pull request.
	Approvers []string

	// List of users who requested changes to the pull request.
	ChangesRequestedBy []string
}

// Review is a service that provides access to pull request reviews.
type Review interface {
	// Check if a pull request has been approved by the required reviewer.
	Approved(ctx context.Context, req *ApprovalRequest) (bool, error)

	// Summarize the latest review of each reviewer on a pull request.
	ReviewStatus(ctx context.Context, number int) (*ReviewStatus, error)
}

//go:generate mockgen -package=servicetest -destination=servicetest/mocks.go github.com/abhinav/approval-gate/service Review
