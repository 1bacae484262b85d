package service

// Failure reasons reported when a pull request cannot be checked.
const (
	ReasonPullRequestNotFound = "PR number not found"
	ReasonReviewersNotFound   = "Reviewers not found in REVIEWERS file"
	ReasonNotApproved         = "Not all required reviewers have approved the PR"
)

// ConfigurationError is returned when a required input is missing. It is
// always detected before GitHub is contacted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// ExecutionError is returned when talking to GitHub or processing its
// response fails. Its message is the message of the underlying error.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// VerdictFailure is returned when reviews were retrieved successfully but
// none of them is a qualifying approval by the required reviewer.
type VerdictFailure struct{}

func (e *VerdictFailure) Error() string {
	return ReasonNotApproved
}
