package pr

import (
	"github.com/abhinav/approval-gate/gateway"
	"github.com/abhinav/approval-gate/service"

	"go.uber.org/zap"
)

// ServiceConfig specifies the different parameters for a review service.
type ServiceConfig struct {
	GitHub gateway.GitHub

	// Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// ReviewService is a pull request review service.
type ReviewService struct {
	gh  gateway.GitHub
	log *zap.SugaredLogger
}

var _ service.Review = (*ReviewService)(nil)

// NewReviewService builds a new review service with the given
// configuration.
func NewReviewService(cfg ServiceConfig) *ReviewService {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ReviewService{
		gh:  cfg.GitHub,
		log: log.Named("review"),
	}
}
