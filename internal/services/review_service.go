package services

import (
	"context"

	"github.com/vcstools/git-pr/internal/logger"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/vcs"
)

// ReviewService submits PR reviews pinned to the current head commit.
type ReviewService struct {
	client vcs.Client
}

func NewReviewService(client vcs.Client) *ReviewService {
	return &ReviewService{client: client}
}

// SubmitReview refetches the PR immediately before submitting so the
// review is pinned to the freshest head SHA available. A push landing
// between the fetch and the submit is the hosting service's race to
// resolve, not ours.
func (s *ReviewService) SubmitReview(ctx context.Context, number int, body string, event models.ReviewEvent) error {
	detail, err := s.client.GetPR(ctx, number)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "pinning review to head commit",
		"pr_number", number,
		"event", string(event),
		"head_sha", detail.HeadCommitSHA,
	)
	return s.client.CreateReview(ctx, number, body, event, detail.HeadCommitSHA)
}

// Close transitions the PR to closed. Closing an already-closed PR
// surfaces the hosting service's error verbatim.
func (s *ReviewService) Close(ctx context.Context, number int) error {
	return s.client.ClosePR(ctx, number)
}
