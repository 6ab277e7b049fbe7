package vcs

import (
	"context"

	"github.com/vcstools/git-pr/internal/models"
)

// Client defines the typed operations a hosting service must expose for the
// pull-request workflows. One implementation exists per hosting service;
// the factory in this package picks the right one from the remote URL.
type Client interface {
	// GetPR fetches the full detail view of a single pull request.
	GetPR(ctx context.Context, number int) (models.PullRequestDetail, error)
	// ListOpenPRs fetches one page (up to 50) of open pull request summaries.
	ListOpenPRs(ctx context.Context) ([]models.PullRequestSummary, error)
	// ListPRCommits returns the SHAs of a pull request's commits, in order.
	ListPRCommits(ctx context.Context, number int) ([]string, error)
	// GetCommitFiles returns the filenames changed by a single commit,
	// in the order the service reports them.
	GetCommitFiles(ctx context.Context, sha string) ([]string, error)
	// GetAuthenticatedUser returns the login of the token's user.
	GetAuthenticatedUser(ctx context.Context) (string, error)
	// CreateReview submits a review pinned to a specific head commit.
	CreateReview(ctx context.Context, number int, body string, event models.ReviewEvent, commitSHA string) error
	// ClosePR transitions a pull request to the closed state. The service's
	// response to closing an already-closed PR is surfaced verbatim.
	ClosePR(ctx context.Context, number int) error
}
