package services

import (
	"context"
	"fmt"

	"github.com/vcstools/git-pr/internal/logger"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/vcs"
)

// GitOperations is the slice of local git behavior the branch workflows
// need. The real implementation shells out to the git binary.
type GitOperations interface {
	CurrentBranch(ctx context.Context) (string, error)
	Fetch(ctx context.Context, refspec string) error
	Checkout(ctx context.Context, branch string) error
	SetUpstream(ctx context.Context, remoteRef, branch string) error
	Diff(ctx context.Context, base, head string) error
}

// BranchService turns a pull request into a local branch. Same-repo PRs
// become a tracking branch named after the PR head; fork PRs become a
// read-only branch fetched through the pull ref.
type BranchService struct {
	client vcs.Client
	git    GitOperations
}

func NewBranchService(client vcs.Client, git GitOperations) *BranchService {
	return &BranchService{
		client: client,
		git:    git,
	}
}

// PlanBranch classifies the PR and derives the local branch strategy.
// A PR is a fork PR exactly when the head repository's full name differs
// from the base repository's, compared case-sensitively.
func (s *BranchService) PlanBranch(detail models.PullRequestDetail) models.BranchPlan {
	if detail.HeadRepoFullName != detail.BaseRepoFullName {
		local := fmt.Sprintf("%s-pr-%d", detail.HeadRepoOwner, detail.Number)
		return models.BranchPlan{
			LocalBranch: local,
			FetchRef:    fmt.Sprintf("pull/%d/head:%s", detail.Number, local),
			IsFork:      true,
		}
	}
	return models.BranchPlan{
		LocalBranch: detail.HeadBranch,
		FetchRef:    fmt.Sprintf("%s:%s", detail.HeadBranch, detail.HeadBranch),
		UpstreamRef: "origin/" + detail.HeadBranch,
	}
}

// Pull fetches the PR's head into a local branch and checks it out.
// Same-repo branches additionally track their remote counterpart so a
// plain `git push` goes to the right place; fork branches get no upstream.
// The steps are not rolled back on failure, a half-finished pull leaves
// whatever git state the failing step produced.
func (s *BranchService) Pull(ctx context.Context, number int) (models.BranchPlan, error) {
	if login, err := s.client.GetAuthenticatedUser(ctx); err == nil {
		logger.Debug(ctx, "authenticated to hosting service", "login", login)
	}

	detail, err := s.client.GetPR(ctx, number)
	if err != nil {
		return models.BranchPlan{}, err
	}

	plan := s.PlanBranch(detail)
	logger.Debug(ctx, "branch plan resolved",
		"pr_number", number,
		"local_branch", plan.LocalBranch,
		"fetch_ref", plan.FetchRef,
		"is_fork", plan.IsFork,
	)

	// Git refuses to fetch into the checked-out branch, so a re-run while
	// already on the PR branch is a no-op.
	current, err := s.git.CurrentBranch(ctx)
	if err != nil {
		return plan, err
	}
	if current == plan.LocalBranch {
		logger.Debug(ctx, "already on pull request branch", "branch", current)
		return plan, nil
	}

	if err := s.git.Fetch(ctx, plan.FetchRef); err != nil {
		return plan, err
	}
	if err := s.git.Checkout(ctx, plan.LocalBranch); err != nil {
		return plan, err
	}
	if !plan.IsFork {
		if err := s.git.SetUpstream(ctx, plan.UpstreamRef, plan.LocalBranch); err != nil {
			return plan, err
		}
	}
	return plan, nil
}

// ShowDiff streams the diff between the PR's base branch and its head.
// The head is fetched into its local branch first so both sides of the
// comparison exist locally.
func (s *BranchService) ShowDiff(ctx context.Context, number int) (models.BranchPlan, error) {
	detail, err := s.client.GetPR(ctx, number)
	if err != nil {
		return models.BranchPlan{}, err
	}

	plan := s.PlanBranch(detail)

	// Skip the head fetch when the PR branch is checked out: git refuses to
	// update the current branch's ref, and right after a pull the local
	// branch already points at the head.
	current, err := s.git.CurrentBranch(ctx)
	if err != nil {
		return plan, err
	}
	if current != plan.LocalBranch {
		if err := s.git.Fetch(ctx, plan.FetchRef); err != nil {
			return plan, err
		}
	}

	if err := s.git.Fetch(ctx, detail.BaseBranch); err != nil {
		return plan, err
	}
	return plan, s.git.Diff(ctx, "origin/"+detail.BaseBranch, plan.LocalBranch)
}
