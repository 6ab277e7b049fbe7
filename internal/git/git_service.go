package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vcstools/git-pr/internal/errors"
)

// GitService shells out to the local git binary. Only the exit status is
// consulted; command output goes straight to the user's terminal where it
// matters (diff) and to the error context otherwise.
type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// RemoteURL returns the URL of the origin remote.
func (s *GitService) RemoteURL(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetRepoURL.WithError(err)
	}

	url := strings.TrimSpace(string(output))
	if url == "" {
		return "", errors.ErrGetRepoURL
	}
	return url, nil
}

// CurrentBranch returns the name of the currently checked-out branch, or
// "HEAD" when detached.
func (s *GitService) CurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrCurrentBranch.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Fetch fetches a refspec from origin, e.g. "feature-x:feature-x" or
// "pull/42/head:alice-pr-42".
func (s *GitService) Fetch(ctx context.Context, refspec string) error {
	cmd := exec.CommandContext(ctx, "git", "fetch", "origin", refspec)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrFetch.WithError(err).
			WithContext("ref", refspec).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Checkout switches the working tree to the given local branch.
func (s *GitService) Checkout(ctx context.Context, branch string) error {
	cmd := exec.CommandContext(ctx, "git", "checkout", branch)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrCheckout.WithError(err).
			WithContext("branch", branch).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// SetUpstream points a local branch at a remote tracking ref, e.g.
// ("origin/feature-x", "feature-x").
func (s *GitService) SetUpstream(ctx context.Context, remoteRef, branch string) error {
	cmd := exec.CommandContext(ctx, "git", "branch", "--set-upstream-to", remoteRef, branch)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrSetUpstream.WithError(err).
			WithContext("branch", branch).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Diff streams `git diff <base>...<head>` to the terminal.
func (s *GitService) Diff(ctx context.Context, base, head string) error {
	diffRange := fmt.Sprintf("%s...%s", base, head)
	cmd := exec.CommandContext(ctx, "git", "diff", diffRange)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrDiff.WithError(err).WithContext("range", diffRange)
	}
	return nil
}
