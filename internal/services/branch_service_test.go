package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vcstools/git-pr/internal/models"
)

func sameRepoDetail() models.PullRequestDetail {
	return models.PullRequestDetail{
		Number:           42,
		HeadRepoFullName: "acme/widgets",
		BaseRepoFullName: "acme/widgets",
		HeadRepoOwner:    "acme",
		HeadBranch:       "feature-x",
		BaseBranch:       "main",
	}
}

func forkDetail() models.PullRequestDetail {
	detail := sameRepoDetail()
	detail.HeadRepoFullName = "alice/widgets"
	detail.HeadRepoOwner = "alice"
	return detail
}

func TestBranchService_PlanBranch(t *testing.T) {
	svc := NewBranchService(&MockVCSClient{}, &MockGitOperations{})

	t.Run("should track the head branch for a same-repo PR", func(t *testing.T) {
		plan := svc.PlanBranch(sameRepoDetail())

		assert.False(t, plan.IsFork)
		assert.Equal(t, "feature-x", plan.LocalBranch)
		assert.Equal(t, "feature-x:feature-x", plan.FetchRef)
		assert.Equal(t, "origin/feature-x", plan.UpstreamRef)
	})

	t.Run("should derive a read-only branch for a fork PR", func(t *testing.T) {
		plan := svc.PlanBranch(forkDetail())

		assert.True(t, plan.IsFork)
		assert.Equal(t, "alice-pr-42", plan.LocalBranch)
		assert.Equal(t, "pull/42/head:alice-pr-42", plan.FetchRef)
		assert.Empty(t, plan.UpstreamRef)
	})

	t.Run("should compare repository names case-sensitively", func(t *testing.T) {
		detail := sameRepoDetail()
		detail.HeadRepoFullName = "Acme/widgets"
		detail.HeadRepoOwner = "Acme"

		plan := svc.PlanBranch(detail)

		assert.True(t, plan.IsFork)
		assert.Equal(t, "Acme-pr-42", plan.LocalBranch)
	})
}

func TestBranchService_Pull(t *testing.T) {
	t.Run("should fetch, checkout and track a same-repo PR", func(t *testing.T) {
		client := &MockVCSClient{}
		git := &MockGitOperations{}
		svc := NewBranchService(client, git)

		client.On("GetAuthenticatedUser", mock.Anything).Return("reviewer", nil)
		client.On("GetPR", mock.Anything, 42).Return(sameRepoDetail(), nil)
		git.On("CurrentBranch", mock.Anything).Return("main", nil)
		git.On("Fetch", mock.Anything, "feature-x:feature-x").Return(nil)
		git.On("Checkout", mock.Anything, "feature-x").Return(nil)
		git.On("SetUpstream", mock.Anything, "origin/feature-x", "feature-x").Return(nil)

		plan, err := svc.Pull(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, plan.IsFork)
		git.AssertExpectations(t)
	})

	t.Run("should not set an upstream for a fork PR", func(t *testing.T) {
		client := &MockVCSClient{}
		git := &MockGitOperations{}
		svc := NewBranchService(client, git)

		client.On("GetAuthenticatedUser", mock.Anything).Return("reviewer", nil)
		client.On("GetPR", mock.Anything, 42).Return(forkDetail(), nil)
		git.On("CurrentBranch", mock.Anything).Return("main", nil)
		git.On("Fetch", mock.Anything, "pull/42/head:alice-pr-42").Return(nil)
		git.On("Checkout", mock.Anything, "alice-pr-42").Return(nil)

		plan, err := svc.Pull(context.Background(), 42)

		require.NoError(t, err)
		assert.True(t, plan.IsFork)
		git.AssertNotCalled(t, "SetUpstream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should stop after a failing checkout", func(t *testing.T) {
		client := &MockVCSClient{}
		git := &MockGitOperations{}
		svc := NewBranchService(client, git)

		client.On("GetAuthenticatedUser", mock.Anything).Return("", errors.New("no token"))
		client.On("GetPR", mock.Anything, 42).Return(sameRepoDetail(), nil)
		git.On("CurrentBranch", mock.Anything).Return("main", nil)
		git.On("Fetch", mock.Anything, "feature-x:feature-x").Return(nil)
		git.On("Checkout", mock.Anything, "feature-x").Return(errors.New("dirty worktree"))

		_, err := svc.Pull(context.Background(), 42)

		require.Error(t, err)
		git.AssertNotCalled(t, "SetUpstream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should be a no-op when the PR branch is already checked out", func(t *testing.T) {
		client := &MockVCSClient{}
		git := &MockGitOperations{}
		svc := NewBranchService(client, git)

		client.On("GetAuthenticatedUser", mock.Anything).Return("reviewer", nil)
		client.On("GetPR", mock.Anything, 42).Return(sameRepoDetail(), nil)
		git.On("CurrentBranch", mock.Anything).Return("feature-x", nil)

		plan, err := svc.Pull(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "feature-x", plan.LocalBranch)
		git.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
		git.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
		git.AssertNotCalled(t, "SetUpstream", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBranchService_ShowDiff(t *testing.T) {
	t.Run("should diff the base branch against the local head", func(t *testing.T) {
		client := &MockVCSClient{}
		git := &MockGitOperations{}
		svc := NewBranchService(client, git)

		client.On("GetPR", mock.Anything, 42).Return(forkDetail(), nil)
		git.On("CurrentBranch", mock.Anything).Return("main", nil)
		git.On("Fetch", mock.Anything, "pull/42/head:alice-pr-42").Return(nil)
		git.On("Fetch", mock.Anything, "main").Return(nil)
		git.On("Diff", mock.Anything, "origin/main", "alice-pr-42").Return(nil)

		_, err := svc.ShowDiff(context.Background(), 42)

		require.NoError(t, err)
		git.AssertExpectations(t)
	})

	t.Run("should diff right after a pull, with the PR branch checked out", func(t *testing.T) {
		client := &MockVCSClient{}
		git := &MockGitOperations{}
		svc := NewBranchService(client, git)

		client.On("GetPR", mock.Anything, 42).Return(forkDetail(), nil)
		git.On("CurrentBranch", mock.Anything).Return("alice-pr-42", nil)
		git.On("Fetch", mock.Anything, "main").Return(nil)
		git.On("Diff", mock.Anything, "origin/main", "alice-pr-42").Return(nil)

		_, err := svc.ShowDiff(context.Background(), 42)

		require.NoError(t, err)
		git.AssertExpectations(t)
		git.AssertNotCalled(t, "Fetch", mock.Anything, "pull/42/head:alice-pr-42")
	})
}
