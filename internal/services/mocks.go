package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vcstools/git-pr/internal/models"
)

// MockVCSClient is a testify double for vcs.Client.
type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetPR(ctx context.Context, number int) (models.PullRequestDetail, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.PullRequestDetail), args.Error(1)
}

func (m *MockVCSClient) ListOpenPRs(ctx context.Context) ([]models.PullRequestSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PullRequestSummary), args.Error(1)
}

func (m *MockVCSClient) ListPRCommits(ctx context.Context, number int) ([]string, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVCSClient) GetCommitFiles(ctx context.Context, sha string) ([]string, error) {
	args := m.Called(ctx, sha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVCSClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) CreateReview(ctx context.Context, number int, body string, event models.ReviewEvent, commitSHA string) error {
	args := m.Called(ctx, number, body, event, commitSHA)
	return args.Error(0)
}

func (m *MockVCSClient) ClosePR(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

// MockGitOperations is a testify double for GitOperations.
type MockGitOperations struct {
	mock.Mock
}

func (m *MockGitOperations) CurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitOperations) Fetch(ctx context.Context, refspec string) error {
	args := m.Called(ctx, refspec)
	return args.Error(0)
}

func (m *MockGitOperations) Checkout(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockGitOperations) SetUpstream(ctx context.Context, remoteRef, branch string) error {
	args := m.Called(ctx, remoteRef, branch)
	return args.Error(0)
}

func (m *MockGitOperations) Diff(ctx context.Context, base, head string) error {
	args := m.Called(ctx, base, head)
	return args.Error(0)
}
