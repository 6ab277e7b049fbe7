package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.RepositoryCommit), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) CreateReview(ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, review)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequestReview), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, pr)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

type MockRepoService struct {
	mock.Mock
}

func (m *MockRepoService) GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, sha, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.RepositoryCommit), responseArg(args.Get(1)), args.Error(2)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, user string) (*github.User, *github.Response, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.User), responseArg(args.Get(1)), args.Error(2)
}

func responseArg(v interface{}) *github.Response {
	if v == nil {
		return nil
	}
	return v.(*github.Response)
}
