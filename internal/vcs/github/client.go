package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/vcstools/git-pr/internal/errors"
	"github.com/vcstools/git-pr/internal/logger"
	"github.com/vcstools/git-pr/internal/models"
)

// userAgent identifies this client to the GitHub API; the API rejects
// requests without one.
const userAgent = "git-pr"

// openPRPageSize bounds the single list call; no further pages are fetched.
const openPRPageSize = 50

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	CreateReview(ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, *github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error)
}

type RepositoriesService interface {
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

// APIError carries a non-2xx response verbatim: status code plus the body
// text the service returned, for diagnostics. No retries are attempted.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func newAPIError(resp *github.Response, err error) *APIError {
	apiErr := &APIError{Body: err.Error()}
	if resp != nil {
		apiErr.StatusCode = resp.StatusCode
	}
	if ghErr, ok := err.(*github.ErrorResponse); ok {
		if body := errorResponseBody(ghErr); body != "" {
			apiErr.Body = body
		}
	}
	return apiErr
}

// errorResponseBody reassembles the response body the service sent: the
// top-level message plus every entry of the errors array. go-github consumes
// the raw body while decoding, so this is everything it retained.
func errorResponseBody(ghErr *github.ErrorResponse) string {
	parts := make([]string, 0, 1+len(ghErr.Errors))
	if ghErr.Message != "" {
		parts = append(parts, ghErr.Message)
	}
	for _, detail := range ghErr.Errors {
		switch {
		case detail.Message != "":
			parts = append(parts, detail.Message)
		case detail.Code != "":
			parts = append(parts, fmt.Sprintf("%s.%s: %s", detail.Resource, detail.Field, detail.Code))
		}
	}
	return strings.Join(parts, "; ")
}

type GitHubClient struct {
	prService    PullRequestsService
	repoService  RepositoriesService
	usersService UsersService
	owner        string
	repo         string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	return &GitHubClient{
		prService:    client.PullRequests,
		repoService:  client.Repositories,
		usersService: client.Users,
		owner:        owner,
		repo:         repo,
	}
}

// NewGitHubClientWithServices wires explicit service implementations,
// used by tests.
func NewGitHubClientWithServices(
	prService PullRequestsService,
	repoService RepositoriesService,
	usersService UsersService,
	owner string,
	repo string,
) *GitHubClient {
	return &GitHubClient{
		prService:    prService,
		repoService:  repoService,
		usersService: usersService,
		owner:        owner,
		repo:         repo,
	}
}

func (ghc *GitHubClient) GetPR(ctx context.Context, number int) (models.PullRequestDetail, error) {
	logger.Debug(ctx, "fetching pull request", "pr_number", number)

	pr, resp, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, number)
	if err != nil {
		return models.PullRequestDetail{}, errors.ErrGetPR.
			WithError(newAPIError(resp, err)).
			WithContext("pr_number", number)
	}

	return mapDetail(pr), nil
}

func (ghc *GitHubClient) ListOpenPRs(ctx context.Context) ([]models.PullRequestSummary, error) {
	logger.Debug(ctx, "listing open pull requests", "owner", ghc.owner, "repo", ghc.repo)

	opts := &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: openPRPageSize,
		},
	}

	prs, resp, err := ghc.prService.List(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, errors.ErrListPRs.WithError(newAPIError(resp, err))
	}

	summaries := make([]models.PullRequestSummary, 0, len(prs))
	for _, pr := range prs {
		summaries = append(summaries, models.PullRequestSummary{
			Number:    pr.GetNumber(),
			Title:     orDash(pr.GetTitle()),
			Author:    orDash(pr.GetUser().GetLogin()),
			CreatedAt: pr.GetCreatedAt().Time,
		})
	}
	return summaries, nil
}

func (ghc *GitHubClient) ListPRCommits(ctx context.Context, number int) ([]string, error) {
	commits, resp, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, number, &github.ListOptions{})
	if err != nil {
		return nil, errors.ErrGetCommits.
			WithError(newAPIError(resp, err)).
			WithContext("pr_number", number)
	}

	shas := make([]string, 0, len(commits))
	for _, commit := range commits {
		shas = append(shas, commit.GetSHA())
	}
	return shas, nil
}

func (ghc *GitHubClient) GetCommitFiles(ctx context.Context, sha string) ([]string, error) {
	logger.Debug(ctx, "fetching files for commit", "sha", sha)

	commit, resp, err := ghc.repoService.GetCommit(ctx, ghc.owner, ghc.repo, sha, &github.ListOptions{})
	if err != nil {
		return nil, errors.ErrGetCommits.
			WithError(newAPIError(resp, err)).
			WithContext("sha", sha)
	}

	files := make([]string, 0, len(commit.Files))
	for _, file := range commit.Files {
		if name := file.GetFilename(); name != "" {
			files = append(files, name)
		}
	}
	return files, nil
}

func (ghc *GitHubClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := ghc.usersService.Get(ctx, "")
	if err != nil {
		return "", errors.ErrGetUser.WithError(newAPIError(resp, err))
	}
	return user.GetLogin(), nil
}

func (ghc *GitHubClient) CreateReview(ctx context.Context, number int, body string, event models.ReviewEvent, commitSHA string) error {
	logger.Debug(ctx, "submitting review", "pr_number", number, "event", string(event), "commit_id", commitSHA)

	review := &github.PullRequestReviewRequest{
		Body:     github.Ptr(body),
		Event:    github.Ptr(string(event)),
		CommitID: github.Ptr(commitSHA),
	}

	_, resp, err := ghc.prService.CreateReview(ctx, ghc.owner, ghc.repo, number, review)
	if err != nil {
		return errors.ErrSubmitReview.
			WithError(newAPIError(resp, err)).
			WithContext("pr_number", number)
	}
	return nil
}

func (ghc *GitHubClient) ClosePR(ctx context.Context, number int) error {
	logger.Debug(ctx, "closing pull request", "pr_number", number)

	pr := &github.PullRequest{State: github.Ptr("closed")}

	_, resp, err := ghc.prService.Edit(ctx, ghc.owner, ghc.repo, number, pr)
	if err != nil {
		return errors.ErrClosePR.
			WithError(newAPIError(resp, err)).
			WithContext("pr_number", number)
	}
	return nil
}

func mapDetail(pr *github.PullRequest) models.PullRequestDetail {
	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		if name := label.GetName(); name != "" {
			labels = append(labels, name)
		}
	}

	return models.PullRequestDetail{
		Number:           pr.GetNumber(),
		Title:            orDash(pr.GetTitle()),
		Author:           orDash(pr.GetUser().GetLogin()),
		CreatedAt:        pr.GetCreatedAt().Time,
		Body:             pr.GetBody(),
		Labels:           labels,
		CommitCount:      pr.GetCommits(),
		ChangedFileCount: pr.GetChangedFiles(),
		HeadCommitSHA:    pr.GetHead().GetSHA(),
		BaseRepoFullName: pr.GetBase().GetRepo().GetFullName(),
		HeadRepoFullName: pr.GetHead().GetRepo().GetFullName(),
		HeadRepoOwner:    pr.GetHead().GetRepo().GetOwner().GetLogin(),
		HeadBranch:       pr.GetHead().GetRef(),
		BaseBranch:       pr.GetBase().GetRef(),
		State:            orDash(pr.GetState()),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
