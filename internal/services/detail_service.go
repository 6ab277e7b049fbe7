package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vcstools/git-pr/internal/logger"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/vcs"
)

// DetailService assembles the single-PR detail view: the PR metadata plus
// one row per commit with the files that commit changed.
type DetailService struct {
	client vcs.Client
	now    func() time.Time
}

func NewDetailService(client vcs.Client) *DetailService {
	return &DetailService{
		client: client,
		now:    time.Now,
	}
}

// CommitWarning records a commit whose changed-files lookup failed and was
// therefore omitted from the detail view.
type CommitWarning struct {
	SHA string
	Err error
}

// FetchDetail fetches the PR metadata. Any failure here is fatal to the
// detail view.
func (s *DetailService) FetchDetail(ctx context.Context, number int) (models.PullRequestDetail, error) {
	return s.client.GetPR(ctx, number)
}

// FetchCommitsWithFiles fetches the PR's commit SHAs and, for each, the
// files it changed. Failing to list the commits is fatal; a failure on a
// single commit's files drops that commit with a warning, keeping the rest
// in their original order.
func (s *DetailService) FetchCommitsWithFiles(ctx context.Context, number int) ([]models.Commit, []CommitWarning, error) {
	shas, err := s.client.ListPRCommits(ctx, number)
	if err != nil {
		return nil, nil, err
	}

	files := make([][]string, len(shas))
	failures := make([]error, len(shas))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, sha := range shas {
		g.Go(func() error {
			changed, err := s.client.GetCommitFiles(gctx, sha)
			if err != nil {
				failures[i] = err
				return nil
			}
			files[i] = changed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []CommitWarning
	commits := make([]models.Commit, 0, len(shas))
	for i, sha := range shas {
		if failures[i] != nil {
			warnings = append(warnings, CommitWarning{SHA: sha, Err: failures[i]})
			logger.Debug(ctx, "dropping commit from detail view", "sha", sha, "error", failures[i])
			continue
		}
		commits = append(commits, models.Commit{SHA: sha, ChangedFiles: files[i]})
	}
	return commits, warnings, nil
}

// DetailRows shapes the detail view into table rows, one per commit. The
// PR-level columns are filled on the first row only so they read as a
// single block beside the commit listing.
func (s *DetailService) DetailRows(detail models.PullRequestDetail, commits []models.Commit) []models.DetailRow {
	now := s.now()
	first := models.DetailRow{
		PRNumber: fmt.Sprintf("#%d", detail.Number),
		Title:    detail.Title,
		Status:   detail.State,
		Age:      formatAge(ageDays(detail.CreatedAt, now)),
		Author:   detail.Author,
	}

	if len(commits) == 0 {
		first.CommitSHA = "-"
		first.ChangedFiles = "-"
		return []models.DetailRow{first}
	}

	rows := make([]models.DetailRow, 0, len(commits))
	for i, commit := range commits {
		row := models.DetailRow{}
		if i == 0 {
			row = first
		}
		row.CommitSHA = shortSHA(commit.SHA)
		row.ChangedFiles = orDash(strings.Join(commit.ChangedFiles, ", "))
		rows = append(rows, row)
	}
	return rows
}
