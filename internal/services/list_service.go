package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/sync/errgroup"

	"github.com/vcstools/git-pr/internal/logger"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/vcs"
)

// maxConcurrentFetches bounds the parallel per-PR detail lookups so a busy
// repository does not burn through the API rate limit in one invocation.
const maxConcurrentFetches = 5

// ListService assembles the open-PR listing: one summary page from the
// hosting service, enriched with a detail fetch per PR.
type ListService struct {
	client vcs.Client
	now    func() time.Time
}

func NewListService(client vcs.Client) *ListService {
	return &ListService{
		client: client,
		now:    time.Now,
	}
}

// PRWarning records a pull request that was dropped from the listing
// because its detail fetch failed.
type PRWarning struct {
	Number int
	Err    error
}

// ListOpen returns display rows for the open pull requests, oldest last.
// PRs whose detail fetch fails are reported as warnings and omitted;
// a failure of the listing itself is fatal.
func (s *ListService) ListOpen(ctx context.Context) ([]models.PRRow, []PRWarning, error) {
	summaries, err := s.client.ListOpenPRs(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(summaries) == 0 {
		return nil, nil, nil
	}

	details := make([]*models.PullRequestDetail, len(summaries))
	failures := make([]error, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, summary := range summaries {
		g.Go(func() error {
			detail, err := s.client.GetPR(gctx, summary.Number)
			if err != nil {
				failures[i] = err
				return nil
			}
			details[i] = &detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []PRWarning
	kept := make([]models.PullRequestDetail, 0, len(summaries))
	for i, detail := range details {
		if detail == nil {
			warnings = append(warnings, PRWarning{Number: summaries[i].Number, Err: failures[i]})
			logger.Debug(ctx, "dropping pull request from listing", "pr_number", summaries[i].Number, "error", failures[i])
			continue
		}
		kept = append(kept, *detail)
	}

	now := s.now()
	sort.SliceStable(kept, func(i, j int) bool {
		return ageDays(kept[i].CreatedAt, now) < ageDays(kept[j].CreatedAt, now)
	})

	rows := make([]models.PRRow, 0, len(kept))
	for _, detail := range kept {
		rows = append(rows, s.toRow(detail, now))
	}
	return rows, warnings, nil
}

func (s *ListService) toRow(detail models.PullRequestDetail, now time.Time) models.PRRow {
	description := "-"
	if detail.Body != "" {
		description = wordwrap.String(detail.Body, descriptionWidth)
	}
	return models.PRRow{
		Number:      fmt.Sprintf("#%d", detail.Number),
		Title:       detail.Title,
		Author:      detail.Author,
		Age:         formatAge(ageDays(detail.CreatedAt, now)),
		Commits:     strconv.Itoa(detail.CommitCount),
		Files:       strconv.Itoa(detail.ChangedFileCount),
		Labels:      orDash(strings.Join(detail.Labels, ", ")),
		Description: description,
	}
}
