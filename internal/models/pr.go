package models

import "time"

type (
	// PullRequestSummary is the lightweight projection returned by the list
	// endpoint, before per-PR enrichment.
	PullRequestSummary struct {
		Number    int
		Title     string
		Author    string
		CreatedAt time.Time
	}

	// PullRequestDetail is the full PR view assembled from the detail
	// endpoint. Valid only for the instant it was fetched.
	PullRequestDetail struct {
		Number           int
		Title            string
		Author           string
		CreatedAt        time.Time
		Body             string
		Labels           []string
		CommitCount      int
		ChangedFileCount int
		HeadCommitSHA    string
		BaseRepoFullName string
		HeadRepoFullName string
		HeadRepoOwner    string
		HeadBranch       string
		BaseBranch       string
		State            string
	}

	// Commit is one commit of a PR together with the files it changed,
	// in the order the API reports them.
	Commit struct {
		SHA          string
		ChangedFiles []string
	}
)

// ReviewEvent is the three-way review decision understood by the hosting
// service. The server interprets the semantics; this tool only routes flags.
type ReviewEvent string

const (
	ReviewApprove        ReviewEvent = "APPROVE"
	ReviewRequestChanges ReviewEvent = "REQUEST_CHANGES"
	ReviewComment        ReviewEvent = "COMMENT"
)

// BranchPlan is the result of classifying a PR as same-repo or fork and
// deriving the local branch strategy. Computed fresh on every invocation.
type BranchPlan struct {
	LocalBranch string
	FetchRef    string
	UpstreamRef string
	IsFork      bool
}

type (
	// PRRow is a display-shaped row for the open-PR listing table.
	PRRow struct {
		Number      string
		Title       string
		Author      string
		Age         string
		Commits     string
		Files       string
		Labels      string
		Description string
	}

	// DetailRow is a display-shaped row for the per-commit detail table.
	// PR-level fields are populated on the first row only.
	DetailRow struct {
		PRNumber     string
		Title        string
		Status       string
		Age          string
		Author       string
		CommitSHA    string
		ChangedFiles string
	}
)
