package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeParse         ErrorType = "PARSE"
	TypeVCS           ErrorType = "VCS"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get remote origin URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")

	ErrFetch = NewAppError(TypeGit, "Failed to fetch from remote", nil).
			WithSuggestion("Check your network connection and remote access")

	ErrCheckout = NewAppError(TypeGit, "Failed to checkout branch", nil).
			WithSuggestion("Make sure your working tree is clean: git status")

	ErrSetUpstream = NewAppError(TypeGit, "Failed to set upstream branch", nil)

	ErrCurrentBranch = NewAppError(TypeGit, "Failed to determine current branch", nil)

	ErrDiff = NewAppError(TypeGit, "Failed to display diff", nil).
		WithSuggestion("Pull the PR branch first: git-pr pull <number>")

	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")
)

// Parse errors
var (
	ErrRemoteParse = NewAppError(TypeParse, "Could not parse owner/repository from remote URL", nil).
			WithSuggestion("Check the origin URL: git remote get-url origin")

	ErrUnsupportedHost = NewAppError(TypeParse, "Remote host is not supported", nil).
				WithSuggestion("Currently only github.com remotes are supported")
)

// Configuration errors
var (
	ErrTokenMissing = NewAppError(TypeConfiguration, "GITHUB_TOKEN is not set", nil).
			WithSuggestion("Export a personal access token: export GITHUB_TOKEN=<token>")
)

// VCS errors
var (
	ErrGetPR = NewAppError(TypeVCS, "failed to fetch pull request", nil).
		WithSuggestion("Check the PR number and your token permissions")

	ErrListPRs = NewAppError(TypeVCS, "failed to list pull requests", nil).
			WithSuggestion("Check repository access permissions")

	ErrGetCommits = NewAppError(TypeVCS, "failed to fetch pull request commits", nil)

	ErrSubmitReview = NewAppError(TypeVCS, "failed to submit review", nil).
			WithSuggestion("Check your GitHub token has 'repo' permissions")

	ErrClosePR = NewAppError(TypeVCS, "failed to close pull request", nil)

	ErrGetUser = NewAppError(TypeVCS, "failed to fetch authenticated user", nil).
			WithSuggestion("Verify the token is valid: gh auth status")
)
