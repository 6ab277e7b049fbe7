package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrFetch.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeGit {
		t.Errorf("Expected type %s, got %s", TypeGit, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrCheckout.WithContext("branch", "feature-x").WithContext("stderr", "pathspec did not match")

	if appErr.Context["branch"] != "feature-x" {
		t.Errorf("Expected branch context 'feature-x', got %v", appErr.Context["branch"])
	}

	if appErr.Context["stderr"] != "pathspec did not match" {
		t.Errorf("Expected stderr context 'pathspec did not match', got %v", appErr.Context["stderr"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrTokenMissing,
			contains: []string{
				"CONFIGURATION",
				"GITHUB_TOKEN is not set",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrGetRepoURL.WithError(errors.New("exit status 1")),
			contains: []string{
				"GIT",
				"Failed to get remote origin URL",
				"exit status 1",
			},
		},
		{
			name: "Error with context including stderr",
			err: ErrFetch.WithError(errors.New("exit status 128")).
				WithContext("ref", "pull/42/head").
				WithContext("stderr", "couldn't find remote ref"),
			contains: []string{
				"GIT",
				"Failed to fetch from remote",
				"exit status 128",
				"couldn't find remote ref",
			},
		},
		{
			name: "Parse error",
			err:  ErrRemoteParse.WithContext("url", "https://example.com/foo"),
			contains: []string{
				"PARSE",
				"Could not parse owner/repository",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := ErrSubmitReview.WithError(baseErr)

	unwrapped := appErr.Unwrap()
	if unwrapped != baseErr {
		t.Errorf("Expected unwrapped error to be %v, got %v", baseErr, unwrapped)
	}

	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should work with AppError")
	}
}

func TestAppError_WithSuggestion(t *testing.T) {
	appErr := ErrClosePR.WithSuggestion("Retry the close: git-pr submit-review <pr> --reject")

	if appErr.Suggestion == "" {
		t.Error("Expected suggestion to be set")
	}

	// WithSuggestion must not mutate the original sentinel
	if ErrClosePR.Suggestion == appErr.Suggestion {
		t.Error("Expected sentinel suggestion to stay unchanged")
	}
}
