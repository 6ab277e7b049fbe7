package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vcstools/git-pr/internal/config"
	domainErrors "github.com/vcstools/git-pr/internal/errors"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
)

type MockReviewer struct {
	mock.Mock
}

func (m *MockReviewer) SubmitReview(ctx context.Context, number int, body string, event models.ReviewEvent) error {
	args := m.Called(ctx, number, body, event)
	return args.Error(0)
}

func (m *MockReviewer) Close(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func setupReviewTest(t *testing.T) (*MockReviewer, *i18n.Translations, *config.Config) {
	translations, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	return new(MockReviewer), translations, &config.Config{}
}

func TestReviewCommand(t *testing.T) {
	t.Run("should default to an approval with the default message", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		reviewer.On("SubmitReview", mock.Anything, 42, "Looks good to me.", models.ReviewApprove).Return(nil)

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "42"})

		assert.NoError(t, err)
		reviewer.AssertExpectations(t)
		reviewer.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	})

	t.Run("should submit a comment-only review with a custom message", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		reviewer.On("SubmitReview", mock.Anything, 42, "needs docs", models.ReviewComment).Return(nil)

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "-m", "needs docs", "--comment-only", "42"})

		assert.NoError(t, err)
		reviewer.AssertExpectations(t)
	})

	t.Run("should request changes and close on reject", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		reviewer.On("SubmitReview", mock.Anything, 42, "Looks good to me.", models.ReviewRequestChanges).Return(nil)
		reviewer.On("Close", mock.Anything, 42).Return(nil)

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "--reject", "42"})

		assert.NoError(t, err)
		reviewer.AssertExpectations(t)
	})

	t.Run("should keep the review when the close fails", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		closeErr := errors.New("state cannot be changed")
		reviewer.On("SubmitReview", mock.Anything, 42, "Looks good to me.", models.ReviewRequestChanges).Return(nil)
		reviewer.On("Close", mock.Anything, 42).Return(closeErr)

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "--reject", "42"})

		require.ErrorIs(t, err, closeErr)
		reviewer.AssertExpectations(t)
	})

	t.Run("should not close when the reject review fails", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		reviewer.On("SubmitReview", mock.Anything, 42, "Looks good to me.", models.ReviewRequestChanges).
			Return(errors.New("boom"))

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "--reject", "42"})

		assert.Error(t, err)
		reviewer.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	})

	t.Run("should reject mutually exclusive flags", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "--approve", "--reject", "42"})

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainErrors.TypeParse, appErr.Type)
		reviewer.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a non-numeric PR argument", func(t *testing.T) {
		reviewer, translations, cfg := setupReviewTest(t)

		cmd := NewCommandFactory(reviewer).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"submit-review", "abc"})

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainErrors.TypeParse, appErr.Type)
	})
}
