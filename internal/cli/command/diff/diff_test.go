package diff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
)

type MockDiffShower struct {
	mock.Mock
}

func (m *MockDiffShower) ShowDiff(ctx context.Context, number int) (models.BranchPlan, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.BranchPlan), args.Error(1)
}

func TestDiffCommand(t *testing.T) {
	translations, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	cfg := &config.Config{}

	t.Run("should show the diff for a PR", func(t *testing.T) {
		shower := new(MockDiffShower)
		shower.On("ShowDiff", mock.Anything, 42).Return(models.BranchPlan{LocalBranch: "feature-x"}, nil)

		cmd := NewCommandFactory(shower).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"show-diff", "42"})

		assert.NoError(t, err)
		shower.AssertExpectations(t)
	})

	t.Run("should surface a diff failure", func(t *testing.T) {
		shower := new(MockDiffShower)
		diffErr := errors.New("unknown revision")
		shower.On("ShowDiff", mock.Anything, 42).Return(models.BranchPlan{}, diffErr)

		cmd := NewCommandFactory(shower).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"show-diff", "42"})

		require.ErrorIs(t, err, diffErr)
	})

	t.Run("should reject a non-numeric argument", func(t *testing.T) {
		shower := new(MockDiffShower)

		cmd := NewCommandFactory(shower).CreateCommand(translations, cfg)
		err := cmd.Run(context.Background(), []string{"show-diff", "latest"})

		require.Error(t, err)
		shower.AssertNotCalled(t, "ShowDiff", mock.Anything, mock.Anything)
	})
}
