package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vcstools/git-pr/internal/models"
)

func TestReviewService_SubmitReview(t *testing.T) {
	t.Run("should pin the review to the freshly fetched head", func(t *testing.T) {
		client := &MockVCSClient{}
		svc := NewReviewService(client)

		client.On("GetPR", mock.Anything, 42).
			Return(models.PullRequestDetail{Number: 42, HeadCommitSHA: "fresh123"}, nil)
		client.On("CreateReview", mock.Anything, 42, "LGTM", models.ReviewApprove, "fresh123").
			Return(nil)

		err := svc.SubmitReview(context.Background(), 42, "LGTM", models.ReviewApprove)

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("should not submit when the refetch fails", func(t *testing.T) {
		client := &MockVCSClient{}
		svc := NewReviewService(client)

		client.On("GetPR", mock.Anything, 42).
			Return(models.PullRequestDetail{}, errors.New("not found"))

		err := svc.SubmitReview(context.Background(), 42, "LGTM", models.ReviewApprove)

		require.Error(t, err)
		client.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_Close(t *testing.T) {
	t.Run("should surface the close error verbatim", func(t *testing.T) {
		client := &MockVCSClient{}
		svc := NewReviewService(client)

		closeErr := errors.New("state cannot be changed")
		client.On("ClosePR", mock.Anything, 42).Return(closeErr)

		err := svc.Close(context.Background(), 42)

		require.ErrorIs(t, err, closeErr)
	})
}
